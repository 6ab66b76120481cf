// Fichier: internal/orderform/form.go
package orderform

import (
	"fmt"

	"printfront/internal/entities"
	"printfront/pkg/constants"

	"go.uber.org/zap"
)

// Step : étape de l'assistant de saisie.
type Step int

const (
	Step1OrderInfo Step = iota + 1
	Step2ProductConfig
)

// Mode de soumission du formulaire.
type Mode int

const (
	// ModeCreate : affaire neuve, un seul appel embarque commande + produits.
	ModeCreate Mode = iota
	// ModeEditProduct : édition d'une seule ligne produit d'une affaire
	// existante. Toute mutation d'une autre ligne est un bug du code appelant.
	ModeEditProduct
)

// Form porte tout l'état de l'assistant en deux étapes : données commande,
// lignes produits, sous-état des listes déroulantes de recherche. L'exécution
// est coopérative mono-thread, aucun verrou.
type Form struct {
	logger *zap.Logger

	role constants.Role
	mode Mode
	step Step

	// Identifiants de la cible en mode édition.
	orderID     uint64
	editRowIdx  int
	editRowProd uint64

	NumeroAffaire        string
	NumeroDM             string
	ClientID             *uint64
	ClientInfo           string
	CommercialEnCharge   *uint64
	DateLivraisonEstimee string // saisie locale naïve, résolue à la soumission

	Products []*ProductLine

	dropdowns map[DropdownKey]*DropdownState
}

// NewForm ouvre l'assistant vierge en étape 1.
func NewForm(role constants.Role, logger *zap.Logger) *Form {
	return &Form{
		logger:    logger,
		role:      role,
		mode:      ModeCreate,
		step:      Step1OrderInfo,
		dropdowns: make(map[DropdownKey]*DropdownState),
	}
}

// NewEditForm ouvre l'assistant sur une affaire existante pour éditer la
// ligne produit désignée. L'ouverture se fait directement en étape 2 dès que
// des produits existent.
func NewEditForm(order *entities.Order, orderProductID uint64, role constants.Role, logger *zap.Logger) (*Form, error) {
	f := &Form{
		logger:               logger,
		role:                 role,
		mode:                 ModeEditProduct,
		step:                 Step1OrderInfo,
		orderID:              order.ID,
		NumeroAffaire:        order.NumeroAffaire,
		NumeroDM:             order.NumeroDM,
		ClientID:             order.ClientID,
		ClientInfo:           order.ClientInfo,
		CommercialEnCharge:   order.CommercialEnCharge,
		DateLivraisonEstimee: order.DateLivraisonEstimee,
		dropdowns:            make(map[DropdownKey]*DropdownState),
	}

	f.editRowIdx = -1
	for i := range order.OrderProducts {
		op := &order.OrderProducts[i]
		line := lineFromEntity(op)
		f.Products = append(f.Products, line)
		if op.ID == orderProductID {
			f.editRowIdx = i
			f.editRowProd = op.ID
		}
	}
	if f.editRowIdx < 0 {
		return nil, fmt.Errorf("ligne produit %d absente de la commande %d", orderProductID, order.ID)
	}
	if len(f.Products) > 0 {
		f.step = Step2ProductConfig
	}
	return f, nil
}

func (f *Form) Step() Step  { return f.step }
func (f *Form) Mode() Mode  { return f.mode }
func (f *Form) Role() constants.Role { return f.role }
func (f *Form) OrderID() uint64      { return f.orderID }

// GoToStep2 passe à la configuration produits. Exige un client renseigné ;
// s'il n'existe encore aucune ligne, une ligne vierge est ajoutée avec
// l'étape par défaut d'un atelier vide.
func (f *Form) GoToStep2() error {
	if f.ClientID == nil && f.ClientInfo == "" {
		return errClientRequis()
	}
	if len(f.Products) == 0 {
		f.appendBlankLine()
	}
	f.step = Step2ProductConfig
	return nil
}

// GoToStep1 revient aux informations commande. Toujours permis, toutes les
// données saisies sont conservées.
func (f *Form) GoToStep1() {
	f.step = Step1OrderInfo
}

func (f *Form) appendBlankLine() {
	f.Products = append(f.Products, &ProductLine{
		Quantity: 1,
		Etape:    constants.DefaultEtape(constants.Atelier("")),
	})
}

// AddProduct ajoute une ligne vierge en étape 2.
func (f *Form) AddProduct() {
	f.guardWholeForm()
	f.appendBlankLine()
}

// RemoveProduct retire une ligne et décale les sous-états de recherche des
// lignes suivantes.
func (f *Form) RemoveProduct(row int) error {
	f.guardWholeForm()
	if row < 0 || row >= len(f.Products) {
		return errLigneInconnue(row)
	}
	f.Products = append(f.Products[:row], f.Products[row+1:]...)
	f.dropConcernedDropdowns(row)
	return nil
}

// Line retourne la ligne demandée.
func (f *Form) Line(row int) (*ProductLine, error) {
	if row < 0 || row >= len(f.Products) {
		return nil, errLigneInconnue(row)
	}
	return f.Products[row], nil
}

// guardRow vérifie qu'une mutation de ligne est légale dans le mode courant.
// En mode édition d'une ligne unique, toucher une autre ligne est un bug du
// code appelant : on échoue immédiatement.
func (f *Form) guardRow(row int) {
	if f.mode == ModeEditProduct && row != f.editRowIdx {
		panic(fmt.Sprintf("orderform: mutation de la ligne %d alors que seule la ligne %d est en édition", row, f.editRowIdx))
	}
}

// guardWholeForm interdit les mutations de structure en mode édition de
// ligne unique.
func (f *Form) guardWholeForm() {
	if f.mode == ModeEditProduct {
		panic("orderform: ajout/retrait de ligne interdit en mode édition d'une ligne unique")
	}
}

func lineFromEntity(op *entities.OrderProduct) *ProductLine {
	line := &ProductLine{
		ProductID:          op.ProductID,
		Quantity:           op.Quantity,
		UnitPrice:          op.UnitPrice,
		NumeroPMS:          op.NumeroPMS,
		InfographEnCharge:  op.InfographEnCharge,
		AgentImpression:    op.AgentImpression,
		MachineImpression:  op.MachineImpression,
		Etape:              op.Etape,
		AtelierConcerne:    op.AtelierConcerne,
		TempsTravailEstime: op.TempsTravailEstime,
		Bat:                op.Bat,
		Express:            op.Express,
		PackFinAnnee:       op.PackFinAnnee,
		Commentaires:       op.Commentaires,
		TypeSousTraitance:  op.TypeSousTraitance,
		SupplierID:         op.SupplierID,
	}
	for _, fin := range op.Finitions {
		agents := make([]uint64, len(fin.AgentIDs))
		copy(agents, fin.AgentIDs)
		line.Finitions = append(line.Finitions, FinitionState{
			FinitionID: fin.FinitionID,
			AgentIDs:   agents,
			StartDate:  fin.StartDate,
			EndDate:    fin.EndDate,
		})
	}
	return line
}
