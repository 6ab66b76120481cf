package orderform

import (
	"printfront/pkg/constants"

	"go.uber.org/zap"
)

// ProductLine : sous-état d'une ligne produit du formulaire.
type ProductLine struct {
	ProductID          *uint64
	Quantity           int
	UnitPrice          float64
	NumeroPMS          string
	InfographEnCharge  *uint64
	AgentImpression    *uint64
	MachineImpression  string
	Etape              string
	AtelierConcerne    string
	TempsTravailEstime int
	Bat                string
	Express            string
	PackFinAnnee       string
	Commentaires       string
	TypeSousTraitance  string
	SupplierID         *uint64

	Finitions []FinitionState
}

// SetAtelier change l'atelier concerné d'une ligne. L'étape est réinitialisée
// selon le nouvel atelier (pré-presse pour petit/grand format et
// sous-traitance, vide pour le service créa qui force un choix explicite) et
// le produit sélectionné est invalidé : le catalogue est rattaché à
// l'atelier.
func (f *Form) SetAtelier(row int, atelier constants.Atelier) error {
	f.guardRow(row)
	line, err := f.Line(row)
	if err != nil {
		return err
	}

	line.AtelierConcerne = atelier.String()
	line.Etape = constants.DefaultEtape(atelier)
	line.ProductID = nil

	f.resetDropdown(DropdownKey{Row: row, Kind: DropdownProduct})

	if f.logger != nil {
		f.logger.Debug("atelier modifié",
			zap.Int("row", row),
			zap.String("atelier", atelier.String()),
			zap.String("etape", line.Etape),
		)
	}
	return nil
}

// SelectProduct pose le produit choisi dans la liste de recherche et ferme le
// menu.
func (f *Form) SelectProduct(row int, productID uint64, unitPrice float64) error {
	f.guardRow(row)
	line, err := f.Line(row)
	if err != nil {
		return err
	}
	line.ProductID = &productID
	line.UnitPrice = unitPrice
	f.resetDropdown(DropdownKey{Row: row, Kind: DropdownProduct})
	return nil
}

// SetQuantity fixe la quantité de la ligne.
func (f *Form) SetQuantity(row int, quantity int) error {
	f.guardRow(row)
	line, err := f.Line(row)
	if err != nil {
		return err
	}
	line.Quantity = quantity
	return nil
}

// SelectSupplier pose le fournisseur (sous-traitance) et ferme le menu.
func (f *Form) SelectSupplier(row int, supplierID uint64) error {
	f.guardRow(row)
	line, err := f.Line(row)
	if err != nil {
		return err
	}
	line.SupplierID = &supplierID
	f.resetDropdown(DropdownKey{Row: row, Kind: DropdownSupplier})
	return nil
}
