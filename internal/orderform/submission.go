package orderform

import (
	"printfront/internal/dto"
	"printfront/internal/visibility"
	"printfront/pkg/constants"

	"go.uber.org/zap"
)

// FromSubmission rejoue une soumission complète de l'assistant dans un
// formulaire neuf : mêmes transitions et mêmes règles que la saisie
// interactive, y compris l'étape par défaut posée par le choix d'atelier.
func FromSubmission(sub *dto.OrderFormDTO, role constants.Role, logger *zap.Logger) (*Form, error) {
	f := NewForm(role, logger)
	f.NumeroAffaire = sub.NumeroAffaire
	f.NumeroDM = sub.NumeroDM
	f.ClientID = sub.ClientID
	f.ClientInfo = sub.ClientInfo
	f.CommercialEnCharge = sub.CommercialEnCharge
	f.DateLivraisonEstimee = sub.DateLivraisonEstimee

	// Un panier vide ne doit pas profiter de la ligne vierge que la
	// transition ajoute pour la saisie interactive. L'ordre des messages
	// reste celui de la validation : client d'abord.
	if len(sub.Products) == 0 {
		if f.ClientID == nil && f.ClientInfo == "" {
			return nil, errClientRequis()
		}
		return nil, errAucunProduit()
	}

	if err := f.GoToStep2(); err != nil {
		return nil, err
	}

	for i, spec := range sub.Products {
		if i > 0 {
			f.AddProduct()
		}
		if err := f.applyLine(i, spec); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ApplyEditedLine rejoue la saisie sur la seule ligne en édition.
func (f *Form) ApplyEditedLine(spec dto.ProductLineFormDTO) error {
	return f.applyLine(f.editRowIdx, spec)
}

func (f *Form) applyLine(row int, spec dto.ProductLineFormDTO) error {
	if spec.AtelierConcerne != "" {
		if err := f.SetAtelier(row, constants.Atelier(spec.AtelierConcerne)); err != nil {
			return err
		}
	}
	if spec.ProductID != nil {
		if err := f.SelectProduct(row, *spec.ProductID, spec.UnitPrice); err != nil {
			return err
		}
	}
	if err := f.SetQuantity(row, spec.Quantity); err != nil {
		return err
	}
	if spec.SupplierID != nil {
		if err := f.SelectSupplier(row, *spec.SupplierID); err != nil {
			return err
		}
	}

	line, err := f.Line(row)
	if err != nil {
		return err
	}
	line.NumeroPMS = spec.NumeroPMS
	line.InfographEnCharge = spec.InfographEnCharge
	line.AgentImpression = spec.AgentImpression
	line.MachineImpression = spec.MachineImpression
	line.TempsTravailEstime = spec.TempsTravailEstime
	line.Bat = spec.Bat
	line.Express = spec.Express
	line.PackFinAnnee = spec.PackFinAnnee
	line.Commentaires = spec.Commentaires
	line.TypeSousTraitance = spec.TypeSousTraitance
	// Une étape saisie explicitement prime sur celle posée par l'atelier.
	if spec.Etape != "" {
		line.Etape = spec.Etape
	}

	if visibility.CanMutateFinitions(f.role) {
		line.Finitions = line.Finitions[:0]
		for _, fin := range spec.Finitions {
			agents := make([]uint64, len(fin.AgentIDs))
			copy(agents, fin.AgentIDs)
			line.Finitions = append(line.Finitions, FinitionState{
				FinitionID: fin.FinitionID,
				AgentIDs:   agents,
				StartDate:  fin.StartDate,
				EndDate:    fin.EndDate,
			})
		}
	}
	return nil
}
