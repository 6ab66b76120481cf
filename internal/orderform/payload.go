package orderform

import (
	"fmt"

	"printfront/internal/dto"
	"printfront/pkg/utils"

	"github.com/aarondl/null/v8"
)

// BuildCreateDTO valide le formulaire et assemble la charge utile de
// création : commande + liste produits complète, datetime naïfs résolus
// contre le fuseau local en ISO absolu.
func (f *Form) BuildCreateDTO() (*dto.CreateOrderDTO, error) {
	if f.mode != ModeCreate {
		panic("orderform: BuildCreateDTO appelé hors du mode création")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dateLivraison, err := utils.LocalNaiveToISO(f.DateLivraisonEstimee)
	if err != nil {
		return nil, fmt.Errorf("date de livraison illisible: %w", err)
	}

	payload := &dto.CreateOrderDTO{
		NumeroAffaire:        f.NumeroAffaire,
		NumeroDM:             f.NumeroDM,
		ClientID:             f.ClientID,
		ClientInfo:           f.ClientInfo,
		CommercialEnCharge:   f.CommercialEnCharge,
		DateLivraisonEstimee: dateLivraison,
	}

	for i, line := range f.Products {
		spec := dto.CreateOrderProductDTO{
			ProductID:          *line.ProductID,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			NumeroPMS:          line.NumeroPMS,
			InfographEnCharge:  line.InfographEnCharge,
			AgentImpression:    line.AgentImpression,
			MachineImpression:  line.MachineImpression,
			Etape:              line.Etape,
			AtelierConcerne:    line.AtelierConcerne,
			TempsTravailEstime: line.TempsTravailEstime,
			Bat:                line.Bat,
			Express:            line.Express,
			PackFinAnnee:       line.PackFinAnnee,
			Commentaires:       line.Commentaires,
			TypeSousTraitance:  line.TypeSousTraitance,
			SupplierID:         line.SupplierID,
		}
		specFinitions, err := finitionSpecs(line.Finitions)
		if err != nil {
			return nil, fmt.Errorf("produit %d: %w", i+1, err)
		}
		spec.Finitions = specFinitions
		payload.Products = append(payload.Products, spec)
	}

	return payload, nil
}

// BuildUpdateDTO valide puis assemble la mise à jour de la seule ligne en
// édition. Passer un autre index est un bug du code appelant.
func (f *Form) BuildUpdateDTO(row int) (*dto.UpdateOrderProductDTO, error) {
	if f.mode != ModeEditProduct {
		panic("orderform: BuildUpdateDTO appelé hors du mode édition")
	}
	if row != f.editRowIdx {
		panic(fmt.Sprintf("orderform: soumission de la ligne %d alors que seule la ligne %d est en édition", row, f.editRowIdx))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	line := f.Products[row]
	payload := &dto.UpdateOrderProductDTO{
		Quantity:           null.IntFrom(line.Quantity),
		UnitPrice:          null.Float64From(line.UnitPrice),
		NumeroPMS:          null.StringFrom(line.NumeroPMS),
		MachineImpression:  null.StringFrom(line.MachineImpression),
		Etape:              null.StringFrom(line.Etape),
		AtelierConcerne:    null.StringFrom(line.AtelierConcerne),
		TempsTravailEstime: null.IntFrom(line.TempsTravailEstime),
		Bat:                null.StringFrom(line.Bat),
		Express:            null.StringFrom(line.Express),
		PackFinAnnee:       null.StringFrom(line.PackFinAnnee),
		Commentaires:       null.StringFrom(line.Commentaires),
		TypeSousTraitance:  null.StringFrom(line.TypeSousTraitance),
	}
	if line.ProductID != nil {
		payload.ProductID = null.Uint64From(*line.ProductID)
	}
	if line.InfographEnCharge != nil {
		payload.InfographEnCharge = null.Uint64From(*line.InfographEnCharge)
	}
	if line.AgentImpression != nil {
		payload.AgentImpression = null.Uint64From(*line.AgentImpression)
	}
	if line.SupplierID != nil {
		payload.SupplierID = null.Uint64From(*line.SupplierID)
	}

	specFinitions, err := finitionSpecs(line.Finitions)
	if err != nil {
		return nil, err
	}
	payload.Finitions = specFinitions

	return payload, nil
}

// BuildEditedLineDTO assemble la mise à jour de la ligne en édition sans
// que l'appelant ait à connaître son index.
func (f *Form) BuildEditedLineDTO() (*dto.UpdateOrderProductDTO, error) {
	if f.mode != ModeEditProduct {
		panic("orderform: BuildEditedLineDTO appelé hors du mode édition")
	}
	return f.BuildUpdateDTO(f.editRowIdx)
}

// TargetOrderProductID : identifiant backend de la ligne en édition.
func (f *Form) TargetOrderProductID() uint64 {
	if f.mode != ModeEditProduct {
		panic("orderform: pas de ligne cible hors du mode édition")
	}
	return f.editRowProd
}

func finitionSpecs(finitions []FinitionState) ([]dto.FinitionSpecDTO, error) {
	var specs []dto.FinitionSpecDTO
	for _, fin := range finitions {
		start, err := utils.LocalNaiveToISO(fin.StartDate)
		if err != nil {
			return nil, fmt.Errorf("date de début de finition illisible: %w", err)
		}
		end, err := utils.LocalNaiveToISO(fin.EndDate)
		if err != nil {
			return nil, fmt.Errorf("date de fin de finition illisible: %w", err)
		}
		agents := make([]uint64, len(fin.AgentIDs))
		copy(agents, fin.AgentIDs)
		specs = append(specs, dto.FinitionSpecDTO{
			FinitionID: fin.FinitionID,
			AgentIDs:   agents,
			StartDate:  start,
			EndDate:    end,
		})
	}
	return specs, nil
}
