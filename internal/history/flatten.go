package history

import (
	"strconv"

	"printfront/internal/dto"
	"printfront/internal/entities"
)

// Flatten dénormalise les commandes imbriquées en une ligne par couple
// (commande, ligne produit) : le tableau affiche et édite des lignes
// produit, pas des commandes. Les champs commande sont recopiés sur chaque
// ligne ; le statut de la ligne retombe sur celui de la commande quand la
// ligne n'en porte pas.
func Flatten(orders []entities.Order) []dto.HistoryRowDTO {
	var rows []dto.HistoryRowDTO
	for i := range orders {
		order := &orders[i]
		for j := range order.OrderProducts {
			product := &order.OrderProducts[j]

			statut := product.Statut
			if statut == "" {
				statut = order.Statut
			}

			rows = append(rows, dto.HistoryRowDTO{
				OrderID:              order.ID,
				OrderProductID:       product.ID,
				NumeroAffaire:        order.NumeroAffaire,
				NumeroDM:             order.NumeroDM,
				ClientInfo:           order.ClientInfo,
				CommercialEnCharge:   order.CommercialNom,
				DateLivraisonEstimee: order.DateLivraisonEstimee,
				Statut:               statut,
				ProductNom:           product.ProductNom,
				Quantity:             product.Quantity,
				UnitPrice:            product.UnitPrice,
				NumeroPMS:            product.NumeroPMS,
				InfographEnCharge:    userLabel(product.InfographEnCharge),
				AgentImpression:      userLabel(product.AgentImpression),
				MachineImpression:    product.MachineImpression,
				Etape:                product.Etape,
				AtelierConcerne:      product.AtelierConcerne,
				TempsTravailEstime:   product.TempsTravailEstime,
				Bat:                  product.Bat,
				Express:              product.Express,
				PackFinAnnee:         product.PackFinAnnee,
				Commentaires:         product.Commentaires,
				TypeSousTraitance:    product.TypeSousTraitance,
				SupplierNom:          supplierLabel(product.SupplierID),
			})
		}
	}
	return rows
}

// Les libellés utilisateur/fournisseur arrivent résolus du backend quand il
// les joint ; à défaut on retombe sur l'identifiant brut.
func userLabel(id *uint64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(*id, 10)
}

func supplierLabel(id *uint64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(*id, 10)
}
