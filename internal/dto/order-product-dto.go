package dto

import (
	"github.com/aarondl/null/v8"
)

// UpdateOrderProductDTO : mise à jour partielle d'une seule ligne produit au
// sein d'une commande existante. null/v8 distingue "champ absent" de "champ
// vidé" : seuls les champs valides partent vers le backend.
type UpdateOrderProductDTO struct {
	ProductID          null.Uint64  `json:"product_id,omitempty"`
	Quantity           null.Int     `json:"quantity,omitempty"`
	UnitPrice          null.Float64 `json:"unit_price,omitempty"`
	NumeroPMS          null.String  `json:"numero_pms,omitempty"`
	InfographEnCharge  null.Uint64  `json:"infograph_en_charge,omitempty"`
	AgentImpression    null.Uint64  `json:"agent_impression,omitempty"`
	MachineImpression  null.String  `json:"machine_impression,omitempty"`
	Etape              null.String  `json:"etape,omitempty"`
	AtelierConcerne    null.String  `json:"atelier_concerne,omitempty"`
	TempsTravailEstime null.Int     `json:"estimated_work_time_minutes,omitempty"`
	Bat                null.String  `json:"bat,omitempty"`
	Express            null.String  `json:"express,omitempty"`
	PackFinAnnee       null.String  `json:"pack_fin_annee,omitempty"`
	Commentaires       null.String  `json:"commentaires,omitempty"`
	TypeSousTraitance  null.String  `json:"type_sous_traitance,omitempty"`
	SupplierID         null.Uint64  `json:"supplier_id,omitempty"`
	Statut             null.String  `json:"statut,omitempty"`

	Finitions []FinitionSpecDTO `json:"finitions,omitempty"`
}

// UpdateStatusDTO : édition inline du statut dans l'historique (admin). La
// valeur précédente permet de clore sans appel backend quand rien n'a changé.
type UpdateStatusDTO struct {
	Statut          string `json:"statut" validate:"required"`
	StatutPrecedent string `json:"statut_precedent,omitempty"`
}
