// Fichier: internal/entities/order-entity.go
package entities

import (
	"printfront/pkg/types"
)

// Order : une affaire telle que le backend la renvoie. Créée par un
// commercial, modifiée selon le rôle, archivée dans l'historique dès que son
// statut atteint livre ou annule.
type Order struct {
	ID                   uint64         `json:"id"`
	NumeroAffaire        string         `json:"numero_affaire"`
	NumeroDM             string         `json:"numero_dm"`
	ClientID             *uint64        `json:"client_id,omitempty"`
	ClientInfo           string         `json:"client_info"`
	CommercialEnCharge   *uint64        `json:"commercial_en_charge,omitempty"`
	CommercialNom        string         `json:"commercial_nom,omitempty"`
	DateLivraisonEstimee string         `json:"date_livraison_estimee,omitempty"`
	Statut               string         `json:"statut"`
	OrderProducts        []OrderProduct `json:"orderProducts"`

	types.BaseEntity
}

// OrderProduct : une ligne produit d'une affaire, avec ses champs de
// production et ses finitions. L'atelier concerné contraint les étapes.
type OrderProduct struct {
	ID                 uint64  `json:"id"`
	OrderID            uint64  `json:"order_id"`
	ProductID          *uint64 `json:"product_id,omitempty"`
	ProductNom         string  `json:"product_nom,omitempty"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	NumeroPMS          string  `json:"numero_pms"`
	InfographEnCharge  *uint64 `json:"infograph_en_charge,omitempty"`
	AgentImpression    *uint64 `json:"agent_impression,omitempty"`
	MachineImpression  string  `json:"machine_impression"`
	Etape              string  `json:"etape"`
	AtelierConcerne    string  `json:"atelier_concerne"`
	TempsTravailEstime int     `json:"estimated_work_time_minutes"`
	Bat                string  `json:"bat"`
	Express            string  `json:"express"`
	PackFinAnnee       string  `json:"pack_fin_annee"`
	Commentaires       string  `json:"commentaires"`
	TypeSousTraitance  string  `json:"type_sous_traitance"`
	SupplierID         *uint64 `json:"supplier_id,omitempty"`

	// Statut propre de la ligne ; retombe sur le statut de la commande
	// quand il est vide.
	Statut string `json:"statut,omitempty"`

	Finitions []FinitionAssignment `json:"finitions"`
}

// FinitionAssignment : une finition posée sur un produit, avec ses agents
// atelier et son créneau. Invariant : une date de fin implique un début.
type FinitionAssignment struct {
	ID         uint64   `json:"id"`
	FinitionID uint64   `json:"finition_id"`
	AgentIDs   []uint64 `json:"agent_ids"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
}
