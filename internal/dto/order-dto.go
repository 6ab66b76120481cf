package dto

// CreateOrderDTO : création d'une affaire neuve. Un seul appel embarque les
// données commande et la liste produits complète ; les datetime naïfs ont déjà
// été résolus en ISO absolu avant l'envoi.
type CreateOrderDTO struct {
	NumeroAffaire        string                  `json:"numero_affaire,omitempty"`
	NumeroDM             string                  `json:"numero_dm,omitempty"`
	ClientID             *uint64                 `json:"client_id,omitempty"`
	ClientInfo           string                  `json:"client_info,omitempty"`
	CommercialEnCharge   *uint64                 `json:"commercial_en_charge,omitempty"`
	DateLivraisonEstimee string                  `json:"date_livraison_estimee,omitempty"`
	Products             []CreateOrderProductDTO `json:"products" validate:"required,min=1,dive"`
}

type CreateOrderProductDTO struct {
	ProductID          uint64            `json:"product_id" validate:"required,gt=0"`
	Quantity           int               `json:"quantity" validate:"required,gt=0"`
	UnitPrice          float64           `json:"unit_price"`
	NumeroPMS          string            `json:"numero_pms,omitempty"`
	InfographEnCharge  *uint64           `json:"infograph_en_charge,omitempty"`
	AgentImpression    *uint64           `json:"agent_impression,omitempty"`
	MachineImpression  string            `json:"machine_impression,omitempty"`
	Etape              string            `json:"etape,omitempty"`
	AtelierConcerne    string            `json:"atelier_concerne,omitempty"`
	TempsTravailEstime int               `json:"estimated_work_time_minutes,omitempty"`
	Bat                string            `json:"bat,omitempty"`
	Express            string            `json:"express,omitempty"`
	PackFinAnnee       string            `json:"pack_fin_annee,omitempty"`
	Commentaires       string            `json:"commentaires,omitempty"`
	TypeSousTraitance  string            `json:"type_sous_traitance,omitempty"`
	SupplierID         *uint64           `json:"supplier_id,omitempty"`
	Finitions          []FinitionSpecDTO `json:"finitions,omitempty"`
}

type FinitionSpecDTO struct {
	FinitionID uint64   `json:"finition_id" validate:"required,gt=0"`
	AgentIDs   []uint64 `json:"agent_ids,omitempty"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
}
