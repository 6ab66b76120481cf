package dto

// HistoryRowDTO : une ligne du tableau d'historique. L'unité d'affichage et
// d'édition inline est le couple (commande, ligne produit), pas la commande :
// les champs commande sont recopiés sur chaque ligne.
type HistoryRowDTO struct {
	OrderID              uint64 `json:"order_id"`
	OrderProductID       uint64 `json:"order_product_id"`
	NumeroAffaire        string `json:"numero_affaire"`
	NumeroDM             string `json:"numero_dm"`
	ClientInfo           string `json:"client_info"`
	CommercialEnCharge   string `json:"commercial_en_charge"`
	DateLivraisonEstimee string `json:"date_livraison_estimee"`
	Statut               string `json:"statut"`

	ProductNom         string  `json:"product_nom"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	NumeroPMS          string  `json:"numero_pms"`
	InfographEnCharge  string  `json:"infograph_en_charge"`
	AgentImpression    string  `json:"agent_impression"`
	MachineImpression  string  `json:"machine_impression"`
	Etape              string  `json:"etape"`
	AtelierConcerne    string  `json:"atelier_concerne"`
	TempsTravailEstime int     `json:"estimated_work_time_minutes"`
	Bat                string  `json:"bat"`
	Express            string  `json:"express"`
	PackFinAnnee       string  `json:"pack_fin_annee"`
	Commentaires       string  `json:"commentaires"`
	TypeSousTraitance  string  `json:"type_sous_traitance"`
	SupplierNom        string  `json:"supplier_nom"`
}

// HistoryStatsDTO : agrégats de l'historique, comptages par statut.
type HistoryStatsDTO struct {
	TotalOrders    int            `json:"totalOrders"`
	CountsByStatus map[string]int `json:"countsByStatus"`
}
