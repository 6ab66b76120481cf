package dto

import "printfront/internal/entities"

// Listes de référence consommées par les formulaires. Un échec de chargement
// se dégrade silencieusement en liste vide, jamais en bannière bloquante.
type ProductListDTO struct {
	List       []entities.Product `json:"list"`
	TotalCount int                `json:"total_count"`
}

type UserListDTO struct {
	List []entities.User `json:"list"`
}

type SupplierListDTO struct {
	List []entities.Supplier `json:"list"`
}

type FinitionListDTO struct {
	List []entities.Finition `json:"list"`
}
