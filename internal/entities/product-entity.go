package entities

import (
	"printfront/pkg/types"
)

// Product : référence du catalogue. Le catalogue est rattaché à un atelier,
// changer l'atelier d'une ligne invalide donc le produit sélectionné.
type Product struct {
	ID      uint64  `json:"id"`
	Nom     string  `json:"nom"`
	Atelier string  `json:"atelier"`
	Prix    float64 `json:"prix"`

	types.BaseEntity
}

// Finition : opération de finition rattachable à un produit.
type Finition struct {
	ID  uint64 `json:"id"`
	Nom string `json:"nom"`
}
