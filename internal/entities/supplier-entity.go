package entities

import (
	"printfront/pkg/types"
)

type Supplier struct {
	ID     uint64 `json:"id"`
	Nom    string `json:"nom"`
	Actif  bool   `json:"actif"`
	Email  string `json:"email,omitempty"`
	Tel    string `json:"tel,omitempty"`
	Raison string `json:"raison_sociale,omitempty"`

	types.BaseEntity
}
