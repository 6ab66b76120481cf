// Fichier: internal/entities/user-entity.go
package entities

import (
	"printfront/pkg/types"
)

type User struct {
	ID    uint64 `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  string `json:"role"`

	types.BaseEntity
}
