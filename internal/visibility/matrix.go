// Fichier: internal/visibility/matrix.go
package visibility

import (
	"printfront/pkg/constants"
)

// Toute la politique d'affichage par rôle vit ici. Le reste du code ne
// compare jamais user.Role directement : il consomme la matrice.

// Matrix : pour un rôle donné, quels champs sont visibles à chaque niveau.
// Les deux maps sont complètes : chaque champ connu a une entrée, vraie ou
// fausse, jamais absente.
type Matrix struct {
	OrderLevel   map[string]bool `json:"orderLevel"`
	ProductLevel map[string]bool `json:"productLevel"`
}

// Champs auto-remplis : visibles mais jamais éditables à la main.
var autoPopulated = map[string]bool{
	constants.FieldCommercialEnCharge: true,
}

// Champs produit masqués par rôle. Tout champ non listé est visible.
var hiddenProductFields = map[constants.Role][]string{
	constants.RoleCommercial: {
		constants.FieldNumeroPMS,
		constants.FieldInfographEnCharge,
		constants.FieldAgentImpression,
		constants.FieldMachineImpression,
		constants.FieldEtape,
		constants.FieldTempsTravailEstime,
		constants.FieldFinitions,
	},
	constants.RoleInfograph: {
		constants.FieldPrixUnitaire,
	},
	constants.RoleAtelier: {
		constants.FieldPrixUnitaire,
		constants.FieldTypeSousTraitance,
		constants.FieldFournisseur,
	},
	constants.RoleAdmin: {},
}

// Champs commande masqués par rôle.
var hiddenOrderFields = map[constants.Role][]string{
	constants.RoleCommercial: {},
	constants.RoleInfograph:  {},
	constants.RoleAtelier: {
		constants.FieldNumeroDM,
		constants.FieldCommercialEnCharge,
	},
	constants.RoleAdmin: {},
}

// Resolve calcule la matrice de visibilité d'un rôle. Fonction pure et
// déterministe du rôle seul, recalculée à chaque rendu, aucun état conservé.
func Resolve(role constants.Role) Matrix {
	m := Matrix{
		OrderLevel:   make(map[string]bool, len(constants.OrderFields)),
		ProductLevel: make(map[string]bool, len(constants.ProductFields)),
	}

	hiddenOrder := toSet(hiddenOrderFields[role])
	for _, f := range constants.OrderFields {
		m.OrderLevel[f] = !hiddenOrder[f]
	}

	hiddenProduct := toSet(hiddenProductFields[role])
	for _, f := range constants.ProductFields {
		m.ProductLevel[f] = !hiddenProduct[f]
	}

	return m
}

// IsFieldReadOnly indique si un champ est verrouillé pour le rôle.
// L'atelier n'édite que la section finitions ; pour les autres rôles un champ
// visible est éditable, sauf s'il est auto-rempli.
func IsFieldReadOnly(role constants.Role, section constants.Section, field string) bool {
	if role == constants.RoleAtelier {
		return !(section == constants.SectionProduct && field == constants.FieldFinitions)
	}

	m := Resolve(role)
	var visible bool
	switch section {
	case constants.SectionOrder:
		visible = m.OrderLevel[field]
	case constants.SectionProduct:
		visible = m.ProductLevel[field]
	}
	if !visible {
		return true
	}
	return autoPopulated[field]
}

// CanMutateFinitions : seul le rôle commercial est entièrement bloqué sur les
// finitions (ajout, retrait et mise à jour confondus).
func CanMutateFinitions(role constants.Role) bool {
	return role != constants.RoleCommercial
}

func toSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
