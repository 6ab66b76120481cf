package visibility

import (
	"printfront/pkg/constants"
)

// L'historique a sa propre politique de colonnes : il est surtout en lecture,
// certains champs du formulaire n'y figurent pas et inversement. Ne pas
// confondre avec la matrice du formulaire d'édition.

// HistoryColumns : identifiants de colonnes du tableau d'historique, dans
// l'ordre d'affichage.
var historyColumnOrder = []string{
	constants.FieldNumeroAffaire,
	constants.FieldNumeroDM,
	constants.FieldClient,
	constants.FieldCommercialEnCharge,
	constants.FieldDateLivraisonEstimee,
	constants.FieldStatut,
	constants.FieldProduit,
	constants.FieldQuantite,
	constants.FieldPrixUnitaire,
	constants.FieldNumeroPMS,
	constants.FieldInfographEnCharge,
	constants.FieldAgentImpression,
	constants.FieldMachineImpression,
	constants.FieldEtape,
	constants.FieldAtelierConcerne,
	constants.FieldTempsTravailEstime,
	constants.FieldBat,
	constants.FieldExpress,
	constants.FieldPackFinAnnee,
	constants.FieldTypeSousTraitance,
	constants.FieldFournisseur,
}

// Colonnes masquées dans l'historique, par rôle.
var hiddenHistoryColumns = map[constants.Role][]string{
	constants.RoleCommercial: {
		constants.FieldNumeroPMS,
		constants.FieldInfographEnCharge,
		constants.FieldAgentImpression,
		constants.FieldMachineImpression,
		constants.FieldEtape,
		constants.FieldTempsTravailEstime,
	},
	constants.RoleInfograph: {
		constants.FieldPrixUnitaire,
		constants.FieldMachineImpression,
	},
	constants.RoleAtelier: {
		constants.FieldPrixUnitaire,
		constants.FieldTypeSousTraitance,
		constants.FieldFournisseur,
	},
	constants.RoleAdmin: {},
}

// HistoryColumns retourne les colonnes visibles du rôle, ordre d'affichage
// préservé.
func HistoryColumns(role constants.Role) []string {
	hidden := toSet(hiddenHistoryColumns[role])
	columns := make([]string, 0, len(historyColumnOrder))
	for _, c := range historyColumnOrder {
		if !hidden[c] {
			columns = append(columns, c)
		}
	}
	return columns
}

// CanFilterMachineImpression : le filtre machine d'impression n'est proposé
// qu'à l'admin et à l'atelier.
func CanFilterMachineImpression(role constants.Role) bool {
	return role == constants.RoleAdmin || role == constants.RoleAtelier
}

// CanInlineEditStatus : l'édition inline du statut est réservée à l'admin.
func CanInlineEditStatus(role constants.Role) bool {
	return role == constants.RoleAdmin
}
