package visibility

import (
	"testing"

	"printfront/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Chaque rôle doit obtenir une entrée booléenne pour chaque champ connu,
// jamais d'entrée absente.
func TestResolve_CompleteForAllRoles(t *testing.T) {
	for _, role := range constants.KnownRoles {
		m := Resolve(role)

		require.Len(t, m.OrderLevel, len(constants.OrderFields), "rôle %s: orderLevel incomplet", role)
		require.Len(t, m.ProductLevel, len(constants.ProductFields), "rôle %s: productLevel incomplet", role)

		for _, f := range constants.OrderFields {
			_, ok := m.OrderLevel[f]
			assert.True(t, ok, "rôle %s: champ commande %s sans entrée", role, f)
		}
		for _, f := range constants.ProductFields {
			_, ok := m.ProductLevel[f]
			assert.True(t, ok, "rôle %s: champ produit %s sans entrée", role, f)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first := Resolve(constants.RoleInfograph)
	second := Resolve(constants.RoleInfograph)
	assert.Equal(t, first, second)
}

func TestResolve_AdminSeesEverything(t *testing.T) {
	m := Resolve(constants.RoleAdmin)
	for f, visible := range m.OrderLevel {
		assert.True(t, visible, "admin: champ commande %s masqué", f)
	}
	for f, visible := range m.ProductLevel {
		assert.True(t, visible, "admin: champ produit %s masqué", f)
	}
}

func TestResolve_CommercialHiddenProductionFields(t *testing.T) {
	m := Resolve(constants.RoleCommercial)
	assert.False(t, m.ProductLevel[constants.FieldNumeroPMS])
	assert.False(t, m.ProductLevel[constants.FieldEtape])
	assert.False(t, m.ProductLevel[constants.FieldFinitions])
	assert.True(t, m.ProductLevel[constants.FieldProduit])
	assert.True(t, m.ProductLevel[constants.FieldFournisseur])
}

// Pour l'atelier, seul (productLevel, finitions) est éditable ; tout le
// reste est en lecture seule.
func TestIsFieldReadOnly_AtelierOnlyFinitions(t *testing.T) {
	for _, f := range constants.OrderFields {
		assert.True(t, IsFieldReadOnly(constants.RoleAtelier, constants.SectionOrder, f), "atelier: %s devrait être verrouillé", f)
	}
	for _, f := range constants.ProductFields {
		want := f != constants.FieldFinitions
		assert.Equal(t, want, IsFieldReadOnly(constants.RoleAtelier, constants.SectionProduct, f), "atelier: %s", f)
	}
}

func TestIsFieldReadOnly_AutoPopulated(t *testing.T) {
	// commercial_en_charge est auto-rempli : visible mais jamais éditable.
	assert.True(t, IsFieldReadOnly(constants.RoleCommercial, constants.SectionOrder, constants.FieldCommercialEnCharge))
	assert.True(t, IsFieldReadOnly(constants.RoleAdmin, constants.SectionOrder, constants.FieldCommercialEnCharge))
	// un champ visible ordinaire reste éditable.
	assert.False(t, IsFieldReadOnly(constants.RoleCommercial, constants.SectionOrder, constants.FieldClient))
}

func TestIsFieldReadOnly_HiddenFieldIsLocked(t *testing.T) {
	assert.True(t, IsFieldReadOnly(constants.RoleCommercial, constants.SectionProduct, constants.FieldNumeroPMS))
}

func TestCanMutateFinitions(t *testing.T) {
	assert.False(t, CanMutateFinitions(constants.RoleCommercial))
	assert.True(t, CanMutateFinitions(constants.RoleAtelier))
	assert.True(t, CanMutateFinitions(constants.RoleInfograph))
	assert.True(t, CanMutateFinitions(constants.RoleAdmin))
}

func TestHistoryColumns_RoleSpecific(t *testing.T) {
	adminCols := HistoryColumns(constants.RoleAdmin)
	assert.Contains(t, adminCols, constants.FieldMachineImpression)

	commercialCols := HistoryColumns(constants.RoleCommercial)
	assert.NotContains(t, commercialCols, constants.FieldNumeroPMS)
	assert.Contains(t, commercialCols, constants.FieldPrixUnitaire)

	atelierCols := HistoryColumns(constants.RoleAtelier)
	assert.NotContains(t, atelierCols, constants.FieldPrixUnitaire)
	assert.Contains(t, atelierCols, constants.FieldMachineImpression)
}

func TestCanFilterMachineImpression(t *testing.T) {
	assert.True(t, CanFilterMachineImpression(constants.RoleAdmin))
	assert.True(t, CanFilterMachineImpression(constants.RoleAtelier))
	assert.False(t, CanFilterMachineImpression(constants.RoleCommercial))
	assert.False(t, CanFilterMachineImpression(constants.RoleInfograph))
}

func TestCanInlineEditStatus(t *testing.T) {
	assert.True(t, CanInlineEditStatus(constants.RoleAdmin))
	assert.False(t, CanInlineEditStatus(constants.RoleAtelier))
}
