package orderform

import (
	"testing"

	"printfront/internal/entities"
	"printfront/pkg/constants"
	"printfront/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestForm(t *testing.T, role constants.Role) *Form {
	t.Helper()
	return NewForm(role, zap.NewNop())
}

func TestGoToStep2_RequiresClient(t *testing.T) {
	f := newTestForm(t, constants.RoleCommercial)

	err := f.GoToStep2()
	require.Error(t, err)
	assert.Equal(t, Step1OrderInfo, f.Step())

	f.ClientInfo = "Imprimerie du Port"
	require.NoError(t, f.GoToStep2())
	assert.Equal(t, Step2ProductConfig, f.Step())
}

func TestGoToStep2_AppendsBlankLineOnce(t *testing.T) {
	f := newTestForm(t, constants.RoleCommercial)
	f.ClientID = utils.ToPtr(uint64(4))

	require.NoError(t, f.GoToStep2())
	require.Len(t, f.Products, 1)
	// étape par défaut dérivée d'un atelier vide : pas d'étape imposée
	assert.Equal(t, "", f.Products[0].Etape)

	// aller-retour : les données sont conservées, pas de seconde ligne vierge
	f.GoToStep1()
	assert.Equal(t, Step1OrderInfo, f.Step())
	require.NoError(t, f.GoToStep2())
	assert.Len(t, f.Products, 1)
}

func TestNewEditForm_OpensOnStep2(t *testing.T) {
	order := &entities.Order{
		ID:         7,
		ClientInfo: "Mairie",
		OrderProducts: []entities.OrderProduct{
			{ID: 70, Quantity: 100, AtelierConcerne: constants.AtelierPetitFormat.String()},
			{ID: 71, Quantity: 50},
		},
	}
	f, err := NewEditForm(order, 71, constants.RoleAdmin, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Step2ProductConfig, f.Step())
	assert.Equal(t, ModeEditProduct, f.Mode())
	assert.Equal(t, uint64(71), f.TargetOrderProductID())
}

func TestNewEditForm_UnknownProduct(t *testing.T) {
	order := &entities.Order{ID: 7, OrderProducts: []entities.OrderProduct{{ID: 70}}}
	_, err := NewEditForm(order, 99, constants.RoleAdmin, zap.NewNop())
	require.Error(t, err)
}

func TestSetAtelier_ResetsEtapeAndSelection(t *testing.T) {
	cases := []struct {
		atelier constants.Atelier
		want    string
	}{
		{constants.AtelierPetitFormat, constants.EtapePrePresse},
		{constants.AtelierGrandFormat, constants.EtapePrePresse},
		{constants.AtelierSousTraitance, constants.EtapePrePresse},
		{constants.AtelierServiceCrea, ""},
	}

	for _, tc := range cases {
		t.Run(tc.atelier.String(), func(t *testing.T) {
			f := newTestForm(t, constants.RoleAdmin)
			f.ClientInfo = "client"
			require.NoError(t, f.GoToStep2())

			// produit déjà sélectionné et menu ouvert
			require.NoError(t, f.SelectProduct(0, 12, 3.5))
			f.OpenDropdown(DropdownKey{Row: 0, Kind: DropdownProduct})
			f.Products[0].Etape = constants.EtapeImpression

			require.NoError(t, f.SetAtelier(0, tc.atelier))

			line := f.Products[0]
			assert.Equal(t, tc.want, line.Etape)
			// le catalogue est rattaché à l'atelier : la sélection saute
			assert.Nil(t, line.ProductID)
			assert.False(t, f.Dropdown(DropdownKey{Row: 0, Kind: DropdownProduct}).Open)
		})
	}
}

func TestRemoveProduct_RekeysDropdowns(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())
	f.AddProduct()
	f.AddProduct()
	require.Len(t, f.Products, 3)

	f.OpenDropdown(DropdownKey{Row: 2, Kind: DropdownSupplier})
	f.SetDropdownQuery(DropdownKey{Row: 2, Kind: DropdownSupplier}, "pap")

	require.NoError(t, f.RemoveProduct(1))
	require.Len(t, f.Products, 2)

	st := f.Dropdown(DropdownKey{Row: 1, Kind: DropdownSupplier})
	assert.True(t, st.Open)
	assert.Equal(t, "pap", st.Query)
}

func TestOpenDropdown_SingleSlot(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())
	f.AddProduct()

	first := DropdownKey{Row: 0, Kind: DropdownProduct}
	second := DropdownKey{Row: 1, Kind: DropdownSupplier}

	f.OpenDropdown(first)
	f.OpenDropdown(second)

	assert.False(t, f.Dropdown(first).Open, "l'ouverture d'un menu remplace l'autre")
	assert.True(t, f.Dropdown(second).Open)
}

func TestCloseOutside(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())

	key := DropdownKey{Row: 0, Kind: DropdownProduct}
	f.OpenDropdown(key)

	// interaction dans la région du menu : rien ne bouge
	f.CloseOutside(key)
	assert.True(t, f.Dropdown(key).Open)

	// interaction ailleurs : le menu se ferme
	f.CloseOutside(DropdownKey{Row: 0, Kind: DropdownSupplier})
	assert.False(t, f.Dropdown(key).Open)
}

func TestEditMode_MutatingOtherRowPanics(t *testing.T) {
	order := &entities.Order{
		ID: 7,
		OrderProducts: []entities.OrderProduct{
			{ID: 70, Quantity: 1},
			{ID: 71, Quantity: 1},
		},
	}
	f, err := NewEditForm(order, 70, constants.RoleAdmin, zap.NewNop())
	require.NoError(t, err)

	assert.Panics(t, func() { _ = f.SetQuantity(1, 9) })
	assert.Panics(t, func() { f.AddProduct() })
	assert.NotPanics(t, func() { _ = f.SetQuantity(0, 9) })
}
