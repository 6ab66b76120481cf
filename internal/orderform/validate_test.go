package orderform

import (
	"testing"

	"printfront/pkg/constants"
	apperrors "printfront/pkg/errors"
	"printfront/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remplit une ligne valide pour le rôle admin.
func fillValidLine(line *ProductLine) {
	line.ProductID = utils.ToPtr(uint64(3))
	line.Quantity = 10
	line.Express = constants.ChoixNon
	line.PackFinAnnee = constants.ChoixNon
	line.AtelierConcerne = constants.AtelierPetitFormat.String()
	line.Etape = constants.EtapePrePresse
	line.Bat = constants.BatSans
}

func TestValidate_ClientFirst(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client")
}

// Sans produit, l'échec est toujours "au moins un produit", quelle que soit
// la validité des données commande.
func TestValidate_ZeroProducts(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "Mairie de Lyon"
	f.NumeroAffaire = "AFF-2025-091"

	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "au moins un produit")
}

func TestValidate_OrderedShortCircuit(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())

	// tout manque : le premier échec est le produit non choisi
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sélectionner un produit pour la ligne 1")

	f.Products[0].ProductID = utils.ToPtr(uint64(5))
	f.Products[0].Quantity = 0
	err = f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantité valide pour le produit 1")

	f.Products[0].Quantity = 2
	err = f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "express pour le produit 1")
}

func TestValidate_SousTraitanceSupplier(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())
	f.AddProduct()

	fillValidLine(f.Products[0])
	fillValidLine(f.Products[1])
	f.Products[1].AtelierConcerne = constants.AtelierSousTraitance.String()
	f.Products[1].SupplierID = nil

	err := f.Validate()
	require.Error(t, err)
	// le message référence la sous-traitance et l'index 1-indexé de la ligne
	assert.Contains(t, err.Error(), "fournisseur pour la sous-traitance")
	assert.Contains(t, err.Error(), "produit 2")

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 2, valErr.Row)

	f.Products[1].SupplierID = utils.ToPtr(uint64(8))
	assert.NoError(t, f.Validate())
}

// L'étape doit appartenir au jeu de l'atelier choisi.
func TestValidate_EtapeIllegalePourAtelier(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())
	fillValidLine(f.Products[0])
	f.Products[0].AtelierConcerne = constants.AtelierServiceCrea.String()
	f.Products[0].Etape = constants.EtapeImpression

	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "atelier")

	f.Products[0].Etape = constants.EtapeConception
	assert.NoError(t, f.Validate())
}

// Un champ masqué pour le rôle n'est jamais exigé : le commercial ne voit pas
// l'étape ni les finitions, sa soumission passe sans elles.
func TestValidate_HiddenFieldsNotRequired(t *testing.T) {
	f := newTestForm(t, constants.RoleCommercial)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())
	fillValidLine(f.Products[0])
	f.Products[0].Etape = ""

	assert.NoError(t, f.Validate())
}

func TestBuildCreateDTO_ConvertsDates(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientID = utils.ToPtr(uint64(2))
	f.DateLivraisonEstimee = "2026-03-14T09:30"
	require.NoError(t, f.GoToStep2())
	fillValidLine(f.Products[0])

	payload, err := f.BuildCreateDTO()
	require.NoError(t, err)
	require.Len(t, payload.Products, 1)
	// la date part en ISO absolu, plus en saisie locale naïve
	assert.NotEqual(t, "2026-03-14T09:30", payload.DateLivraisonEstimee)
	assert.Contains(t, payload.DateLivraisonEstimee, "Z")
}

func TestBuildCreateDTO_ValidationFailureNoPayload(t *testing.T) {
	f := newTestForm(t, constants.RoleAdmin)
	f.ClientInfo = "client"

	payload, err := f.BuildCreateDTO()
	assert.Nil(t, payload)
	require.Error(t, err)
}
