package orderform

import (
	"testing"

	"printfront/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formWithOneLine(t *testing.T, role constants.Role) *Form {
	t.Helper()
	f := newTestForm(t, role)
	f.ClientInfo = "client"
	require.NoError(t, f.GoToStep2())
	return f
}

func TestFinitions_CommercialBlocked(t *testing.T) {
	f := formWithOneLine(t, constants.RoleCommercial)

	// ajout, retrait et mise à jour : tous sans effet, sans erreur
	require.NoError(t, f.AddFinition(0, 4))
	assert.Empty(t, f.Products[0].Finitions)

	require.NoError(t, f.MarkFinitionDone(0, 4))
	require.NoError(t, f.RemoveFinition(0, 4))
	assert.Empty(t, f.Products[0].Finitions)
}

func TestFinitions_AddRemove(t *testing.T) {
	f := formWithOneLine(t, constants.RoleAtelier)

	require.NoError(t, f.AddFinition(0, 4))
	require.NoError(t, f.AddFinition(0, 9))
	require.Len(t, f.Products[0].Finitions, 2)

	require.NoError(t, f.RemoveFinition(0, 4))
	require.Len(t, f.Products[0].Finitions, 1)
	assert.Equal(t, uint64(9), f.Products[0].Finitions[0].FinitionID)
}

func TestFinitions_MarkDoneKeepsStart(t *testing.T) {
	f := formWithOneLine(t, constants.RoleAtelier)
	require.NoError(t, f.AddFinition(0, 4))
	require.NoError(t, f.SetFinitionStart(0, 4, "2026-02-02T08:00"))

	require.NoError(t, f.MarkFinitionDone(0, 4))
	fin := f.Products[0].Finitions[0]
	assert.NotEmpty(t, fin.EndDate, "terminé pose une date de fin")
	assert.Equal(t, "2026-02-02T08:00", fin.StartDate, "le début ne bouge pas")

	// l'annulation ramène la fin à la chaîne vide, toujours sans toucher le début
	require.NoError(t, f.ClearFinitionDone(0, 4))
	fin = f.Products[0].Finitions[0]
	assert.Equal(t, "", fin.EndDate)
	assert.Equal(t, "2026-02-02T08:00", fin.StartDate)
}

func TestFinitions_SetAgents(t *testing.T) {
	f := formWithOneLine(t, constants.RoleInfograph)
	require.NoError(t, f.AddFinition(0, 4))

	require.NoError(t, f.SetFinitionAgents(0, 4, []uint64{11, 12}))
	assert.Equal(t, []uint64{11, 12}, f.Products[0].Finitions[0].AgentIDs)
}

func TestFinitions_UnknownFinition(t *testing.T) {
	f := formWithOneLine(t, constants.RoleAtelier)
	err := f.SetFinitionStart(0, 99, "2026-02-02T08:00")
	require.Error(t, err)
}
