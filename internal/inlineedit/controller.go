// Fichier: internal/inlineedit/controller.go
package inlineedit

import (
	"context"

	"printfront/internal/visibility"
	"printfront/pkg/constants"
	apperrors "printfront/pkg/errors"

	"go.uber.org/zap"
)

// CellKey désigne une cellule du tableau d'historique. Seul le statut est
// éditable inline, la clé n'a donc pas de composante champ.
type CellKey struct {
	OrderID        uint64
	OrderProductID uint64
}

// CommitFunc pousse la nouvelle valeur vers le backend.
type CommitFunc func(ctx context.Context, key CellKey, value string) error

type editState struct {
	key     CellKey
	current string
	temp    string
}

// Controller : un seul créneau d'édition global. Ouvrir une cellule remplace
// implicitement toute autre édition ouverte ; ce n'est pas une édition
// multi-cellules concurrente. Tout se joue sur le fil d'exécution de
// l'interface, pas de verrou.
type Controller struct {
	logger *zap.Logger
	role   constants.Role
	commit CommitFunc
	open   *editState
}

func NewController(role constants.Role, commit CommitFunc, logger *zap.Logger) *Controller {
	return &Controller{
		logger: logger,
		role:   role,
		commit: commit,
	}
}

// Begin ouvre l'édition d'une cellule : la valeur temporaire est amorcée
// depuis la valeur courante. Refusé hors rôle admin.
func (c *Controller) Begin(key CellKey, currentValue string) error {
	if !visibility.CanInlineEditStatus(c.role) {
		return apperrors.ErrForbidden
	}
	c.open = &editState{key: key, current: currentValue, temp: currentValue}
	return nil
}

// IsEditing dit si la cellule est celle en cours d'édition.
func (c *Controller) IsEditing(key CellKey) bool {
	return c.open != nil && c.open.key == key
}

// SetTemp remplace la valeur temporaire de l'édition ouverte.
func (c *Controller) SetTemp(value string) {
	if c.open != nil {
		c.open.temp = value
	}
}

// Temp retourne la valeur temporaire courante.
func (c *Controller) Temp() string {
	if c.open == nil {
		return ""
	}
	return c.open.temp
}

// Commit clôt l'édition sur blur/Entrée. Valeur inchangée : fermeture sans
// appel. Valeur modifiée : appel backend ; en cas de succès la nouvelle
// valeur est retournée pour remplacement local de la ligne. En cas d'échec
// l'édition est fermée de force et la valeur temporaire jetée, pas de
// nouvelle tentative.
func (c *Controller) Commit(ctx context.Context) (value string, changed bool, err error) {
	if c.open == nil {
		return "", false, nil
	}
	state := c.open

	if state.temp == state.current {
		c.open = nil
		return state.current, false, nil
	}

	if err := c.commit(ctx, state.key, state.temp); err != nil {
		c.logger.Warn("échec de l'édition inline du statut",
			zap.Uint64("order_id", state.key.OrderID),
			zap.Uint64("order_product_id", state.key.OrderProductID),
			zap.Error(err),
		)
		c.open = nil
		return state.current, false, err
	}

	c.open = nil
	return state.temp, true, nil
}

// Cancel ferme l'édition sans appel (Échap).
func (c *Controller) Cancel() {
	c.open = nil
}
