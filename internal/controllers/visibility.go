package controllers

import (
	"net/http"

	"printfront/internal/visibility"
	"printfront/pkg/constants"
	"printfront/pkg/middleware"
	"printfront/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// VisibilityController expose la politique de champs du rôle connecté :
// visibilité et verrouillage du formulaire, colonnes de l'historique,
// capacités de filtrage et d'édition.
type VisibilityController struct {
	logger *zap.Logger
}

func NewVisibilityController(logger *zap.Logger) *VisibilityController {
	return &VisibilityController{logger: logger}
}

func (c *VisibilityController) GetVisibility(ctx echo.Context) error {
	role, err := middleware.RoleFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	m := visibility.Resolve(role)

	readOnlyOrder := make(map[string]bool, len(constants.OrderFields))
	for _, field := range constants.OrderFields {
		readOnlyOrder[field] = visibility.IsFieldReadOnly(role, constants.SectionOrder, field)
	}
	readOnlyProduct := make(map[string]bool, len(constants.ProductFields))
	for _, field := range constants.ProductFields {
		readOnlyProduct[field] = visibility.IsFieldReadOnly(role, constants.SectionProduct, field)
	}

	body := map[string]interface{}{
		"role": role,
		"visible": map[string]interface{}{
			string(constants.SectionOrder):   m.OrderLevel,
			string(constants.SectionProduct): m.ProductLevel,
		},
		"readOnly": map[string]interface{}{
			string(constants.SectionOrder):   readOnlyOrder,
			string(constants.SectionProduct): readOnlyProduct,
		},
		"historyColumns": visibility.HistoryColumns(role),
		"capabilities": map[string]bool{
			"filterMachineImpression": visibility.CanFilterMachineImpression(role),
			"inlineEditStatus":        visibility.CanInlineEditStatus(role),
			"mutateFinitions":         visibility.CanMutateFinitions(role),
		},
	}

	return utils.SuccessResponse(ctx, body, "Politique de visibilité chargée", http.StatusOK)
}
