package controllers

import (
	"context"
	"net/http"
	"strconv"

	"printfront/internal/dto"
	"printfront/internal/gateway"
	"printfront/internal/history"
	"printfront/internal/inlineedit"
	"printfront/internal/visibility"
	"printfront/pkg/constants"
	apperrors "printfront/pkg/errors"
	"printfront/pkg/middleware"
	"printfront/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HistoryController sert le tableau des commandes archivées : consultation
// filtrée et paginée, agrégats, et édition inline du statut.
type HistoryController struct {
	service *history.Service
	gateway *gateway.Client
	logger  *zap.Logger
}

func NewHistoryController(service *history.Service, gw *gateway.Client, logger *zap.Logger) *HistoryController {
	return &HistoryController{service: service, gateway: gw, logger: logger}
}

func (c *HistoryController) GetHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	role, err := middleware.RoleFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	userID, err := middleware.UserIDFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	values := ctx.Request().URL.Query()
	filter := history.ParseFilter(values, visibility.CanFilterMachineImpression(role))
	page, limit := utils.ParsePaginationParams(values)

	rows, pagination, err := c.service.Fetch(reqCtx, userID, filter, page, limit)
	if err != nil {
		if err == history.ErrStaleResponse {
			return ctx.NoContent(http.StatusNoContent)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.PaginatedResponse(ctx, rows, "Historique chargé", pagination)
}

// RefreshHistory rejoue la dernière consultation de la session : l'interface
// l'appelle quand un événement temps réel lui signale un changement, avec son
// propre jeton.
func (c *HistoryController) RefreshHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := middleware.UserIDFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rows, pagination, err := c.service.Refresh(reqCtx, userID)
	if err != nil {
		if err == history.ErrStaleResponse {
			return ctx.NoContent(http.StatusNoContent)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.PaginatedResponse(ctx, rows, "Historique rafraîchi", pagination)
}

func (c *HistoryController) GetStats(ctx echo.Context) error {
	stats, err := c.service.Stats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stats, "Statistiques chargées", http.StatusOK)
}

// UpdateStatus traite l'édition inline du statut d'une ligne : un seul
// créneau d'édition, réservé à l'admin, pas de nouvelle tentative en cas
// d'échec backend.
func (c *HistoryController) UpdateStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	role, err := middleware.RoleFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Identifiant de commande invalide", err, nil), c.logger)
	}
	orderProductID, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Identifiant de ligne produit invalide", err, nil), c.logger)
	}

	var payload dto.UpdateStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Soumission illisible", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if !constants.IsKnownStatus(payload.Statut) {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Statut inconnu", nil, map[string]interface{}{"statut": payload.Statut}), c.logger)
	}

	editor := inlineedit.NewController(role, func(commitCtx context.Context, key inlineedit.CellKey, value string) error {
		return c.gateway.UpdateOrderProductStatus(commitCtx, key.OrderID, key.OrderProductID, value)
	}, c.logger)

	key := inlineedit.CellKey{OrderID: orderID, OrderProductID: orderProductID}
	if err := editor.Begin(key, payload.StatutPrecedent); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusForbidden, "L'édition du statut est réservée à l'administrateur", err, nil), c.logger)
	}
	editor.SetTemp(payload.Statut)

	value, changed, err := editor.Commit(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	body := map[string]interface{}{"statut": value, "changed": changed}
	return utils.SuccessResponse(ctx, body, "Statut enregistré", http.StatusOK)
}
