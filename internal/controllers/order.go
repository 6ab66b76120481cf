package controllers

import (
	"net/http"
	"strconv"

	"printfront/internal/dto"
	"printfront/internal/gateway"
	"printfront/internal/orderform"
	apperrors "printfront/pkg/errors"
	"printfront/pkg/middleware"
	"printfront/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderController reçoit les soumissions de l'assistant de saisie, les
// rejoue dans le formulaire pour appliquer les règles du rôle, puis pousse
// la charge utile vers le backend.
type OrderController struct {
	gateway *gateway.Client
	logger  *zap.Logger
}

func NewOrderController(gw *gateway.Client, logger *zap.Logger) *OrderController {
	return &OrderController{gateway: gw, logger: logger}
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	role, err := middleware.RoleFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var sub dto.OrderFormDTO
	if err := ctx.Bind(&sub); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Soumission illisible", err, nil), c.logger)
	}

	form, err := orderform.FromSubmission(&sub, role, c.logger)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	payload, err := form.BuildCreateDTO()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.gateway.CreateOrder(reqCtx, payload)
	if err != nil {
		c.logger.Error("création de commande refusée par le backend", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, order, "Commande créée avec succès", http.StatusCreated)
}

// UpdateOrderProduct édite une seule ligne produit d'une affaire existante.
// L'affaire est rechargée, la saisie rejouée sur la ligne cible, et seule
// cette ligne part vers le backend.
func (c *OrderController) UpdateOrderProduct(ctx echo.Context) error {
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

	var spec dto.ProductLineFormDTO
	if err := ctx.Bind(&spec); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Soumission illisible", err, nil), c.logger)
	}

	order, err := c.gateway.GetOrder(reqCtx, orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	form, err := orderform.NewEditForm(order, orderProductID, role, c.logger)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusNotFound, "Ligne produit introuvable dans cette commande", err, nil), c.logger)
	}
	if err := form.ApplyEditedLine(spec); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	payload, err := form.BuildEditedLineDTO()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.gateway.UpdateOrderProduct(reqCtx, orderID, form.TargetOrderProductID(), payload); err != nil {
		c.logger.Error("mise à jour de ligne refusée par le backend",
			zap.Uint64("orderID", orderID),
			zap.Uint64("orderProductID", orderProductID),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Ligne produit mise à jour", http.StatusOK)
}

func (c *OrderController) DeleteOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Identifiant de commande invalide", err, nil), c.logger)
	}

	if err := c.gateway.DeleteOrder(reqCtx, orderID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Commande supprimée", http.StatusOK)
}
