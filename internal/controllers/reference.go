package controllers

import (
	"net/http"

	"printfront/internal/gateway"
	"printfront/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReferenceController sert les listes de référence des formulaires. Une
// liste inaccessible revient vide, jamais en erreur : les menus déroulants
// restent utilisables.
type ReferenceController struct {
	gateway *gateway.Client
	logger  *zap.Logger
}

func NewReferenceController(gw *gateway.Client, logger *zap.Logger) *ReferenceController {
	return &ReferenceController{gateway: gw, logger: logger}
}

func (c *ReferenceController) GetProducts(ctx echo.Context) error {
	page, limit := utils.ParsePaginationParams(ctx.Request().URL.Query())
	list := c.gateway.ListProducts(ctx.Request().Context(), page, limit)
	return utils.SuccessResponse(ctx, list, "Produits chargés", http.StatusOK)
}

func (c *ReferenceController) GetUsers(ctx echo.Context) error {
	list := c.gateway.ListUsers(ctx.Request().Context(), ctx.QueryParam("role"))
	return utils.SuccessResponse(ctx, list, "Utilisateurs chargés", http.StatusOK)
}

func (c *ReferenceController) GetSuppliers(ctx echo.Context) error {
	list := c.gateway.ListSuppliers(ctx.Request().Context())
	return utils.SuccessResponse(ctx, list, "Fournisseurs chargés", http.StatusOK)
}

func (c *ReferenceController) GetFinitions(ctx echo.Context) error {
	list := c.gateway.ListFinitions(ctx.Request().Context())
	return utils.SuccessResponse(ctx, list, "Finitions chargées", http.StatusOK)
}
