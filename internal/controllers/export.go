package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"printfront/internal/dto"
	"printfront/internal/gateway"
	"printfront/internal/history"
	"printfront/internal/visibility"
	"printfront/pkg/constants"
	"printfront/pkg/middleware"
	"printfront/pkg/utils"
)

// ExportController produit l'export XLSX de l'historique : mêmes filtres que
// la consultation, colonnes restreintes à celles visibles du rôle. L'export
// interroge la passerelle directement, sans passer par l'état de consultation
// des sessions.
type ExportController struct {
	gateway *gateway.Client
	logger  *zap.Logger
}

func NewExportController(gw *gateway.Client, logger *zap.Logger) *ExportController {
	return &ExportController{gateway: gw, logger: logger}
}

// exportLimit : l'export embarque tout le résultat filtré, pas une page.
const exportLimit = 100000

var columnLabels = map[string]string{
	constants.FieldNumeroAffaire:        "N° affaire",
	constants.FieldNumeroDM:             "N° DM",
	constants.FieldClient:               "Client",
	constants.FieldCommercialEnCharge:   "Commercial en charge",
	constants.FieldDateLivraisonEstimee: "Livraison estimée",
	constants.FieldStatut:               "Statut",
	constants.FieldProduit:              "Produit",
	constants.FieldQuantite:             "Quantité",
	constants.FieldPrixUnitaire:         "Prix unitaire",
	constants.FieldNumeroPMS:            "N° PMS",
	constants.FieldInfographEnCharge:    "Infographiste",
	constants.FieldAgentImpression:      "Agent d'impression",
	constants.FieldMachineImpression:    "Machine d'impression",
	constants.FieldEtape:                "Étape",
	constants.FieldAtelierConcerne:      "Atelier concerné",
	constants.FieldTempsTravailEstime:   "Temps estimé (min)",
	constants.FieldBat:                  "BAT",
	constants.FieldExpress:              "Express",
	constants.FieldPackFinAnnee:         "Pack fin d'année",
	constants.FieldTypeSousTraitance:    "Type de sous-traitance",
	constants.FieldFournisseur:          "Fournisseur",
}

func columnValue(row dto.HistoryRowDTO, field string) interface{} {
	switch field {
	case constants.FieldNumeroAffaire:
		return row.NumeroAffaire
	case constants.FieldNumeroDM:
		return row.NumeroDM
	case constants.FieldClient:
		return row.ClientInfo
	case constants.FieldCommercialEnCharge:
		return row.CommercialEnCharge
	case constants.FieldDateLivraisonEstimee:
		return row.DateLivraisonEstimee
	case constants.FieldStatut:
		return row.Statut
	case constants.FieldProduit:
		return row.ProductNom
	case constants.FieldQuantite:
		return row.Quantity
	case constants.FieldPrixUnitaire:
		return row.UnitPrice
	case constants.FieldNumeroPMS:
		return row.NumeroPMS
	case constants.FieldInfographEnCharge:
		return row.InfographEnCharge
	case constants.FieldAgentImpression:
		return row.AgentImpression
	case constants.FieldMachineImpression:
		return row.MachineImpression
	case constants.FieldEtape:
		return row.Etape
	case constants.FieldAtelierConcerne:
		return row.AtelierConcerne
	case constants.FieldTempsTravailEstime:
		return row.TempsTravailEstime
	case constants.FieldBat:
		return row.Bat
	case constants.FieldExpress:
		return row.Express
	case constants.FieldPackFinAnnee:
		return row.PackFinAnnee
	case constants.FieldTypeSousTraitance:
		return row.TypeSousTraitance
	case constants.FieldFournisseur:
		return row.SupplierNom
	}
	return ""
}

func (c *ExportController) ExportHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	role, err := middleware.RoleFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filter := history.ParseFilter(ctx.Request().URL.Query(), visibility.CanFilterMachineImpression(role))

	orders, _, err := c.gateway.ListHistory(reqCtx, filter.QueryValues(1, exportLimit))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	rows := history.Flatten(orders)

	columns := visibility.HistoryColumns(role)
	return c.respondWithXLSX(ctx, columns, rows)
}

func (c *ExportController) respondWithXLSX(ctx echo.Context, columns []string, rows []dto.HistoryRowDTO) error {
	f := excelize.NewFile()
	sheet := "Historique"
	f.SetSheetName("Sheet1", sheet)

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = columnLabels[col]
	}
	f.SetSheetRow(sheet, "A1", &headers)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := make([]interface{}, len(columns))
		for j, col := range columns {
			values[j] = columnValue(row, col)
		}
		f.SetSheetRow(sheet, cell, &values)
	}

	fileName := fmt.Sprintf("historique_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
