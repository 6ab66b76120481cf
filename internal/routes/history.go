package routes

import (
	"github.com/labstack/echo/v4"

	"printfront/internal/controllers"
)

func runHistoryRouter(secureGroup *echo.Group, historyCtrl *controllers.HistoryController, exportCtrl *controllers.ExportController) {
	{
		secureGroup.GET("/history/orders", historyCtrl.GetHistory)
		secureGroup.GET("/history/refresh", historyCtrl.RefreshHistory)
		secureGroup.GET("/history/stats", historyCtrl.GetStats)
		secureGroup.GET("/history/export", exportCtrl.ExportHistory)
		secureGroup.PATCH("/history/orders/:id/products/:productId/status", historyCtrl.UpdateStatus)
	}
}
