package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"printfront/internal/controllers"
	"printfront/internal/gateway"
	"printfront/internal/history"
	"printfront/internal/realtime"
	"printfront/pkg/middleware"
	"printfront/pkg/service"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Order   *zap.Logger
	History *zap.Logger
}

// InitRouter assemble toute la surface HTTP : contrôleurs, groupe sécurisé
// par le jeton de session du backend, flux WebSocket.
func InitRouter(e *echo.Echo, gw *gateway.Client, historyService *history.Service, hub *realtime.Hub, jwtSvc service.JWTService, loggers *Loggers) {
	loggers.Main.Info("InitRouter: création des routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)
	secureGroup := api.Group("", authMW.Auth)

	orderCtrl := controllers.NewOrderController(gw, loggers.Order)
	historyCtrl := controllers.NewHistoryController(historyService, gw, loggers.History)
	exportCtrl := controllers.NewExportController(gw, loggers.History)
	referenceCtrl := controllers.NewReferenceController(gw, loggers.Main)
	visibilityCtrl := controllers.NewVisibilityController(loggers.Main)
	wsCtrl := controllers.NewWebSocketController(hub, jwtSvc, loggers.Main)

	runOrderRouter(secureGroup, orderCtrl)
	runHistoryRouter(secureGroup, historyCtrl, exportCtrl)
	runReferenceRouter(secureGroup, referenceCtrl)
	runVisibilityRouter(secureGroup, visibilityCtrl)

	// La poignée de main WebSocket porte le jeton en paramètre de requête,
	// elle ne passe pas par le middleware d'en-tête.
	api.GET("/ws", wsCtrl.ServeWs)

	loggers.Main.Info("InitRouter: routes créées")
}
