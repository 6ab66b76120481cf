package controllers

import (
	"net/http"

	"printfront/internal/realtime"
	"printfront/pkg/service"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketController branche une interface sur le flux temps réel relayé
// depuis le backend. Le jeton passe en paramètre de requête : les en-têtes
// ne traversent pas la poignée de main WebSocket des navigateurs.
type WebSocketController struct {
	hub        *realtime.Hub
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewWebSocketController(hub *realtime.Hub, jwtService service.JWTService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:        hub,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return ctx.String(http.StatusUnauthorized, "Jeton manquant")
	}

	claims, err := c.jwtService.ParseToken(tokenString)
	if err != nil {
		return ctx.String(http.StatusUnauthorized, "Jeton invalide")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("WebSocket: échec de la poignée de main", zap.Error(err))
		return err
	}

	client := realtime.NewClient(c.hub, conn, uint64(claims.UserID), c.logger)
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("WebSocket: interface connectée", zap.Uint64("userID", uint64(claims.UserID)))
	return nil
}
