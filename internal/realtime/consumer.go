package realtime

import (
	"context"
	"encoding/json"
	"time"

	"printfront/pkg/config"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	reconnectDelay    = 5 * time.Second
	maxReconnectDelay = 60 * time.Second
)

// Consumer maintient la connexion WebSocket vers le backend et rediffuse les
// événements de commandes aux interfaces via le Hub. Chaque interface
// redemande ensuite sa page d'historique avec son propre jeton : le serveur
// ne refait jamais d'appel backend pour le compte d'une session.
type Consumer struct {
	wsURL  string
	hub    *Hub
	logger *zap.Logger
}

func NewConsumer(cfg config.BackendConfig, hub *Hub, logger *zap.Logger) *Consumer {
	return &Consumer{
		wsURL:  cfg.WsURL,
		hub:    hub,
		logger: logger,
	}
}

// Run se connecte et se reconnecte tant que le contexte vit. Le délai de
// reconnexion double à chaque échec consécutif, plafonné à une minute, et
// repart du minimum dès qu'une connexion a abouti.
func (c *Consumer) Run(ctx context.Context) {
	delay := reconnectDelay
	for {
		connected, err := c.consume(ctx)
		if ctx.Err() != nil {
			return
		}
		if connected {
			delay = reconnectDelay
		}
		if err != nil {
			c.logger.Warn("flux temps réel interrompu, reconnexion",
				zap.String("url", c.wsURL),
				zap.Duration("delai", delay),
				zap.Error(err),
			)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

// consume dit si la connexion a abouti avant l'erreur qui l'a close.
func (c *Consumer) consume(ctx context.Context) (bool, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsURL, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close()
	c.logger.Info("flux temps réel connecté", zap.String("url", c.wsURL))

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteMessage(websocket.PongMessage, []byte(appData))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		c.dispatch(raw)
	}
}

func (c *Consumer) dispatch(raw []byte) {
	var event backendEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		c.logger.Warn("événement temps réel illisible", zap.Error(err))
		return
	}

	switch event.Type {
	case EventOrderCreated, EventOrderUpdated, EventOrderDeleted:
		c.hub.Broadcast(event.Type, event.Payload)
	default:
		c.logger.Debug("événement temps réel ignoré", zap.String("type", event.Type))
	}
}
