package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub tient le registre des interfaces connectées et leur rediffuse les
// événements reçus du backend.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	Register   chan *Client
	unregister chan *Client
	logger     *zap.Logger
	mu         sync.RWMutex
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.logger.Debug("interface connectée", zap.Uint64("userID", client.UserID))
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Debug("interface déconnectée", zap.Uint64("userID", client.UserID))
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast rediffuse un événement enveloppé à toutes les interfaces.
func (h *Hub) Broadcast(messageType string, payload interface{}) {
	envelope := Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("sérialisation de l'événement temps réel échouée", zap.Error(err))
		return
	}
	h.broadcast <- raw
}
