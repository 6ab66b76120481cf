package realtime

import "time"

// Types d'événements poussés par le backend et relayés aux interfaces.
const (
	EventOrderCreated = "orderCreated"
	EventOrderUpdated = "orderUpdated"
	EventOrderDeleted = "orderDeleted"
)

// Envelope enveloppe chaque message temps réel relayé aux interfaces.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// backendEvent : forme minimale d'un événement reçu du backend. Le payload
// brut est relayé tel quel, seul le type est inspecté ici.
type backendEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}
