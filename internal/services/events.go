package services

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Routing keys of the domain events published by the services.
const (
	EventBookCreated       = "book.created"
	EventBooksBulkCreated  = "books.bulk_created"
	EventBookUpdated       = "book.updated"
	EventBookDeleted       = "book.deleted"
	EventUserUpdated       = "user.updated"
	EventUserBanUpdated    = "user.ban_state_updated"
	EventOrderCreated      = "order.created"
	EventOrderStatusUpdate = "order.status_updated"
)

// Publisher delivers an encoded event to the message broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Event is the envelope every domain event is published in.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

// publishEvent sends an event if a publisher is configured. Failures are
// logged and never fail the request that produced the event.
func publishEvent(ctx context.Context, pub Publisher, routingKey string, data interface{}) {
	if pub == nil {
		return
	}
	body, err := json.Marshal(Event{Type: routingKey, OccurredAt: time.Now().UTC(), Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := pub.Publish(ctx, routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
