// Package events handles event emission for itinerary lifecycle changes.
// Emission is best-effort: a failed publish is logged, never surfaced to the
// mutation caller.
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"wayfarer/pkg/kafka"
	"wayfarer/pkg/models"
	"wayfarer/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Publisher publishes trip events. Satisfied by *kafka.Producer.
type Publisher interface {
	PublishTripEvent(ctx context.Context, event *kafka.TripEvent) error
}

// Emitter handles event emission for Wayfarer
type Emitter struct {
	publisher Publisher
	logger    ectologger.Logger
}

// NewEmitter creates a new event emitter. A nil publisher disables emission.
func NewEmitter(publisher Publisher, logger ectologger.Logger) *Emitter {
	return &Emitter{
		publisher: publisher,
		logger:    logger,
	}
}

// EmitItineraryUpdated emits an event after a successful mutation.
func (e *Emitter) EmitItineraryUpdated(ctx context.Context, sessionID, operation string, doc *models.ItineraryDocument) {
	if e == nil || e.publisher == nil {
		return
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitItineraryUpdated")
	defer span.End()

	payload := map[string]any{
		"schema_version": SchemaVersion,
		"location_count": len(doc.Locations),
	}
	data, _ := json.Marshal(payload)

	event := &kafka.TripEvent{
		EventType: "itinerary.updated",
		SessionID: sessionID,
		Operation: operation,
		Data:      data,
	}

	if err := e.publisher.PublishTripEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit itinerary.updated event")
	}
}

// EmitCostsSaved emits an event after a reconciled batch is persisted.
func (e *Emitter) EmitCostsSaved(ctx context.Context, sessionID, destinationID string, items []models.CostItem, totalUSD float64) {
	if e == nil || e.publisher == nil {
		return
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitCostsSaved")
	defer span.End()

	payload := map[string]any{
		"schema_version": SchemaVersion,
		"destination_id": destinationID,
		"item_count":     len(items),
		"total_usd":      totalUSD,
	}
	data, _ := json.Marshal(payload)

	event := &kafka.TripEvent{
		EventType: "costs.saved",
		SessionID: sessionID,
		Data:      data,
	}

	if err := e.publisher.PublishTripEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit costs.saved event")
	}
}
