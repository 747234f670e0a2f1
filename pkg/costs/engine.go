// Package costs reconciles five-category research payloads into persisted
// cost items scaled by trip parameters.
package costs

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"wayfarer/pkg/currency"
	"wayfarer/pkg/events"
	"wayfarer/pkg/identity"
	"wayfarer/pkg/metrics"
	"wayfarer/pkg/models"
	"wayfarer/pkg/tracing"
	"wayfarer/pkg/tripstore"
)

// UnknownDestinationID is the placeholder id assigned when upstream data
// carries neither a destination id nor a usable name. Every persisted cost
// item has some destination id.
const UnknownDestinationID = "unknown_destination"

// Store is the persistence boundary the engine writes reconciled batches to.
type Store interface {
	GetItinerary(ctx context.Context, sessionID string) (*models.ItineraryDocument, error)
	BulkSaveCosts(ctx context.Context, req *tripstore.BulkSaveRequest) error
}

// ReconcileRequest carries one destination's research payload plus the trip
// parameters that scale it.
type ReconcileRequest struct {
	SessionID       string                  `json:"session_id"`
	ScenarioID      string                  `json:"scenario_id"`
	DestinationName string                  `json:"destination_name"`
	DestinationID   any                     `json:"destination_id"`
	DurationDays    int                     `json:"duration_days"`
	NumTravelers    int                     `json:"num_travelers"`
	ResearchData    *models.ResearchPayload `json:"research_data"`
}

// ReconcileResult is the outcome of one reconciliation. Status "error" means
// the persistence boundary rejected the batch; the items themselves were
// still built and are returned for inspection.
type ReconcileResult struct {
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	CostItems []models.CostItem `json:"cost_items"`
	TotalUSD  float64           `json:"total_usd"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// Engine reconciles research payloads into cost items and persists them.
type Engine struct {
	store    Store
	resolver *identity.Resolver
	emitter  *events.Emitter
	logger   ectologger.Logger
}

// NewEngine creates a new reconciliation engine.
func NewEngine(store Store, resolver *identity.Resolver, emitter *events.Emitter, logger ectologger.Logger) *Engine {
	return &Engine{
		store:    store,
		resolver: resolver,
		emitter:  emitter,
		logger:   logger,
	}
}

// payloadCategory pairs a research sub-object with its stored category name.
type payloadCategory struct {
	name     string
	category string
	data     *models.ResearchCategory
}

// Reconcile builds one cost item per category present in the payload, scales
// amounts by the trip parameters, repairs destination and currency fields,
// and submits the batch to the boundary as a single write.
//
// A missing scenario id is a hard precondition failure. A boundary rejection
// is not a Go error: it yields Status "error" carrying the boundary's message
// verbatim, and the batch is never partially retried.
func (e *Engine) Reconcile(ctx context.Context, req *ReconcileRequest) (*ReconcileResult, error) {
	ctx, span := tracing.StartSpan(ctx, "costs.Engine.Reconcile")
	defer span.End()

	if strings.TrimSpace(req.ScenarioID) == "" {
		metrics.ReconciliationsTotal.WithLabelValues("error").Inc()
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "scenario_id is required: no scenario to update")
	}
	if req.ResearchData == nil {
		metrics.ReconciliationsTotal.WithLabelValues("error").Inc()
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "research_data is required")
	}

	destID := coerceDestinationID(req.DestinationID, req.DestinationName)
	items := e.buildItems(destID, req)

	items, warnings := e.repairItems(ctx, req.SessionID, items)

	totalUSD := 0.0
	for _, item := range items {
		totalUSD += item.AmountUSD
	}

	result := &ReconcileResult{
		Status:    "success",
		CostItems: items,
		TotalUSD:  totalUSD,
		Warnings:  warnings,
	}

	err := e.store.BulkSaveCosts(ctx, &tripstore.BulkSaveRequest{
		SessionID:       req.SessionID,
		ScenarioID:      req.ScenarioID,
		DestinationID:   destID,
		DestinationName: req.DestinationName,
		CostItems:       items,
	})
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues("error").Inc()
		e.logger.WithContext(ctx).WithError(err).Error("Failed to persist reconciled cost batch")
		result.Status = "error"
		result.Message = err.Error()
		return result, nil
	}

	metrics.ReconciliationsTotal.WithLabelValues("success").Inc()
	e.emitter.EmitCostsSaved(ctx, req.SessionID, destID, items, totalUSD)

	e.logger.WithContext(ctx).WithFields(map[string]any{
		"destination_id": destID,
		"item_count":     len(items),
		"total_usd":      totalUSD,
	}).Info("Reconciled cost batch")

	return result, nil
}

// buildItems produces one scaled cost item per category present in the
// payload, keyed by the deterministic composite upsert id.
func (e *Engine) buildItems(destID string, req *ReconcileRequest) []models.CostItem {
	research := req.ResearchData
	categories := []payloadCategory{
		{"accommodation", models.CategoryAccommodation, research.Accommodation},
		{"flights", models.CategoryFlight, research.Flights},
		{"food_daily", models.CategoryFood, research.FoodDaily},
		{"transport_daily", models.CategoryTransport, research.TransportDaily},
		{"activities", models.CategoryActivity, research.Activities},
	}

	nameSlug := identity.Slugify(req.DestinationName)
	items := make([]models.CostItem, 0, len(categories))

	for _, cat := range categories {
		if cat.data == nil {
			continue
		}

		multiplier := categoryMultiplier(cat.name, req.DurationDays, req.NumTravelers)
		amountUSD := coerceAmount(cat.data.AmountMid) * multiplier

		amountLocal := coerceAmount(cat.data.AmountLocal) * multiplier
		currencyLocal := cat.data.CurrencyLocal
		if amountLocal == 0 {
			// No usable local figure: assume the local currency is USD and
			// reuse the scaled USD amount.
			amountLocal = amountUSD
			currencyLocal = currency.DefaultCurrency
		}

		items = append(items, models.CostItem{
			ID:            fmt.Sprintf("%s_%s_%s", destID, nameSlug, cat.category),
			Category:      cat.category,
			Amount:        amountLocal,
			Currency:      currencyLocal,
			AmountUSD:     amountUSD,
			DestinationID: destID,
			BookingStatus: "estimated",
			Source:        "research",
			Notes:         cat.data.Notes,
			Confidence:    cat.data.Confidence,
			Sources:       cat.data.Sources,
			ResearchedAt:  cat.data.ResearchedAt,
		})
	}

	return items
}

// repairItems runs currency normalization and destination resolution over the
// batch. Resolution degrades gracefully: an unreachable itinerary means items
// keep whatever destination id they were built with.
func (e *Engine) repairItems(ctx context.Context, sessionID string, items []models.CostItem) ([]models.CostItem, []string) {
	for i := range items {
		currency.ValidateCostItem(&items[i])
	}

	doc, err := e.store.GetItinerary(ctx, sessionID)
	if err != nil {
		e.logger.WithContext(ctx).WithError(err).Warn("Could not load itinerary for destination resolution")
		return items, []string{fmt.Sprintf("destination resolution skipped: %s", err)}
	}

	resolved, warnings, err := e.resolver.ValidateCostItems(items, doc.Locations)
	if err != nil {
		// Strict resolution is not used on this path; a resolver error here
		// means a programming bug, not bad data.
		e.logger.WithContext(ctx).WithError(err).Error("Unexpected resolver failure")
		return items, warnings
	}

	for _, item := range resolved {
		if item.Orphaned {
			metrics.OrphanedCostItems.Inc()
		}
	}

	return resolved, warnings
}

// categoryMultiplier scales a category's base figure by the trip parameters.
// Daily rates are per-person per-day, flights are per-person one-time, and
// accommodation/activities arrive as whole-stay totals.
func categoryMultiplier(name string, durationDays, numTravelers int) float64 {
	days := max(1, durationDays)
	travelers := max(1, numTravelers)

	switch name {
	case "food_daily", "transport_daily":
		return float64(days * travelers)
	case "flights":
		return float64(travelers)
	default:
		return 1
	}
}

// coerceDestinationID guarantees a usable destination id: pass through
// non-empty strings, stringify other non-nil values, derive a slug from the
// name, and only then fall back to the fixed placeholder.
func coerceDestinationID(raw any, destinationName string) string {
	switch v := raw.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	case nil:
	default:
		return fmt.Sprintf("%v", v)
	}

	if slug := identity.Slugify(destinationName); slug != "" {
		return slug
	}

	return UnknownDestinationID
}
