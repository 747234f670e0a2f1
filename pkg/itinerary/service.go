// Package itinerary applies mutations to the ordered destination list and
// keeps a local cached copy in sync with the remote trip store. Every
// operation is one atomic list transformation plus one remote write; the
// local copy is only updated when the remote write succeeds.
package itinerary

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"wayfarer/pkg/events"
	"wayfarer/pkg/geocode"
	"wayfarer/pkg/metrics"
	"wayfarer/pkg/models"
	"wayfarer/pkg/refdata"
	"wayfarer/pkg/tracing"
)

// DefaultSessionID scopes remote persistence when no session identifier can
// be resolved. It never identifies the itinerary itself.
const DefaultSessionID = "default_session"

// Store is the remote persistence boundary for itinerary documents.
type Store interface {
	GetItinerary(ctx context.Context, sessionID string) (*models.ItineraryDocument, error)
	PutItinerary(ctx context.Context, sessionID string, doc *models.ItineraryDocument) error
}

// Service applies add/remove/update mutations to per-session itineraries.
type Service struct {
	store    Store
	refStore *refdata.Store
	chain    *geocode.Chain
	emitter  *events.Emitter
	logger   ectologger.Logger

	mu    sync.RWMutex
	local map[string]*models.ItineraryDocument
}

// NewService creates a new mutation service.
func NewService(store Store, refStore *refdata.Store, chain *geocode.Chain, emitter *events.Emitter, logger ectologger.Logger) *Service {
	return &Service{
		store:    store,
		refStore: refStore,
		chain:    chain,
		emitter:  emitter,
		logger:   logger,
		local:    make(map[string]*models.ItineraryDocument),
	}
}

// ResolveSessionID picks the session identifier that scopes remote
// persistence: an explicit web session id, then the session's own id, then
// the fixed default.
func ResolveSessionID(webSessionID string, session *models.Session) string {
	if strings.TrimSpace(webSessionID) != "" {
		return webSessionID
	}
	if session != nil {
		if strings.TrimSpace(session.WebSessionID) != "" {
			return session.WebSessionID
		}
		if strings.TrimSpace(session.ID) != "" {
			return session.ID
		}
	}
	return DefaultSessionID
}

// AddRequest carries the fields for a new destination.
type AddRequest struct {
	Name         string `json:"name" validate:"required"`
	City         string `json:"city" validate:"required"`
	Country      string `json:"country" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,min=1"`
	ActivityType string `json:"activity_type,omitempty"`
	Description  string `json:"description,omitempty"`
	Notes        string `json:"notes,omitempty"`
	InsertAfter  string `json:"insert_after,omitempty"`
}

// UpdateFields is a sparse field update; nil fields are left untouched.
type UpdateFields struct {
	City         *string  `json:"city,omitempty"`
	Country      *string  `json:"country,omitempty"`
	Region       *string  `json:"region,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	ActivityType *string  `json:"activity_type,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Add builds a new destination, resolves its coordinates through the
// fallback chain, inserts it into the ordered list and persists. Geocoding
// can never fail the add: chain exhaustion yields tagged zero coordinates.
func (s *Service) Add(ctx context.Context, sessionID string, req *AddRequest) (*models.Destination, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Service.Add")
	defer span.End()

	doc, err := s.load(ctx, sessionID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("add", "error").Inc()
		return nil, err
	}

	dest := models.Destination{
		Name:         req.Name,
		City:         req.City,
		Country:      req.Country,
		DurationDays: req.DurationDays,
		ActivityType: req.ActivityType,
		Description:  req.Description,
		Notes:        req.Notes,
	}

	var refCoords models.Coordinates
	if entry, ok := s.refStore.Lookup(req.Name, req.City); ok {
		dest.Region = entry.Region
		if dest.ActivityType == "" {
			dest.ActivityType = entry.ActivityType
		}
		if dest.Description == "" {
			dest.Description = entry.Description
		}
		dest.Highlights = entry.Highlights
		refCoords = entry.Coordinates
	}

	dest.Coordinates = s.resolveCoordinates(ctx, refCoords, req)
	dest.ID = nextID(doc.Locations)

	updated := insertDestination(doc.Locations, dest, req.InsertAfter)
	newDoc := &models.ItineraryDocument{Locations: updated, Trip: doc.Trip, Costs: doc.Costs}

	if err := s.persist(ctx, sessionID, "add", newDoc); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"destination":  dest.Name,
		"coord_source": dest.Coordinates.Source,
		"session_id":   sessionID,
	}).Info("Added destination")

	return &dest, nil
}

// Remove filters out every destination whose name or city equals the given
// string. All matches are removed, not just the first; duplicate stops
// sharing a name go together.
func (s *Service) Remove(ctx context.Context, sessionID, destinationName string) (int, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Service.Remove")
	defer span.End()

	doc, err := s.load(ctx, sessionID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("remove", "error").Inc()
		return 0, err
	}

	kept := make([]models.Destination, 0, len(doc.Locations))
	removed := 0
	for _, dest := range doc.Locations {
		if matchesNameOrCity(dest, destinationName) {
			removed++
			continue
		}
		kept = append(kept, dest)
	}

	if removed == 0 {
		metrics.MutationsTotal.WithLabelValues("remove", "error").Inc()
		return 0, httperror.NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("no destination matching %q", destinationName))
	}

	newDoc := &models.ItineraryDocument{Locations: kept, Trip: doc.Trip, Costs: doc.Costs}
	if err := s.persist(ctx, sessionID, "remove", newDoc); err != nil {
		return 0, err
	}

	return removed, nil
}

// UpdateDuration sets duration_days on the first destination matching by
// name or city. Durations below one day are rejected.
func (s *Service) UpdateDuration(ctx context.Context, sessionID, destinationName string, durationDays int) (*models.Destination, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Service.UpdateDuration")
	defer span.End()

	if durationDays < 1 {
		metrics.MutationsTotal.WithLabelValues("update_duration", "error").Inc()
		return nil, httperror.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("duration_days must be at least 1, got %d", durationDays))
	}

	return s.updateFirstMatch(ctx, sessionID, "update_duration", destinationName, func(dest *models.Destination) {
		dest.DurationDays = durationDays
	})
}

// Update merges a sparse set of field updates into the first destination
// matching by name or city.
func (s *Service) Update(ctx context.Context, sessionID, destinationName string, fields *UpdateFields) (*models.Destination, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Service.Update")
	defer span.End()

	return s.updateFirstMatch(ctx, sessionID, "update", destinationName, func(dest *models.Destination) {
		if fields.City != nil {
			dest.City = *fields.City
		}
		if fields.Country != nil {
			dest.Country = *fields.Country
		}
		if fields.Region != nil {
			dest.Region = *fields.Region
		}
		if fields.DurationDays != nil {
			dest.DurationDays = *fields.DurationDays
		}
		if fields.ActivityType != nil {
			dest.ActivityType = *fields.ActivityType
		}
		if fields.Description != nil {
			dest.Description = *fields.Description
		}
		if fields.Notes != nil {
			dest.Notes = *fields.Notes
		}
		if fields.Highlights != nil {
			dest.Highlights = fields.Highlights
		}
	})
}

// Get returns the current itinerary document, preferring the local cached
// copy over a remote read.
func (s *Service) Get(ctx context.Context, sessionID string) (*models.ItineraryDocument, error) {
	return s.load(ctx, sessionID)
}

// ClearLocal drops the local cached copy for a session.
func (s *Service) ClearLocal(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.local, sessionID)
}

func (s *Service) updateFirstMatch(ctx context.Context, sessionID, operation, destinationName string, apply func(*models.Destination)) (*models.Destination, error) {
	doc, err := s.load(ctx, sessionID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues(operation, "error").Inc()
		return nil, err
	}

	idx := findIndex(doc.Locations, func(d models.Destination) bool {
		return matchesNameOrCity(d, destinationName)
	})
	if idx < 0 {
		metrics.MutationsTotal.WithLabelValues(operation, "error").Inc()
		return nil, httperror.NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("no destination matching %q", destinationName))
	}

	updated := make([]models.Destination, len(doc.Locations))
	copy(updated, doc.Locations)
	apply(&updated[idx])

	newDoc := &models.ItineraryDocument{Locations: updated, Trip: doc.Trip, Costs: doc.Costs}
	if err := s.persist(ctx, sessionID, operation, newDoc); err != nil {
		return nil, err
	}

	return &updated[idx], nil
}

// resolveCoordinates walks the fallback order: reference data coordinates,
// then the provider chain keyed by progressively looser queries.
func (s *Service) resolveCoordinates(ctx context.Context, refCoords models.Coordinates, req *AddRequest) models.Coordinates {
	if !refCoords.IsZero() {
		metrics.GeocodeResultsTotal.WithLabelValues("reference").Inc()
		if refCoords.Source == "" {
			refCoords.Source = "reference"
		}
		return refCoords
	}

	result := s.chain.Resolve(ctx,
		fmt.Sprintf("%s, %s", req.City, req.Country),
		fmt.Sprintf("%s, %s", req.Name, req.Country),
		req.Name,
		req.City,
	)
	return result.Coordinates()
}

// load returns the itinerary for a session, preferring the local cached copy.
func (s *Service) load(ctx context.Context, sessionID string) (*models.ItineraryDocument, error) {
	s.mu.RLock()
	cached, ok := s.local[sessionID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	doc, err := s.store.GetItinerary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.local[sessionID] = doc
	s.mu.Unlock()
	return doc, nil
}

// persist writes the document remotely and, only on success, replaces the
// local cached copy. Last-writer-wins: there is no versioning on the remote
// document.
func (s *Service) persist(ctx context.Context, sessionID, operation string, doc *models.ItineraryDocument) error {
	if err := s.store.PutItinerary(ctx, sessionID, doc); err != nil {
		metrics.MutationsTotal.WithLabelValues(operation, "error").Inc()
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"operation":  operation,
			"session_id": sessionID,
		}).Error("Failed to persist itinerary")
		return err
	}

	s.mu.Lock()
	s.local[sessionID] = doc
	s.mu.Unlock()

	metrics.MutationsTotal.WithLabelValues(operation, "success").Inc()
	s.emitter.EmitItineraryUpdated(ctx, sessionID, operation, doc)
	return nil
}

// nextID assigns the next destination id: one more than the highest numeric
// id present, or the current unix timestamp when none are numeric.
func nextID(destinations []models.Destination) string {
	maxID := 0
	found := false
	for _, dest := range destinations {
		if n, err := strconv.Atoi(dest.ID); err == nil {
			found = true
			if n > maxID {
				maxID = n
			}
		}
	}
	if !found {
		return strconv.FormatInt(time.Now().Unix(), 10)
	}
	return strconv.Itoa(maxID + 1)
}

// insertDestination places dest at the end, or immediately after the first
// destination whose name or city equals insertAfter.
func insertDestination(destinations []models.Destination, dest models.Destination, insertAfter string) []models.Destination {
	updated := make([]models.Destination, len(destinations), len(destinations)+1)
	copy(updated, destinations)

	if insertAfter != "" {
		idx := findIndex(updated, func(d models.Destination) bool {
			return matchesNameOrCity(d, insertAfter)
		})
		if idx >= 0 {
			updated = append(updated[:idx+1], append([]models.Destination{dest}, updated[idx+1:]...)...)
			return updated
		}
	}

	return append(updated, dest)
}

// findIndex returns the index of the first destination satisfying the
// predicate, or -1. Add, remove and the updates all share this one matching
// rule.
func findIndex(destinations []models.Destination, predicate func(models.Destination) bool) int {
	for i, dest := range destinations {
		if predicate(dest) {
			return i
		}
	}
	return -1
}

func matchesNameOrCity(dest models.Destination, target string) bool {
	t := strings.ToLower(strings.TrimSpace(target))
	return strings.ToLower(strings.TrimSpace(dest.Name)) == t ||
		strings.ToLower(strings.TrimSpace(dest.City)) == t
}
