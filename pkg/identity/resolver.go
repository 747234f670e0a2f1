package identity

import (
	"fmt"
	"strings"

	"github.com/Gobusters/ectologger"
	"github.com/samber/lo"

	"wayfarer/pkg/matching"
	"wayfarer/pkg/models"
)

// ResolutionError is returned in strict mode when an identifier cannot be
// resolved to any destination in the itinerary.
type ResolutionError struct {
	Identifier string
	Known      []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve destination identifier %q; known destinations: %s",
		e.Identifier, strings.Join(e.Known, ", "))
}

// Config controls resolver behavior.
type Config struct {
	// AutoResolve rewrites invalid destination ids on cost items when a
	// resolution is found, tagging the item with its original id.
	AutoResolve bool
	// Strict makes an unresolvable identifier an error instead of a warning.
	Strict bool
	// FuzzyThreshold is the minimum similarity ratio a fuzzy candidate must
	// exceed. Zero means matching.ResolverThreshold.
	FuzzyThreshold float64
}

// DefaultConfig returns the lenient auto-resolving configuration used by the
// cost pipeline.
func DefaultConfig() Config {
	return Config{
		AutoResolve:    true,
		Strict:         false,
		FuzzyThreshold: matching.ResolverThreshold,
	}
}

// Resolver resolves arbitrary destination identifiers against an itinerary
// snapshot. The alias lookup is rebuilt from the destination list on every
// call; itineraries are small, so recomputation beats staleness.
type Resolver struct {
	logger ectologger.Logger
	cfg    Config
}

// NewResolver creates a new Resolver.
func NewResolver(logger ectologger.Logger, cfg Config) *Resolver {
	if cfg.FuzzyThreshold == 0 {
		cfg.FuzzyThreshold = matching.ResolverThreshold
	}
	return &Resolver{logger: logger, cfg: cfg}
}

// Resolve maps a cost item's destination identifier to a canonical id.
// Resolution order:
//
//  1. an already-valid id passes through unchanged
//  2. exact, case-insensitive alias lookup
//  3. literal substring scan of the item's free-text fields for any
//     destination name (destination list order breaks ties)
//  4. fuzzy match above the configured threshold
//
// When nothing matches: strict mode returns a *ResolutionError; lenient mode
// returns "" and the caller marks the item orphaned.
func (r *Resolver) Resolve(item *models.CostItem, destinations []models.Destination) (string, error) {
	raw := strings.TrimSpace(item.DestinationID)

	if IsValidDestinationID(raw) {
		return raw, nil
	}

	lookup := BuildLookup(destinations)
	if id, ok := lookup[strings.ToLower(raw)]; ok {
		return id, nil
	}

	// Free-text scan: the research generator often names the destination in
	// prose instead of carrying a usable id.
	freeText := strings.ToLower(item.Description + " " + item.Notes)
	for _, dest := range destinations {
		name := strings.ToLower(dest.Name)
		if name != "" && strings.Contains(freeText, name) {
			return dest.ID, nil
		}
	}

	if raw != "" {
		names := lo.Map(destinations, func(d models.Destination, _ int) string { return d.Name })
		if match := matching.FindBestMatch(raw, names, r.cfg.FuzzyThreshold); match != nil {
			return destinations[match.Index].ID, nil
		}
	}

	if r.cfg.Strict {
		return "", &ResolutionError{
			Identifier: raw,
			Known:      lo.Map(destinations, func(d models.Destination, _ int) string { return d.Name }),
		}
	}

	return "", nil
}

// ValidateAndResolve repairs the item's destination id in place. A no-op when
// the id is already valid. With AutoResolve enabled a successful resolution
// tags the item; a failed one either raises (strict) or leaves the original
// id and returns a warning string.
func (r *Resolver) ValidateAndResolve(item *models.CostItem, destinations []models.Destination) (string, error) {
	if IsValidDestinationID(item.DestinationID) {
		return "", nil
	}

	if !r.cfg.AutoResolve {
		return "", nil
	}

	resolved, err := r.Resolve(item, destinations)
	if err != nil {
		return "", err
	}

	if resolved != "" && resolved != item.DestinationID {
		original := item.DestinationID
		item.LegacyDestinationID = original
		item.DestinationID = resolved
		item.AutoResolved = true
		return fmt.Sprintf("auto-resolved destination %q to %s for cost item %s", original, resolved, item.ID), nil
	}

	if resolved == "" {
		item.Orphaned = true
		warning := fmt.Sprintf("cost item %s has unresolvable destination %q; kept as orphaned", item.ID, item.DestinationID)
		r.logger.WithFields(map[string]any{
			"cost_item_id":   item.ID,
			"destination_id": item.DestinationID,
		}).Warn("Unresolvable destination on cost item")
		return warning, nil
	}

	return "", nil
}

// ValidateCostItems applies ValidateAndResolve to every item, collecting one
// warning per auto-resolution or soft failure. No item is ever dropped, even
// when unresolved.
func (r *Resolver) ValidateCostItems(items []models.CostItem, destinations []models.Destination) ([]models.CostItem, []string, error) {
	warnings := make([]string, 0)

	for i := range items {
		warning, err := r.ValidateAndResolve(&items[i], destinations)
		if err != nil {
			return nil, warnings, err
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return items, warnings, nil
}
