// Package geocode resolves free-text place queries to coordinates through an
// ordered provider fallback chain. Every result is tagged with the tier that
// produced it, and exhausting the chain yields a {0,0} fallback rather than
// an error: a destination add never fails on geocoding alone.
package geocode

import (
	"context"
	"errors"
	"time"

	"github.com/Gobusters/ectologger"

	"wayfarer/pkg/metrics"
	"wayfarer/pkg/models"
	"wayfarer/pkg/refdata"
	"wayfarer/pkg/tracing"
)

// ProviderTimeout bounds each individual provider call. A provider that
// exceeds it is treated as failed and the chain advances.
const ProviderTimeout = 10 * time.Second

// SourceFallback tags the {0,0} result returned when every provider failed.
const SourceFallback = "fallback"

// ErrNoResult is returned by a provider that answered but found nothing.
var ErrNoResult = errors.New("no geocoding result")

// Result is a resolved coordinate pair tagged with the provider that
// answered.
type Result struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	Source           string  `json:"source"`
}

// Coordinates converts the result to the model representation.
func (r *Result) Coordinates() models.Coordinates {
	return models.Coordinates{Lat: r.Lat, Lng: r.Lng, Source: r.Source}
}

// Provider resolves a single free-text query to coordinates.
type Provider interface {
	Name() string
	Geocode(ctx context.Context, query string) (*Result, error)
}

// Chain tries providers in order and short-circuits on the first success.
type Chain struct {
	providers []Provider
	geocache  *refdata.GeoCache
	logger    ectologger.Logger
}

// NewChain creates a chain over the given providers, tried in order. The
// geocache is optional; when present, provider answers are written back so
// repeat queries never leave the process.
func NewChain(providers []Provider, geocache *refdata.GeoCache, logger ectologger.Logger) *Chain {
	return &Chain{
		providers: providers,
		geocache:  geocache,
		logger:    logger,
	}
}

// Resolve tries each query against each provider in chain order and returns
// the first success. Provider failures and timeouts advance the chain; only
// full exhaustion yields the tagged {0,0} fallback.
func (c *Chain) Resolve(ctx context.Context, queries ...string) *Result {
	ctx, span := tracing.StartSpan(ctx, "geocode.Chain.Resolve")
	defer span.End()

	for _, provider := range c.providers {
		for _, query := range queries {
			if query == "" {
				continue
			}

			result, err := c.tryProvider(ctx, provider, query)
			if err != nil {
				if !errors.Is(err, ErrNoResult) {
					c.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
						"provider": provider.Name(),
						"query":    query,
					}).Warn("Geocoding provider failed, advancing chain")
				}
				continue
			}

			result.Source = provider.Name()
			metrics.GeocodeResultsTotal.WithLabelValues(result.Source).Inc()
			if c.geocache != nil {
				c.geocache.Set(query, result.Coordinates())
			}
			return result
		}
	}

	metrics.GeocodeResultsTotal.WithLabelValues(SourceFallback).Inc()
	c.logger.WithContext(ctx).WithFields(map[string]any{"queries": queries}).
		Warn("Geocoding chain exhausted, using zero fallback")
	return &Result{Source: SourceFallback}
}

func (c *Chain) tryProvider(ctx context.Context, provider Provider, query string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, ProviderTimeout)
	defer cancel()
	return provider.Geocode(ctx, query)
}
