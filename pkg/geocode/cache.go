package geocode

import (
	"context"

	"wayfarer/pkg/refdata"
)

// CacheProvider serves previously resolved coordinates from the geocache. It
// sits first in the chain so repeat queries never hit the network.
type CacheProvider struct {
	cache *refdata.GeoCache
}

// NewCacheProvider creates a provider over the given geocache.
func NewCacheProvider(cache *refdata.GeoCache) *CacheProvider {
	return &CacheProvider{cache: cache}
}

// Name implements Provider.
func (p *CacheProvider) Name() string {
	return "geocache"
}

// Geocode implements Provider.
func (p *CacheProvider) Geocode(_ context.Context, query string) (*Result, error) {
	coords, ok := p.cache.Get(query)
	if !ok {
		return nil, ErrNoResult
	}
	return &Result{Lat: coords.Lat, Lng: coords.Lng}, nil
}
