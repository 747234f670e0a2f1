// Package refdata holds the bundled reference itinerary and the TTL caches
// used to avoid repeat geocoding and search calls. All state is owned by
// constructed objects with explicit Clear methods; nothing is process-global.
package refdata

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"wayfarer/pkg/models"
)

// Cache TTLs. Geocoded coordinates are effectively immutable; search results
// go stale with provider data.
const (
	GeoCacheTTL     = 24 * time.Hour
	SearchCacheTTL  = 15 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Entry is one destination in the bundled reference itinerary. Entries seed
// region, activity type, description and highlights on newly added
// destinations, and short-circuit geocoding when they carry coordinates.
type Entry struct {
	Name         string             `json:"name"`
	City         string             `json:"city"`
	Country      string             `json:"country"`
	Region       string             `json:"region,omitempty"`
	ActivityType string             `json:"activity_type,omitempty"`
	Description  string             `json:"description,omitempty"`
	Highlights   []string           `json:"highlights,omitempty"`
	Coordinates  models.Coordinates `json:"coordinates,omitempty"`
}

// Store is the reference itinerary lookup: exact name first, then city.
type Store struct {
	byName map[string]*Entry
	byCity map[string]*Entry
}

// NewStore builds a reference store from the given entries. First entry wins
// on name/city collisions.
func NewStore(entries []Entry) *Store {
	s := &Store{
		byName: make(map[string]*Entry, len(entries)),
		byCity: make(map[string]*Entry, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		city := strings.ToLower(strings.TrimSpace(entry.City))
		if name != "" {
			if _, ok := s.byName[name]; !ok {
				s.byName[name] = entry
			}
		}
		if city != "" {
			if _, ok := s.byCity[city]; !ok {
				s.byCity[city] = entry
			}
		}
	}
	return s
}

// Lookup finds a reference entry by exact name, falling back to city.
func (s *Store) Lookup(name, city string) (*Entry, bool) {
	if entry, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return entry, true
	}
	if entry, ok := s.byCity[strings.ToLower(strings.TrimSpace(city))]; ok {
		return entry, true
	}
	return nil, false
}

// GeoCache caches resolved coordinates by query string.
type GeoCache struct {
	cache *gocache.Cache
}

// NewGeoCache creates an empty coordinate cache.
func NewGeoCache() *GeoCache {
	return &GeoCache{cache: gocache.New(GeoCacheTTL, cleanupInterval)}
}

// Get returns cached coordinates for a query, if present and non-zero.
func (g *GeoCache) Get(query string) (models.Coordinates, bool) {
	value, ok := g.cache.Get(strings.ToLower(strings.TrimSpace(query)))
	if !ok {
		return models.Coordinates{}, false
	}
	coords, ok := value.(models.Coordinates)
	if !ok || coords.IsZero() {
		return models.Coordinates{}, false
	}
	return coords, true
}

// Set stores coordinates under a query key. Zero coordinates are not cached;
// a fallback answer should not suppress a future provider lookup.
func (g *GeoCache) Set(query string, coords models.Coordinates) {
	if coords.IsZero() {
		return
	}
	g.cache.Set(strings.ToLower(strings.TrimSpace(query)), coords, gocache.DefaultExpiration)
}

// Clear empties the cache.
func (g *GeoCache) Clear() {
	g.cache.Flush()
}

// SearchCache caches provider search results by query string.
type SearchCache struct {
	cache *gocache.Cache
}

// NewSearchCache creates an empty search cache.
func NewSearchCache() *SearchCache {
	return &SearchCache{cache: gocache.New(SearchCacheTTL, cleanupInterval)}
}

// Get returns a cached search result.
func (s *SearchCache) Get(query string) (any, bool) {
	return s.cache.Get(strings.ToLower(strings.TrimSpace(query)))
}

// Set stores a search result.
func (s *SearchCache) Set(query string, result any) {
	s.cache.Set(strings.ToLower(strings.TrimSpace(query)), result, gocache.DefaultExpiration)
}

// Clear empties the cache.
func (s *SearchCache) Clear() {
	s.cache.Flush()
}
