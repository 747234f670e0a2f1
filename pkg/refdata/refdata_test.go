package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/pkg/models"
)

func TestStore_Lookup(t *testing.T) {
	store := NewStore([]Entry{
		{Name: "Tokyo", City: "Tokyo", Country: "Japan", Region: "Kanto"},
		{Name: "Montmartre", City: "Paris", Country: "France"},
	})

	t.Run("exact name match", func(t *testing.T) {
		entry, ok := store.Lookup("tokyo", "")
		require.True(t, ok)
		assert.Equal(t, "Kanto", entry.Region)
	})

	t.Run("name beats city", func(t *testing.T) {
		entry, ok := store.Lookup("Montmartre", "Tokyo")
		require.True(t, ok)
		assert.Equal(t, "France", entry.Country)
	})

	t.Run("falls back to city", func(t *testing.T) {
		entry, ok := store.Lookup("Le Marais", "Paris")
		require.True(t, ok)
		assert.Equal(t, "Montmartre", entry.Name)
	})

	t.Run("miss", func(t *testing.T) {
		_, ok := store.Lookup("Kyoto", "Kyoto")
		assert.False(t, ok)
	})
}

func TestGeoCache(t *testing.T) {
	cache := NewGeoCache()
	coords := models.Coordinates{Lat: 35.6762, Lng: 139.6503, Source: "places"}

	cache.Set("Tokyo, Japan", coords)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		got, ok := cache.Get("tokyo, japan")
		require.True(t, ok)
		assert.Equal(t, coords, got)
	})

	t.Run("zero coordinates are not cached", func(t *testing.T) {
		cache.Set("Atlantis", models.Coordinates{Source: "fallback"})
		_, ok := cache.Get("Atlantis")
		assert.False(t, ok)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		cache.Clear()
		_, ok := cache.Get("Tokyo, Japan")
		assert.False(t, ok)
	})
}
