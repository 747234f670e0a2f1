package identity

import (
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/pkg/models"
)

const (
	tokyoID = "550e8400-e29b-41d4-a716-446655440000"
	parisID = "6fa459ea-ee8a-4ca4-894e-db77e160355e"
)

func testDestinations() []models.Destination {
	return []models.Destination{
		{ID: tokyoID, Name: "Tokyo, Japan", City: "Tokyo", Country: "Japan", LegacyID: "1"},
		{ID: parisID, Name: "Paris, France", City: "Paris", Country: "France", LegacyID: "2"},
	}
}

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestBuildLookup(t *testing.T) {
	lookup := BuildLookup(testDestinations())

	t.Run("all alias forms registered", func(t *testing.T) {
		assert.Equal(t, tokyoID, lookup[tokyoID])
		assert.Equal(t, tokyoID, lookup["tokyo, japan"])
		assert.Equal(t, tokyoID, lookup["tokyo_japan"])
		assert.Equal(t, tokyoID, lookup["1"])
		assert.Equal(t, parisID, lookup["paris, france"])
		assert.Equal(t, parisID, lookup["paris_france"])
	})

	t.Run("canonical id maps to itself", func(t *testing.T) {
		assert.Equal(t, tokyoID, lookup[tokyoID])
	})

	t.Run("invalid destination ids are skipped", func(t *testing.T) {
		lookup := BuildLookup([]models.Destination{{ID: "not-canonical", Name: "Nowhere"}})
		assert.Empty(t, lookup)
	})

	t.Run("first registration wins", func(t *testing.T) {
		dupes := []models.Destination{
			{ID: tokyoID, Name: "Kyoto"},
			{ID: parisID, Name: "Kyoto"},
		}
		lookup := BuildLookup(dupes)
		assert.Equal(t, tokyoID, lookup["kyoto"])
	})
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(noopLogger(), DefaultConfig())
	destinations := testDestinations()

	t.Run("valid id passes through", func(t *testing.T) {
		item := &models.CostItem{DestinationID: tokyoID}
		id, err := resolver.Resolve(item, destinations)
		require.NoError(t, err)
		assert.Equal(t, tokyoID, id)
	})

	t.Run("slug alias resolves", func(t *testing.T) {
		item := &models.CostItem{DestinationID: "tokyo_japan"}
		id, err := resolver.Resolve(item, destinations)
		require.NoError(t, err)
		assert.Equal(t, tokyoID, id)
	})

	t.Run("case-insensitive alias resolves", func(t *testing.T) {
		item := &models.CostItem{DestinationID: "TOKYO, JAPAN"}
		id, err := resolver.Resolve(item, destinations)
		require.NoError(t, err)
		assert.Equal(t, tokyoID, id)
	})

	t.Run("free-text fields resolve by destination name", func(t *testing.T) {
		item := &models.CostItem{
			DestinationID: "99",
			Notes:         "Three nights near Shinjuku in Tokyo, Japan",
		}
		id, err := resolver.Resolve(item, destinations)
		require.NoError(t, err)
		assert.Equal(t, tokyoID, id)
	})

	t.Run("fuzzy match above threshold resolves", func(t *testing.T) {
		item := &models.CostItem{DestinationID: "tokyo japan"}
		id, err := resolver.Resolve(item, destinations)
		require.NoError(t, err)
		assert.Equal(t, tokyoID, id)
	})

	t.Run("lenient mode returns empty for unknown", func(t *testing.T) {
		item := &models.CostItem{DestinationID: "unknown_city"}
		id, err := resolver.Resolve(item, destinations)
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("strict mode fails for unknown", func(t *testing.T) {
		strict := NewResolver(noopLogger(), Config{Strict: true, AutoResolve: true})
		item := &models.CostItem{DestinationID: "unknown_city"}
		_, err := strict.Resolve(item, destinations)
		require.Error(t, err)

		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "unknown_city", resErr.Identifier)
		assert.Contains(t, resErr.Known, "Tokyo, Japan")
		assert.Contains(t, resErr.Known, "Paris, France")
	})
}

func TestResolver_ValidateAndResolve(t *testing.T) {
	resolver := NewResolver(noopLogger(), DefaultConfig())
	destinations := testDestinations()

	t.Run("valid id is a no-op", func(t *testing.T) {
		item := &models.CostItem{DestinationID: parisID}
		warning, err := resolver.ValidateAndResolve(item, destinations)
		require.NoError(t, err)
		assert.Empty(t, warning)
		assert.False(t, item.AutoResolved)
	})

	t.Run("auto-resolution tags the item", func(t *testing.T) {
		item := &models.CostItem{ID: "c1", DestinationID: "tokyo_japan"}
		warning, err := resolver.ValidateAndResolve(item, destinations)
		require.NoError(t, err)
		assert.NotEmpty(t, warning)
		assert.Equal(t, tokyoID, item.DestinationID)
		assert.Equal(t, "tokyo_japan", item.LegacyDestinationID)
		assert.True(t, item.AutoResolved)
	})

	t.Run("soft failure keeps the original id and flags orphan", func(t *testing.T) {
		item := &models.CostItem{ID: "c2", DestinationID: "atlantis"}
		warning, err := resolver.ValidateAndResolve(item, destinations)
		require.NoError(t, err)
		assert.NotEmpty(t, warning)
		assert.Equal(t, "atlantis", item.DestinationID)
		assert.True(t, item.Orphaned)
	})

	t.Run("auto-resolve disabled leaves the item alone", func(t *testing.T) {
		passive := NewResolver(noopLogger(), Config{AutoResolve: false})
		item := &models.CostItem{ID: "c3", DestinationID: "tokyo_japan"}
		warning, err := passive.ValidateAndResolve(item, destinations)
		require.NoError(t, err)
		assert.Empty(t, warning)
		assert.Equal(t, "tokyo_japan", item.DestinationID)
	})
}

func TestResolver_ValidateCostItems(t *testing.T) {
	resolver := NewResolver(noopLogger(), DefaultConfig())
	destinations := testDestinations()

	items := []models.CostItem{
		{ID: "a", DestinationID: tokyoID},
		{ID: "b", DestinationID: "paris_france"},
		{ID: "c", DestinationID: "atlantis"},
	}

	resolved, warnings, err := resolver.ValidateCostItems(items, destinations)
	require.NoError(t, err)

	// Never loses an item, even unresolved ones.
	require.Len(t, resolved, 3)
	assert.Equal(t, parisID, resolved[1].DestinationID)
	assert.True(t, resolved[2].Orphaned)
	assert.Len(t, warnings, 2) // one auto-resolution, one orphan

	t.Run("strict mode propagates the failure", func(t *testing.T) {
		strict := NewResolver(noopLogger(), Config{Strict: true, AutoResolve: true})
		_, _, err := strict.ValidateCostItems([]models.CostItem{{ID: "x", DestinationID: "atlantis"}}, destinations)
		require.Error(t, err)
	})
}
