package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/pkg/models"
	"wayfarer/pkg/refdata"
)

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

// stubProvider answers a fixed result or error and counts calls.
type stubProvider struct {
	name   string
	result *Result
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Geocode(_ context.Context, _ string) (*Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestChain_Resolve(t *testing.T) {
	t.Run("short-circuits on first success", func(t *testing.T) {
		first := &stubProvider{name: "geocache", result: &Result{Lat: 35.6762, Lng: 139.6503}}
		second := &stubProvider{name: "places", result: &Result{Lat: 1, Lng: 1}}
		chain := NewChain([]Provider{first, second}, nil, noopLogger())

		result := chain.Resolve(context.Background(), "Tokyo, Japan")
		assert.Equal(t, "geocache", result.Source)
		assert.InDelta(t, 35.6762, result.Lat, 0.001)
		assert.Zero(t, second.calls)
	})

	t.Run("advances past misses and failures", func(t *testing.T) {
		miss := &stubProvider{name: "geocache", err: ErrNoResult}
		broken := &stubProvider{name: "places", err: errors.New("quota exceeded")}
		last := &stubProvider{name: "nominatim", result: &Result{Lat: 48.8566, Lng: 2.3522}}
		chain := NewChain([]Provider{miss, broken, last}, nil, noopLogger())

		result := chain.Resolve(context.Background(), "Paris, France")
		assert.Equal(t, "nominatim", result.Source)
		assert.Equal(t, 1, miss.calls)
		assert.Equal(t, 1, broken.calls)
	})

	t.Run("exhaustion yields tagged zero fallback", func(t *testing.T) {
		miss := &stubProvider{name: "geocache", err: ErrNoResult}
		chain := NewChain([]Provider{miss}, nil, noopLogger())

		result := chain.Resolve(context.Background(), "Kyoto", "Kyoto, Japan")
		assert.Equal(t, SourceFallback, result.Source)
		assert.Zero(t, result.Lat)
		assert.Zero(t, result.Lng)
		assert.Equal(t, 2, miss.calls, "every query is tried before falling back")
	})

	t.Run("provider answers are written back to the geocache", func(t *testing.T) {
		cache := refdata.NewGeoCache()
		provider := &stubProvider{name: "places", result: &Result{Lat: 41.9028, Lng: 12.4964}}
		chain := NewChain([]Provider{provider}, cache, noopLogger())

		chain.Resolve(context.Background(), "Rome, Italy")
		coords, ok := cache.Get("Rome, Italy")
		require.True(t, ok)
		assert.InDelta(t, 41.9028, coords.Lat, 0.001)
		assert.Equal(t, "places", coords.Source)
	})

	t.Run("empty queries are skipped", func(t *testing.T) {
		provider := &stubProvider{name: "places", result: &Result{Lat: 1, Lng: 1}}
		chain := NewChain([]Provider{provider}, nil, noopLogger())

		chain.Resolve(context.Background(), "", "Tokyo")
		assert.Equal(t, 1, provider.calls)
	})
}

func TestCacheProvider(t *testing.T) {
	cache := refdata.NewGeoCache()
	cache.Set("Tokyo, Japan", models.Coordinates{Lat: 35.6762, Lng: 139.6503, Source: "places"})
	provider := NewCacheProvider(cache)

	t.Run("hit", func(t *testing.T) {
		result, err := provider.Geocode(context.Background(), "tokyo, japan")
		require.NoError(t, err)
		assert.InDelta(t, 35.6762, result.Lat, 0.001)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := provider.Geocode(context.Background(), "Kyoto")
		assert.ErrorIs(t, err, ErrNoResult)
	})
}

func TestPlacesProvider_Geocode(t *testing.T) {
	t.Run("uses the first candidate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/findplacefromtext/json", r.URL.Path)
			assert.Equal(t, "Tokyo, Japan", r.URL.Query().Get("input"))
			_, _ = w.Write([]byte(`{"status":"OK","candidates":[
				{"formatted_address":"Tokyo, Japan","geometry":{"location":{"lat":35.6762,"lng":139.6503}}},
				{"formatted_address":"Tokyo, TX, USA","geometry":{"location":{"lat":32.0,"lng":-95.0}}}
			]}`))
		}))
		defer server.Close()

		provider := NewPlacesProvider(PlacesConfig{BaseURL: server.URL, APIKey: "test"}, noopLogger())
		result, err := provider.Geocode(context.Background(), "Tokyo, Japan")
		require.NoError(t, err)
		assert.InDelta(t, 35.6762, result.Lat, 0.001)
		assert.Equal(t, "Tokyo, Japan", result.FormattedAddress)
	})

	t.Run("no candidates means no result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","candidates":[]}`))
		}))
		defer server.Close()

		provider := NewPlacesProvider(PlacesConfig{BaseURL: server.URL, APIKey: "test"}, noopLogger())
		_, err := provider.Geocode(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, ErrNoResult)
	})
}

func TestNominatimProvider_Geocode(t *testing.T) {
	t.Run("parses the first ranked element", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522","display_name":"Paris, France"}]`))
		}))
		defer server.Close()

		provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL}, noopLogger())
		result, err := provider.Geocode(context.Background(), "Paris")
		require.NoError(t, err)
		assert.InDelta(t, 48.8566, result.Lat, 0.001)
		assert.InDelta(t, 2.3522, result.Lng, 0.001)
		assert.Equal(t, "Paris, France", result.FormattedAddress)
	})

	t.Run("empty list means no result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL}, noopLogger())
		_, err := provider.Geocode(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, ErrNoResult)
	})
}
