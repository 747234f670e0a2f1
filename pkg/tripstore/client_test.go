package tripstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/pkg/models"
)

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestClient_GetItinerary(t *testing.T) {
	t.Run("decodes the stored document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/itineraries/sess-1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(models.ItineraryDocument{
				Locations: []models.Destination{{ID: "550e8400-e29b-41d4-a716-446655440000", Name: "Tokyo"}},
			})
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, noopLogger())
		doc, err := client.GetItinerary(context.Background(), "sess-1")
		require.NoError(t, err)
		require.Len(t, doc.Locations, 1)
		assert.Equal(t, "Tokyo", doc.Locations[0].Name)
	})

	t.Run("404 yields an empty document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, noopLogger())
		doc, err := client.GetItinerary(context.Background(), "sess-1")
		require.NoError(t, err)
		assert.Empty(t, doc.Locations)
	})

	t.Run("5xx surfaces the body verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("store exploded"))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, noopLogger())
		_, err := client.GetItinerary(context.Background(), "sess-1")
		require.Error(t, err)

		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, http.StatusInternalServerError, storeErr.StatusCode)
		assert.Contains(t, storeErr.Body, "store exploded")
	})
}

func TestClient_PutItinerary(t *testing.T) {
	var received models.ItineraryDocument
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, noopLogger())
	doc := &models.ItineraryDocument{Locations: []models.Destination{{ID: "1", Name: "Kyoto"}}}
	require.NoError(t, client.PutItinerary(context.Background(), "sess-1", doc))
	assert.Equal(t, "Kyoto", received.Locations[0].Name)
}

func TestClient_BulkSaveCosts(t *testing.T) {
	t.Run("posts the batch once", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, "/costs/bulk", r.URL.Path)
			var req BulkSaveRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "scenario-1", req.ScenarioID)
			assert.Len(t, req.CostItems, 2)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, noopLogger())
		err := client.BulkSaveCosts(context.Background(), &BulkSaveRequest{
			SessionID:  "sess-1",
			ScenarioID: "scenario-1",
			CostItems:  []models.CostItem{{ID: "a"}, {ID: "b"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("non-2xx is not retried", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, noopLogger())
		err := client.BulkSaveCosts(context.Background(), &BulkSaveRequest{SessionID: "s", ScenarioID: "sc"})
		require.Error(t, err)
		assert.Equal(t, 1, calls)

		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Contains(t, storeErr.Body, "upstream unavailable")
	})
}
