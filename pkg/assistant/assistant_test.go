package assistant

import (
	"context"
	"encoding/json"
	"fmt"
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

// completionServer fakes the chat completions endpoint, capturing the request
// and answering with a fixed message.
func completionServer(t *testing.T, reply string, captured *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": reply},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestAssistant_Reply(t *testing.T) {
	var captured map[string]any
	server := completionServer(t, "Kyoto is a great addition in autumn.", &captured)
	defer server.Close()

	a := New(Config{APIKey: "test", BaseURL: server.URL}, noopLogger())

	sess := &models.Session{ID: "sess-1"}
	for i := 0; i < 30; i++ {
		sess.Transcript = append(sess.Transcript, models.ChatMessage{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}
	doc := &models.ItineraryDocument{
		Locations: []models.Destination{{ID: "1", Name: "Tokyo", DurationDays: 3}},
	}

	reply, err := a.Reply(context.Background(), sess, doc, "should I add Kyoto?")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto is a great addition in autumn.", reply)

	messages := captured["messages"].([]any)
	// 2 system + 20 truncated history + 1 new user turn
	assert.Len(t, messages, 23)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	second := messages[1].(map[string]any)
	assert.Contains(t, second["content"], "Tokyo", "itinerary context is embedded")
}

func TestAssistant_ResearchCosts(t *testing.T) {
	t.Run("parses a fenced payload", func(t *testing.T) {
		payload := "```json\n" + `{
			"accommodation": {"amount_low": 300, "amount_mid": 455, "amount_high": 700, "currency_local": "JPY", "amount_local": 68000, "confidence": "medium"},
			"food_daily": {"amount_mid": "30"}
		}` + "\n```"
		server := completionServer(t, payload, nil)
		defer server.Close()

		a := New(Config{APIKey: "test", BaseURL: server.URL}, noopLogger())
		research, err := a.ResearchCosts(context.Background(), "Tokyo", "Japan", 7, 2)
		require.NoError(t, err)
		require.NotNil(t, research.Accommodation)
		assert.Equal(t, "JPY", research.Accommodation.CurrencyLocal)
		assert.Equal(t, "30", research.FoodDaily.AmountMid, "amounts stay untyped for downstream coercion")
		assert.Nil(t, research.Flights)
	})

	t.Run("rejects non-JSON replies", func(t *testing.T) {
		server := completionServer(t, "I could not find reliable prices.", nil)
		defer server.Close()

		a := New(Config{APIKey: "test", BaseURL: server.URL}, noopLogger())
		_, err := a.ResearchCosts(context.Background(), "Tokyo", "Japan", 7, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unparseable")
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
