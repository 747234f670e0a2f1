// Package assistant is the conversational layer: chat replies grounded in
// the current itinerary, and structured cost research production.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"wayfarer/pkg/metrics"
	"wayfarer/pkg/models"
	"wayfarer/pkg/tracing"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// transcriptLimit bounds how much conversation history is sent per turn.
const transcriptLimit = 20

const systemPrompt = "You are Wayfarer's trip-planning assistant. Use the " +
	"itinerary context to answer questions, reference actual plans, and offer " +
	"proactive suggestions when helpful. Keep answers concise, organized, and " +
	"grounded in the provided data unless the user explicitly asks for " +
	"speculation."

const researchPrompt = "You are a travel cost researcher. Respond with a " +
	"single JSON object and nothing else. The object has exactly these keys: " +
	"accommodation, flights, food_daily, transport_daily, activities. Each " +
	"value is an object with amount_low, amount_mid, amount_high (numbers, " +
	"USD), currency_local (ISO code), amount_local (number, local currency), " +
	"confidence (low|medium|high), notes (string) and sources (array of " +
	"URLs). accommodation and activities are whole-stay totals; flights is " +
	"per person; food_daily and transport_daily are per person per day."

// Config holds assistant configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // override for tests and proxies
}

// Assistant produces chat replies and research payloads.
type Assistant struct {
	client openai.Client
	model  string
	logger ectologger.Logger
}

// New creates a new assistant.
func New(cfg Config, logger ectologger.Logger) *Assistant {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Assistant{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}
}

// itineraryContext is the snapshot serialized into the system prompt.
type itineraryContext struct {
	Trip        models.TripDates     `json:"trip"`
	Locations   []models.Destination `json:"locations"`
	Costs       []models.CostItem    `json:"costs,omitempty"`
	GeneratedAt string               `json:"generated_at"`
}

// Reply answers one user turn using the session transcript and the current
// itinerary as context. The transcript is truncated to the most recent turns.
func (a *Assistant) Reply(ctx context.Context, sess *models.Session, doc *models.ItineraryDocument, userMessage string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "assistant.Assistant.Reply")
	defer span.End()

	snapshot := itineraryContext{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if doc != nil {
		snapshot.Trip = doc.Trip
		snapshot.Locations = doc.Locations
		snapshot.Costs = doc.Costs
	}
	ctxJSON, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode itinerary context: %w", err)
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.SystemMessage("Latest itinerary context:\n" + string(ctxJSON)),
	}
	for _, msg := range truncateTranscript(sess.Transcript, transcriptLimit) {
		switch msg.Role {
		case "user":
			messages = append(messages, openai.UserMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(userMessage))

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: messages,
	})
	if err != nil {
		metrics.AssistantTurnsTotal.WithLabelValues("error").Inc()
		a.logger.WithContext(ctx).WithError(err).Error("Assistant completion failed")
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	reply := completionText(completion)
	if reply == "" {
		metrics.AssistantTurnsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("assistant returned an empty message")
	}

	metrics.AssistantTurnsTotal.WithLabelValues("success").Inc()
	return reply, nil
}

// ResearchCosts asks the model for a five-category cost estimate for one
// destination. The reply is parsed leniently; amounts stay untyped and are
// coerced downstream by the reconciliation engine.
func (a *Assistant) ResearchCosts(ctx context.Context, destinationName, country string, durationDays, numTravelers int) (*models.ResearchPayload, error) {
	ctx, span := tracing.StartSpan(ctx, "assistant.Assistant.ResearchCosts")
	defer span.End()

	query := fmt.Sprintf("Estimate travel costs for %s, %s for %d travelers staying %d days.",
		destinationName, country, max(1, numTravelers), max(1, durationDays))

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(researchPrompt),
			openai.UserMessage(query),
		},
	})
	if err != nil {
		metrics.AssistantTurnsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("cost research request failed: %w", err)
	}

	raw := stripCodeFences(completionText(completion))
	var payload models.ResearchPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		metrics.AssistantTurnsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("unparseable research payload: %w", err)
	}

	metrics.AssistantTurnsTotal.WithLabelValues("success").Inc()
	return &payload, nil
}

func completionText(completion *openai.ChatCompletion) string {
	if completion == nil || len(completion.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content)
}

func truncateTranscript(messages []models.ChatMessage, limit int) []models.ChatMessage {
	if len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}

// stripCodeFences unwraps ```json ... ``` blocks the model sometimes emits
// despite being told not to.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
