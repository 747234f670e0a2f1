// Package tripstore is the client for the remote authoritative document
// store that persists itineraries and cost batches. The store is consumed
// strictly as a get/set-by-key API; failures are reported verbatim to the
// caller and never retried here.
package tripstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"

	"wayfarer/pkg/metrics"
	"wayfarer/pkg/models"
	"wayfarer/pkg/tracing"
)

// DefaultTimeout bounds every call to the persistence boundary.
const DefaultTimeout = 30 * time.Second

// maxResponseSize caps response bodies (10MB).
const maxResponseSize = 10 * 1024 * 1024

// StoreError carries a non-2xx response from the boundary back to the caller
// without interpretation.
type StoreError struct {
	StatusCode int
	Body       string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("trip store returned %d: %s", e.StatusCode, e.Body)
}

// Config holds trip store client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the remote trip store.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  ectologger.Logger
}

// NewClient creates a new trip store client.
func NewClient(cfg Config, logger ectologger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// BulkSaveRequest is the cost batch submitted to the boundary in one write.
type BulkSaveRequest struct {
	SessionID       string            `json:"session_id"`
	ScenarioID      string            `json:"scenario_id"`
	DestinationID   string            `json:"destination_id"`
	DestinationName string            `json:"destination_name"`
	CostItems       []models.CostItem `json:"cost_items"`
}

// GetItinerary fetches the itinerary document for a session. A 404 is not an
// error: it yields an empty document, the state of a brand-new itinerary.
func (c *Client) GetItinerary(ctx context.Context, sessionID string) (*models.ItineraryDocument, error) {
	ctx, span := tracing.StartSpan(ctx, "tripstore.Client.GetItinerary")
	defer span.End()

	body, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/itineraries/%s", sessionID), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return &models.ItineraryDocument{Locations: []models.Destination{}}, nil
	}
	if status < 200 || status > 299 {
		return nil, &StoreError{StatusCode: status, Body: string(body)}
	}

	var doc models.ItineraryDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary document: %w", err)
	}

	return &doc, nil
}

// PutItinerary writes the full itinerary document for a session.
// Last-writer-wins: there is no versioning on the remote document.
func (c *Client) PutItinerary(ctx context.Context, sessionID string, doc *models.ItineraryDocument) error {
	ctx, span := tracing.StartSpan(ctx, "tripstore.Client.PutItinerary")
	defer span.End()

	body, status, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/itineraries/%s", sessionID), doc)
	if err != nil {
		return err
	}

	if status < 200 || status > 299 {
		return &StoreError{StatusCode: status, Body: string(body)}
	}
	return nil
}

// BulkSaveCosts submits a reconciled cost batch as a single write. The
// boundary's failure message is passed back verbatim; individual items are
// never retried.
func (c *Client) BulkSaveCosts(ctx context.Context, req *BulkSaveRequest) error {
	ctx, span := tracing.StartSpan(ctx, "tripstore.Client.BulkSaveCosts")
	defer span.End()

	body, status, err := c.do(ctx, http.MethodPost, "/costs/bulk", req)
	if err != nil {
		return err
	}

	if status < 200 || status > 299 {
		return &StoreError{StatusCode: status, Body: string(body)}
	}
	return nil
}

// Ping checks that the trip store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	body, status, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &StoreError{StatusCode: status, Body: string(body)}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithContext(ctx).WithError(err).Errorf("Trip store request failed: %s %s", method, path)
		return nil, 0, fmt.Errorf("trip store request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	duration := time.Since(start)
	metrics.TripStoreRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	c.logger.WithContext(ctx).Debugf("Trip store %s %s -> %d (%s)",
		method, path, resp.StatusCode, duration)

	return body, resp.StatusCode, nil
}
