package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Gobusters/ectologger"
)

// NominatimProvider is a free-text search geocoder returning a ranked list;
// the first element is used. Sits after Places in the chain as the keyless
// fallback.
type NominatimProvider struct {
	client    *http.Client
	baseURL   string
	userAgent string
	logger    ectologger.Logger
}

// NominatimConfig holds Nominatim provider configuration.
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
}

// NewNominatimProvider creates a Nominatim-style provider.
func NewNominatimProvider(cfg NominatimConfig, logger ectologger.Logger) *NominatimProvider {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "wayfarer/1.0"
	}
	return &NominatimProvider{
		client:    &http.Client{Timeout: ProviderTimeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: userAgent,
		logger:    logger,
	}
}

// Name implements Provider.
func (p *NominatimProvider) Name() string {
	return "nominatim"
}

// Nominatim serializes coordinates as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode implements Provider via the free-text search endpoint.
func (p *NominatimProvider) Geocode(ctx context.Context, query string) (*Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/search?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(places) == 0 {
		return nil, ErrNoResult
	}

	first := places[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable latitude %q: %w", first.Lat, err)
	}
	lng, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable longitude %q: %w", first.Lon, err)
	}

	return &Result{
		Lat:              lat,
		Lng:              lng,
		FormattedAddress: first.DisplayName,
	}, nil
}
