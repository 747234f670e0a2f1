package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Gobusters/ectologger"
)

// PlacesProvider is a "find place from text" style geocoder: one query in,
// at most one candidate out.
type PlacesProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  ectologger.Logger
}

// PlacesConfig holds Places provider configuration.
type PlacesConfig struct {
	BaseURL string
	APIKey  string
}

// NewPlacesProvider creates a Places-style provider.
func NewPlacesProvider(cfg PlacesConfig, logger ectologger.Logger) *PlacesProvider {
	return &PlacesProvider{
		client:  &http.Client{Timeout: ProviderTimeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Name implements Provider.
func (p *PlacesProvider) Name() string {
	return "places"
}

type placesResponse struct {
	Candidates []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"candidates"`
	Status string `json:"status"`
}

// Geocode implements Provider via the findplacefromtext endpoint.
func (p *PlacesProvider) Geocode(ctx context.Context, query string) (*Result, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "formatted_address,geometry")
	params.Set("key", p.apiKey)

	endpoint := fmt.Sprintf("%s/findplacefromtext/json?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if len(body.Candidates) == 0 {
		return nil, ErrNoResult
	}

	candidate := body.Candidates[0]
	return &Result{
		Lat:              candidate.Geometry.Location.Lat,
		Lng:              candidate.Geometry.Location.Lng,
		FormattedAddress: candidate.FormattedAddress,
	}, nil
}
