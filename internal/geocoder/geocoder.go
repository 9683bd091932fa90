package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hello-globe/backend/internal/logger"
)

// ErrNotFound is returned when the provider has no result for the query, the
// query is empty, or the provider cannot be reached. Callers treat all of
// these uniformly as "location not found".
var ErrNotFound = errors.New("location not found")

// DefaultBaseURL is the OpenCage forward-geocoding endpoint.
const DefaultBaseURL = "https://api.opencagedata.com"

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Resolver resolves a structured location into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, city, state, country string) (Coordinates, error)
}

// Config carries the provider settings. The API key is passed in explicitly;
// there is no process-global state.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client calls the external geocoding provider over HTTP.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a geocoder client. A zero Timeout defaults to 5s.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve builds a single query from the non-empty location parts and asks
// the provider for the first matching result. All empty parts short-circuit
// to ErrNotFound without a network call. Transport failures, non-2xx
// responses, and empty result sets are all reported as ErrNotFound — one
// outbound call, no retries.
func (c *Client) Resolve(ctx context.Context, city, state, country string) (Coordinates, error) {
	parts := make([]string, 0, 3)
	for _, p := range []string{city, state, country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Coordinates{}, ErrNotFound
	}
	query := strings.Join(parts, ", ")

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/geocode/v1/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, ErrNotFound
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("geocode request failed", "query", query, "error", err)
		return Coordinates{}, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("geocode provider returned non-2xx", "query", query, "status", resp.StatusCode)
		return Coordinates{}, ErrNotFound
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Warn("geocode response decode failed", "query", query, "error", err)
		return Coordinates{}, ErrNotFound
	}
	if len(body.Results) == 0 {
		return Coordinates{}, ErrNotFound
	}

	g := body.Results[0].Geometry
	return Coordinates{Lat: g.Lat, Lon: g.Lng}, nil
}
