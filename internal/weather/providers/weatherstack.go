package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const defaultBaseURL = "http://api.weatherstack.com/current"

// WeatherstackProvider implements weather.Provider using weatherstack.com.
type WeatherstackProvider struct {
	name      string
	accessKey string
	baseURL   string // overridable for testing
	client    *http.Client
	circuit   *gobreaker.CircuitBreaker
}

func NewWeatherstackProvider(client *http.Client, accessKey string) *WeatherstackProvider {
	cbSettings := gobreaker.Settings{
		Name:        "weatherstack",
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
	}

	return &WeatherstackProvider{
		name:      "weatherstack",
		accessKey: accessKey,
		baseURL:   defaultBaseURL,
		client:    client,
		circuit:   gobreaker.NewCircuitBreaker(cbSettings),
	}
}

func (p *WeatherstackProvider) Name() string {
	return p.name
}

// Current fetches current conditions for query. Weatherstack reports request
// failures with a 200 status and an "error" object in the body, so the body
// is inspected before the payload is accepted.
func (p *WeatherstackProvider) Current(ctx context.Context, query string) (weather.Document, error) {
	if p.accessKey == "" {
		return nil, fmt.Errorf("weatherstack access key is not configured")
	}

	params := url.Values{}
	params.Set("access_key", p.accessKey)
	params.Set("query", query)

	req, err := http.NewRequest(http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weatherstack request: %w", err)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &weather.ProviderHTTPError{StatusCode: resp.StatusCode}
	}

	var payload weather.Document
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrBadProviderPayload, err)
	}

	if _, rejected := payload["error"]; rejected {
		if info, ok := payload.Lookup("error", "info"); ok {
			return nil, fmt.Errorf("%w: %v", weather.ErrProviderRejected, info)
		}
		return nil, weather.ErrProviderRejected
	}

	return payload, nil
}
