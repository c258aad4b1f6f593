package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// doRequest executes req through the circuit breaker. A request either
// completes once or fails once; there are no retries.
//
// Responses with a 5xx status count as breaker failures, as do transport
// errors. Other statuses are returned to the caller untouched.
func doRequest(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	req *http.Request,
) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, &weather.ProviderHTTPError{StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		// Upstream 5xx statuses keep their identity so callers can surface
		// the exact code. Everything else (transport failure, open breaker)
		// means the provider could not be reached.
		var httpErr *weather.ProviderHTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		return nil, fmt.Errorf("%w: %v", weather.ErrProviderUnreachable, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}
