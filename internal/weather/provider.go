package weather

import (
	"context"
	"errors"
	"fmt"
)

// Failure classes of the provider round-trip. The concrete provider raises
// them, handlers translate them into HTTP responses, and nothing in between
// inspects them.
var (
	// ErrProviderRejected means the provider answered but flagged the request
	// as failed in its response body.
	ErrProviderRejected = errors.New("provider rejected the request")

	// ErrProviderUnreachable means the outbound call could not complete:
	// DNS failure, refused connection, timeout, or an open circuit breaker.
	ErrProviderUnreachable = errors.New("provider unreachable")

	// ErrBadProviderPayload means the call completed but the body could not
	// be interpreted.
	ErrBadProviderPayload = errors.New("unexpected provider payload")
)

// ProviderHTTPError reports a completed provider call that returned a
// non-success HTTP status. The upstream status is surfaced to the caller
// as-is.
type ProviderHTTPError struct {
	StatusCode int
}

func (e *ProviderHTTPError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// Provider abstracts the external weather data source (e.g. Weatherstack).
type Provider interface {
	Name() string

	// Current fetches current conditions for a location query. The query is
	// passed to the provider verbatim.
	Current(ctx context.Context, query string) (Document, error)
}

// Store is the contract the in-memory record store must satisfy.
type Store interface {
	Put(rec Record)
	Get(id string) (Record, error)
	Len() int
}
