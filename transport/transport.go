// Package transport provides the fetch capability the feed client
// consumes: given a URL, return the full response body as text, or fail
// with a transport error. The HTTP implementation handles retries;
// nothing above it retries.
package transport

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for fetch operations.
var (
	ErrNotFound       = errors.New("transport: resource not found")
	ErrRateLimited    = errors.New("transport: rate limited")
	ErrNetworkTimeout = errors.New("transport: network timeout")
)

// Fetcher retrieves the document at a URL as text. Implementations must
// be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError wraps errors during a fetch with the URL that failed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-success HTTP status that has no dedicated
// sentinel.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}
