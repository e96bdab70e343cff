package ytg

import (
	"ytg/gdata"
	"ytg/retry"
	"ytg/transport"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytg.ErrMalformedFeed) {
//		fmt.Println("feed document was structurally broken")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var fetchErr *ytg.FetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("fetching %s failed: %v\n", fetchErr.URL, fetchErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// FetchError wraps errors during a feed fetch with the URL that failed.
	FetchError = transport.FetchError
	// StatusError reports a non-success HTTP status with no dedicated sentinel.
	StatusError = transport.StatusError
	// RetryableError wraps errors that occurred after retries were exhausted.
	RetryableError = retry.RetryableError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrMalformedFeed indicates a structurally malformed feed document.
	ErrMalformedFeed = gdata.ErrMalformedFeed

	// Transport errors
	// ErrNotFound indicates the feed does not exist.
	ErrNotFound = transport.ErrNotFound
	// ErrRateLimited indicates the fetch was rate limited upstream.
	ErrRateLimited = transport.ErrRateLimited
	// ErrNetworkTimeout indicates a network timeout occurred.
	ErrNetworkTimeout = transport.ErrNetworkTimeout
)
