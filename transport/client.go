package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"ytg/retry"
)

const defaultTimeout = 30 * time.Second

// Config holds HTTP fetcher configuration.
type Config struct {
	// Timeout for individual HTTP requests.
	Timeout time.Duration

	// UserAgent for HTTP requests.
	UserAgent string

	// Retry configuration.
	Retry retry.Config

	// RequestsPerSecond caps the outgoing request rate. 0 disables the
	// cap.
	RequestsPerSecond float64

	// Logger receives per-request debug logs. Nop by default.
	Logger zerolog.Logger
}

// DefaultConfig returns sensible defaults for the HTTP fetcher.
func DefaultConfig() *Config {
	return &Config{
		Timeout:   defaultTimeout,
		UserAgent: "ytg/1.0",
		Retry:     retry.DefaultConfig(),
		Logger:    zerolog.Nop(),
	}
}

// Client implements Fetcher over net/http with retry and rate-limit
// aware status handling.
type Client struct {
	base    *http.Client
	cfg     *Config
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates an HTTP fetcher with the given configuration.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Client{
		base:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: limiterFor(cfg.RequestsPerSecond),
		log:     cfg.Logger,
	}
}

// NewWithHTTPClient creates a fetcher with a custom HTTP client, keeping
// the default retry and logging behavior.
func NewWithHTTPClient(hc *http.Client) *Client {
	cfg := DefaultConfig()
	return &Client{base: hc, cfg: cfg, log: cfg.Logger}
}

// Fetch retrieves the document at url, retrying transient failures.
// 404 maps to ErrNotFound, 429 to ErrRateLimited; other non-200
// statuses surface as a StatusError. All failures come wrapped in a
// FetchError carrying the URL.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	reqID := uuid.NewString()
	c.log.Debug().Str("url", url).Str("request_id", reqID).Msg("fetching feed")

	var body string
	err := retry.Do(ctx, c.cfg.Retry, fetchErrorClassifier, func(ctx context.Context) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return &FetchError{URL: url, Err: err}
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &FetchError{URL: url, Err: err}
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)
		req.Header.Set("X-Request-Id", reqID)

		resp, err := c.base.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return &FetchError{URL: url, Err: ErrNetworkTimeout}
			}
			return &FetchError{URL: url, Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return &FetchError{URL: url, Err: ErrNotFound}
		case resp.StatusCode == http.StatusTooManyRequests:
			return &FetchError{URL: url, Err: ErrRateLimited}
		case resp.StatusCode != http.StatusOK:
			return &FetchError{URL: url,
				Err: &StatusError{Code: resp.StatusCode, Status: resp.Status}}
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return &FetchError{URL: url, Err: err}
		}
		body = string(b)
		return nil
	})

	if err != nil {
		c.log.Debug().Str("url", url).Str("request_id", reqID).Err(err).Msg("fetch failed")
		return "", err
	}
	return body, nil
}

// fetchErrorClassifier determines if a fetch error is retryable.
// Missing resources and client-side mistakes are permanent; rate
// limits, timeouts and server errors are retried.
func fetchErrorClassifier(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		// 4xx other than 429 won't get better on retry.
		return statusErr.Code >= 500
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

var _ Fetcher = (*Client)(nil)
