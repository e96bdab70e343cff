package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytg/retry"
)

// mockTransport serves canned responses and records the requests it saw.
type mockTransport struct {
	status int
	body   string
	err    error

	requests []*http.Request
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.status,
		Status:     http.StatusText(m.status),
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Header:     make(http.Header),
	}, nil
}

// noRetry keeps tests fast: a single attempt, no backoff sleeps.
func noRetry() retry.Config {
	return retry.Config{MaxRetries: 0}
}

func newTestClient(mt *mockTransport) *Client {
	cfg := DefaultConfig()
	cfg.Retry = noRetry()
	c := New(cfg)
	c.base = &http.Client{Transport: mt}
	return c
}

func TestFetchSuccess(t *testing.T) {
	mt := &mockTransport{status: http.StatusOK, body: "<feed/>"}
	c := newTestClient(mt)

	body, err := c.Fetch(context.Background(), "http://gdata.youtube.com/feeds/api/videos")
	require.NoError(t, err)
	assert.Equal(t, "<feed/>", body)

	require.Len(t, mt.requests, 1)
	req := mt.requests[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "ytg/1.0", req.Header.Get("User-Agent"))
	assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
}

func TestFetchNotFound(t *testing.T) {
	mt := &mockTransport{status: http.StatusNotFound}
	c := newTestClient(mt)

	body, err := c.Fetch(context.Background(), "http://gdata.youtube.com/feeds/videos/missing")
	assert.Empty(t, body)
	assert.ErrorIs(t, err, ErrNotFound)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "http://gdata.youtube.com/feeds/videos/missing", fetchErr.URL)

	// Not found is permanent; there must be no retry.
	assert.Len(t, mt.requests, 1)
}

func TestFetchRateLimited(t *testing.T) {
	mt := &mockTransport{status: http.StatusTooManyRequests}
	c := newTestClient(mt)

	_, err := c.Fetch(context.Background(), "http://gdata.youtube.com/feeds/api/videos")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestFetchServerError(t *testing.T) {
	mt := &mockTransport{status: http.StatusInternalServerError}
	c := newTestClient(mt)

	_, err := c.Fetch(context.Background(), "http://gdata.youtube.com/feeds/api/videos")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	mt := &mockTransport{status: http.StatusBadGateway}
	cfg := DefaultConfig()
	cfg.Retry = retry.Config{MaxRetries: 2, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
	c := New(cfg)
	c.base = &http.Client{Transport: mt}

	_, err := c.Fetch(context.Background(), "http://gdata.youtube.com/feeds/api/videos")
	require.Error(t, err)

	var retryErr *retry.RetryableError
	assert.ErrorAs(t, err, &retryErr)
	assert.Len(t, mt.requests, 3)
}

func TestFetchRequestIDStableAcrossRetries(t *testing.T) {
	mt := &mockTransport{status: http.StatusServiceUnavailable}
	cfg := DefaultConfig()
	cfg.Retry = retry.Config{MaxRetries: 1, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
	c := New(cfg)
	c.base = &http.Client{Transport: mt}

	_, err := c.Fetch(context.Background(), "http://gdata.youtube.com/feeds/api/videos")
	require.Error(t, err)

	require.Len(t, mt.requests, 2)
	first := mt.requests[0].Header.Get("X-Request-Id")
	assert.NotEmpty(t, first)
	assert.Equal(t, first, mt.requests[1].Header.Get("X-Request-Id"))
}

func TestFetchCanceledContext(t *testing.T) {
	mt := &mockTransport{status: http.StatusOK, body: "<feed/>"}
	c := newTestClient(mt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, "http://gdata.youtube.com/feeds/api/videos")
	assert.ErrorIs(t, err, ErrNetworkTimeout)
}

func TestFetchErrorClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found is permanent", &FetchError{URL: "u", Err: ErrNotFound}, false},
		{"rate limited retries", &FetchError{URL: "u", Err: ErrRateLimited}, true},
		{"timeout retries", &FetchError{URL: "u", Err: ErrNetworkTimeout}, true},
		{"server error retries", &FetchError{URL: "u", Err: &StatusError{Code: 500, Status: "500"}}, true},
		{"client error is permanent", &FetchError{URL: "u", Err: &StatusError{Code: 403, Status: "403"}}, false},
		{"canceled is permanent", &FetchError{URL: "u", Err: context.Canceled}, false},
		{"plain network error retries", errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fetchErrorClassifier(tt.err))
		})
	}
}
