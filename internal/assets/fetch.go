package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// Resource is a fetched asset.
type Resource struct {
	ContentType string
	Body        []byte
}

// Fetcher retrieves an asset from the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Resource, error)
}

// FetchError carries the HTTP status of a failed fetch.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
}

// RetryConfig configures retry behavior for transient fetch errors.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterFraction float64 // 0.0 to 1.0
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		JitterFraction: 0.25,
	}
}

// HTTPFetcher fetches assets over HTTP with automatic retry on transient
// errors.
type HTTPFetcher struct {
	client *http.Client
	config *RetryConfig
}

// NewHTTPFetcher creates a fetcher. Nil arguments use defaults.
func NewHTTPFetcher(client *http.Client, cfg *RetryConfig) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg == nil {
		cfg = DefaultRetryConfig()
	}
	return &HTTPFetcher{client: client, config: cfg}
}

// isTransient returns true for errors that are worth retrying.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Status >= 500 || fe.Status == http.StatusTooManyRequests
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true // network errors are transient
}

// backoff computes the delay before attempt n (0-based) with jitter.
func (f *HTTPFetcher) backoff(attempt int) time.Duration {
	d := float64(f.config.InitialBackoff) * math.Pow(2, float64(attempt))
	if max := float64(f.config.MaxBackoff); d > max {
		d = max
	}
	jitter := 1 + f.config.JitterFraction*(2*rand.Float64()-1)
	return time.Duration(d * jitter)
}

// Fetch retrieves the URL, retrying transient failures.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Resource, error) {
	var lastErr error
	for attempt := 0; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.backoff(attempt - 1)):
			}
		}

		res, err := f.fetchOnce(ctx, url)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !isTransient(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("fetch failed after %d retries: %w", f.config.MaxRetries, lastErr)
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Resource{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
