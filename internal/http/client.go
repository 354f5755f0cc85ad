package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/auth"
	"github.com/handiism/zvuk-downloader/internal/cache"
)

// FetchError reports a request that kept failing until the retry
// budget ran out.
type FetchError struct {
	// URL is the request that failed.
	URL string

	// Attempts is how many times the request was tried.
	Attempts int

	// Err is the error from the last attempt.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client wraps HTTP operations with Zvuk-specific configuration.
//
// Client provides:
//   - Session headers and cookies on every request
//   - Fixed-delay retries for transient failures
//   - A durable response cache for catalog metadata
//   - Streaming downloads for audio content
//
// Example usage:
//
//	client := NewClient(session, store, logger, 3, 2*time.Second)
//
//	// Fetch catalog metadata (cached across runs)
//	var resp dto.TracksResponse
//	err := client.FetchJSON(ctx, trackURL, &resp)
//
//	// Stream audio to disk
//	n, err := client.Download(ctx, streamURL, "/music/01 - Song.flac")
type Client struct {
	api      *http.Client
	stream   *http.Client
	session  *auth.Session
	store    *cache.Store
	logger   *zap.Logger
	attempts int
	delay    time.Duration
}

// NewClient creates a client bound to a session.
//
// store may be nil to disable response caching. attempts below 1 are
// treated as 1; delay is the fixed pause between attempts.
func NewClient(session *auth.Session, store *cache.Store, logger *zap.Logger, attempts int, delay time.Duration) *Client {
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		api: &http.Client{
			Timeout: 60 * time.Second,
		},
		// No fixed timeout: a lossless album track can stream for
		// longer than any sane limit. Cancellation comes from ctx.
		stream:   &http.Client{},
		session:  session,
		store:    store,
		logger:   logger,
		attempts: attempts,
		delay:    delay,
	}
}

// Fetch returns the response body for url, consulting the response
// cache first.
//
// On a cache miss the request is performed with retries and the
// response is stored before returning. Cache read and write failures
// are logged and do not fail the fetch.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.store != nil {
		entry, err := c.store.Get(ctx, url)
		if err != nil {
			c.logger.Warn("cache read failed", zap.String("url", url), zap.Error(err))
		} else if entry != nil {
			c.logger.Debug("cache hit", zap.String("url", url))
			return entry.Body, nil
		}
	}

	entry, err := c.retry(ctx, url, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	})
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Put(ctx, url, entry); err != nil {
			c.logger.Warn("cache write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return entry.Body, nil
}

// FetchUncached performs a GET with retries, bypassing the cache.
//
// Use this for responses that go stale immediately: signed stream
// URLs, profile state, cover images on rotating CDN hosts.
func (c *Client) FetchUncached(ctx context.Context, url string) ([]byte, error) {
	entry, err := c.retry(ctx, url, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	})
	if err != nil {
		return nil, err
	}
	return entry.Body, nil
}

// FetchJSON fetches url through the cache and decodes the body into v.
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// FetchJSONUncached is FetchJSON without the cache.
func (c *Client) FetchJSONUncached(ctx context.Context, url string, v any) error {
	body, err := c.FetchUncached(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// Post sends a JSON payload and returns the response body.
//
// Requests are retried like fetches but responses are never cached:
// the one POST endpoint serves per-request GraphQL queries whose
// responses cannot be keyed by URL alone.
func (c *Client) Post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	entry, err := c.retry(ctx, url, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	return entry.Body, nil
}

// Download streams the content at url to destPath and returns the
// number of bytes written.
//
// The file is created (or truncated if it exists) and the content is
// streamed directly to disk, avoiding loading the entire file into
// memory. A failed download may leave a partial file behind; callers
// decide whether to remove or retry it.
func (c *Client) Download(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	c.session.Apply(req)

	resp, err := c.stream.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return io.Copy(file, resp.Body)
}

// retry performs one request up to the configured number of attempts,
// pausing the fixed delay between failures.
func (c *Client) retry(ctx context.Context, url string, build func(context.Context) (*http.Request, error)) (*cache.Entry, error) {
	for attempt := 1; ; attempt++ {
		entry, err := c.do(ctx, build)
		if err == nil {
			return entry, nil
		}

		c.logger.Warn("request failed",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.attempts),
			zap.Error(err))

		if attempt == c.attempts {
			return nil, &FetchError{URL: url, Attempts: attempt, Err: err}
		}

		select {
		case <-ctx.Done():
			return nil, &FetchError{URL: url, Attempts: attempt, Err: ctx.Err()}
		case <-time.After(c.delay):
		}
	}
}

func (c *Client) do(ctx context.Context, build func(context.Context) (*http.Request, error)) (*cache.Entry, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, err
	}
	c.session.Apply(req)

	resp, err := c.api.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Any 2xx counts as success.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &cache.Entry{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}
