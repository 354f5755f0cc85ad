package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/auth"
	"github.com/handiism/zvuk-downloader/internal/catalog/dto"
	"github.com/handiism/zvuk-downloader/internal/http"
	"github.com/handiism/zvuk-downloader/internal/model"
)

const defaultBaseURL = "https://zvuk.com"

// Client answers catalog questions: what is this track, which tracks
// make up this release, where does this stream live.
//
// Metadata lookups go through the response cache; stream URLs and the
// profile check never do, because their answers expire.
type Client struct {
	client *http.Client
	logger *zap.Logger

	// BaseURL is the root of the catalog API. NewClient sets it to the
	// public host.
	BaseURL string
}

// NewClient creates a catalog client on top of the HTTP layer.
func NewClient(client *http.Client, logger *zap.Logger) *Client {
	return &Client{
		client:  client,
		logger:  logger,
		BaseURL: defaultBaseURL,
	}
}

// VerifySubscription checks that the session's account has an active
// subscription. Without one the API refuses to hand out stream URLs,
// so there is no point starting any download.
//
// The check is never cached: a cached "yes" would hide an expired
// subscription, and a cached "no" would hide a renewed one.
func (c *Client) VerifySubscription(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/v2/tiny/profile", c.BaseURL)

	var resp dto.ProfileResponse
	if err := c.client.FetchJSONUncached(ctx, url, &resp); err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	if !resp.Result.IsPrime {
		return auth.ErrNoSubscription
	}
	return nil
}

// GetStreamURL asks for a short-lived CDN URL serving the track at the
// requested quality.
func (c *Client) GetStreamURL(ctx context.Context, trackID string, quality model.Quality) (string, error) {
	url := fmt.Sprintf("%s/api/tiny/track/stream?id=%s&quality=%s", c.BaseURL, trackID, quality)

	var resp dto.StreamResponse
	if err := c.client.FetchJSONUncached(ctx, url, &resp); err != nil {
		return "", fmt.Errorf("fetch stream url for track %s: %w", trackID, err)
	}
	if resp.Result.Stream == "" {
		return "", fmt.Errorf("no stream url for track %s at quality %s", trackID, quality)
	}
	return resp.Result.Stream, nil
}
