package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/handiism/zvuk-downloader/internal/catalog/dto"
	"github.com/handiism/zvuk-downloader/internal/model"
)

// GetTrack fetches metadata for a single track.
func (c *Client) GetTrack(ctx context.Context, id string) (*model.Track, error) {
	tracks, err := c.GetTracks(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	track, ok := tracks[id]
	if !ok {
		return nil, fmt.Errorf("track %s not found", id)
	}
	return track, nil
}

// GetTracks fetches metadata for several tracks in one batched call.
// The result maps track ID to track; IDs the API does not know are
// simply absent from the map.
func (c *Client) GetTracks(ctx context.Context, ids []string) (map[string]*model.Track, error) {
	if len(ids) == 0 {
		return map[string]*model.Track{}, nil
	}
	url := fmt.Sprintf("%s/api/tiny/tracks?ids=%s", c.BaseURL, strings.Join(ids, ","))

	var resp dto.TracksResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch tracks: %w", err)
	}

	tracks := make(map[string]*model.Track, len(resp.Result.Tracks))
	for id, jt := range resp.Result.Tracks {
		tracks[id] = jt.ToTrack(id)
	}
	return tracks, nil
}

// GetRelease fetches metadata for a release, including the ordered
// track ID list.
func (c *Client) GetRelease(ctx context.Context, id string) (*model.Release, error) {
	url := fmt.Sprintf("%s/api/tiny/releases?ids=%s", c.BaseURL, id)

	var resp dto.ReleasesResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch release: %w", err)
	}
	jr, ok := resp.Result.Releases[id]
	if !ok {
		return nil, fmt.Errorf("release %s not found", id)
	}
	return jr.ToRelease(id), nil
}

// GetArtistReleaseIDs fetches the IDs of every release in an artist's
// discography.
func (c *Client) GetArtistReleaseIDs(ctx context.Context, artistID string) ([]string, error) {
	url := fmt.Sprintf("%s/api/tiny/artists/releases?artist_id=%s", c.BaseURL, artistID)

	var resp dto.ArtistReleasesResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch artist releases: %w", err)
	}

	ids := make([]string, 0, len(resp.Result))
	for _, ref := range resp.Result {
		ids = append(ids, fmt.Sprintf("%d", ref.ID))
	}
	return ids, nil
}
