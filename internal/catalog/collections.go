package catalog

import (
	"context"
	"fmt"

	"github.com/handiism/zvuk-downloader/internal/catalog/dto"
	"github.com/handiism/zvuk-downloader/internal/model"
)

// GetPlaylist fetches a playlist and its track ID list.
func (c *Client) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	url := fmt.Sprintf("%s/api/tiny/playlists?ids=%s&include=track,release", c.BaseURL, id)

	var resp dto.PlaylistsResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch playlist: %w", err)
	}
	jp, ok := resp.Result.Playlists[id]
	if !ok {
		return nil, fmt.Errorf("playlist %s not found", id)
	}
	return jp.ToPlaylist(id), nil
}

// GetSelection fetches an editorial selection and its track ID list.
func (c *Client) GetSelection(ctx context.Context, id string) (*model.Selection, error) {
	url := fmt.Sprintf("%s/api/tiny/selection?id=%s&include=track", c.BaseURL, id)

	var resp dto.SelectionResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch selection: %w", err)
	}
	return resp.Result.Selection.ToSelection(id), nil
}

// GetPodcast fetches a podcast and its episode ID list.
func (c *Client) GetPodcast(ctx context.Context, id string) (*model.Podcast, error) {
	url := fmt.Sprintf("%s/api/tiny/podcasts?ids=%s", c.BaseURL, id)

	var resp dto.PodcastsResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch podcast: %w", err)
	}
	jp, ok := resp.Result.Podcasts[id]
	if !ok {
		return nil, fmt.Errorf("podcast %s not found", id)
	}

	podcast := jp.ToPodcast(id)
	if podcast.Title == "" {
		podcast.Title = "podcast_" + id
	}
	return podcast, nil
}

// GetEpisode fetches a podcast episode, including its direct stream
// URL.
func (c *Client) GetEpisode(ctx context.Context, id string) (*model.Episode, error) {
	url := fmt.Sprintf("%s/api/tiny/podcast_episodes?id=%s", c.BaseURL, id)

	var resp dto.EpisodesResponse
	if err := c.client.FetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch episode: %w", err)
	}
	je, ok := resp.Result.Episodes[id]
	if !ok {
		return nil, fmt.Errorf("episode %s not found", id)
	}
	return je.ToEpisode(id), nil
}
