package dto

import "github.com/handiism/zvuk-downloader/internal/model"

// PodcastsResponse is the envelope of /api/tiny/podcasts. Podcasts are
// keyed by their decimal ID.
type PodcastsResponse struct {
	Result struct {
		Podcasts map[string]JSONPodcast `json:"podcasts"`
	} `json:"result"`
}

// JSONPodcast represents a podcast and its episode references.
type JSONPodcast struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Episodes []JSONEpisodeRef `json:"episodes"`
}

// JSONEpisodeRef is one episode reference inside a podcast.
type JSONEpisodeRef struct {
	ID int64 `json:"id"`
}

// ToPodcast converts a JSONPodcast to a model.Podcast.
func (jp *JSONPodcast) ToPodcast(id string) *model.Podcast {
	podcast := &model.Podcast{
		ID:    id,
		Title: jp.Title,
	}
	for _, ref := range jp.Episodes {
		podcast.EpisodeIDs = append(podcast.EpisodeIDs, formatID(ref.ID))
	}
	return podcast
}

// EpisodesResponse is the envelope of /api/tiny/podcast_episodes.
// Episodes are keyed by their decimal ID.
type EpisodesResponse struct {
	Result struct {
		Episodes map[string]JSONEpisode `json:"episodes"`
	} `json:"result"`
}

// JSONEpisode represents a single podcast episode with its direct
// stream URL.
type JSONEpisode struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	StreamURL string `json:"stream_url"`
}

// ToEpisode converts a JSONEpisode to a model.Episode.
func (je *JSONEpisode) ToEpisode(id string) *model.Episode {
	return &model.Episode{
		ID:        id,
		Title:     je.Title,
		Author:    je.Author,
		StreamURL: je.StreamURL,
	}
}
