package dto

import "github.com/handiism/zvuk-downloader/internal/model"

// PlaylistsResponse is the envelope of /api/tiny/playlists. Playlists
// are keyed by their decimal ID.
type PlaylistsResponse struct {
	Result struct {
		Playlists map[string]JSONPlaylist `json:"playlists"`
	} `json:"result"`
}

// JSONPlaylist represents a user playlist.
type JSONPlaylist struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	TrackIDs []int64 `json:"track_ids"`
}

// ToPlaylist converts a JSONPlaylist to a model.Playlist.
func (jp *JSONPlaylist) ToPlaylist(id string) *model.Playlist {
	return &model.Playlist{
		ID:       id,
		Title:    jp.Title,
		TrackIDs: formatIDs(jp.TrackIDs),
	}
}

// SelectionResponse is the envelope of /api/tiny/selection. Unlike the
// plural endpoints the result holds a single selection object.
type SelectionResponse struct {
	Result struct {
		Selection JSONSelection `json:"selection"`
	} `json:"result"`
}

// JSONSelection represents an editorial selection.
type JSONSelection struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	TrackIDs []int64 `json:"track_ids"`
}

// ToSelection converts a JSONSelection to a model.Selection.
func (js *JSONSelection) ToSelection(id string) *model.Selection {
	return &model.Selection{
		ID:       id,
		Title:    js.Title,
		TrackIDs: formatIDs(js.TrackIDs),
	}
}
