package model

// Release represents an album-level catalog entry.
//
// A release does not embed its tracks: TrackIDs are resolved through a
// separate batch metadata request so that playlist and selection flows
// can share the same track lookup.
type Release struct {
	// ID is the catalog identifier, as it appears in links.
	ID string

	// Title is the release title.
	Title string

	// Credits is the artist line as shown in the catalog.
	Credits string

	// Year is the four-digit release year, empty when unknown.
	Year string

	// TrackIDs lists the release's tracks in playback order.
	TrackIDs []string

	// CoverURL is the release cover image URL. Empty when no image
	// is available.
	CoverURL string
}

// HasCover returns true if cover art is available for download.
func (r *Release) HasCover() bool {
	return r.CoverURL != ""
}

// Playlist represents a user playlist: a titled, ordered set of track ids.
type Playlist struct {
	ID       string
	Title    string
	TrackIDs []string
}

// Selection represents an editorially curated set of track ids.
type Selection struct {
	ID       string
	Title    string
	TrackIDs []string
}

// Podcast represents a podcast with its episode ids in publication order.
type Podcast struct {
	ID         string
	Title      string
	EpisodeIDs []string
}

// Episode represents a single podcast episode.
//
// Unlike tracks, episodes carry their stream URL directly in the
// metadata payload; no separate stream lookup is needed.
type Episode struct {
	ID        string
	Title     string
	Author    string
	StreamURL string
}

// Audiobook represents an audiobook with its ordered chapters.
type Audiobook struct {
	ID       string
	Title    string
	Author   string
	Chapters []Chapter
}

// Chapter is one audiobook chapter. Position is 1-indexed and determines
// the filename prefix; the stream URL is fetched per chapter on demand.
type Chapter struct {
	ID       string
	Title    string
	Position int
}
