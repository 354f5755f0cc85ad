package model

// Track represents a single track from the catalog.
//
// Track carries the metadata needed to download and tag one audio file:
//   - Title and Credits for tag frames and file naming
//   - Position for the zero-padded filename prefix and track-number tag
//   - ReleaseTitle and ReleaseYear for album-level tags
//   - CoverURL for embedding artwork when the track is downloaded on its own
//
// Stream URLs are not part of the track: they are short-lived signed URLs
// requested separately right before the download.
type Track struct {
	// ID is the catalog identifier, as it appears in links.
	ID string

	// Title is the track title.
	Title string

	// Credits is the performer line as shown in the catalog.
	Credits string

	// ReleaseID identifies the release this track belongs to.
	ReleaseID string

	// ReleaseTitle is the parent release title, used as the album tag.
	ReleaseTitle string

	// Position is the 1-indexed position within the release.
	Position int

	// Duration is the track length in seconds.
	Duration int

	// ReleaseYear is the four-digit release year, empty when unknown.
	ReleaseYear string

	// HasFLAC reports whether a lossless stream is available.
	HasFLAC bool

	// CoverURL is the release cover image URL. Empty when no image
	// is available.
	CoverURL string
}

// HasCover returns true if cover art is available for download.
func (t *Track) HasCover() bool {
	return t.CoverURL != ""
}
