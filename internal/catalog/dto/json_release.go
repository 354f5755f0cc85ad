package dto

import "github.com/handiism/zvuk-downloader/internal/model"

// ReleasesResponse is the envelope of /api/tiny/releases. Releases are
// keyed by their decimal ID.
type ReleasesResponse struct {
	Result struct {
		Releases map[string]JSONRelease `json:"releases"`
	} `json:"result"`
}

// JSONRelease represents a release (album) from the tiny releases
// endpoint.
type JSONRelease struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Credits  string     `json:"credits"`
	Date     *ZvukDate  `json:"date"`
	TrackIDs []int64    `json:"track_ids"`
	Image    *JSONImage `json:"image"`
}

// ToRelease converts a JSONRelease to a model.Release.
func (jr *JSONRelease) ToRelease(id string) *model.Release {
	release := &model.Release{
		ID:       id,
		Title:    jr.Title,
		Credits:  jr.Credits,
		TrackIDs: formatIDs(jr.TrackIDs),
	}
	if jr.Date != nil {
		release.Year = jr.Date.Year()
	}
	if jr.Image != nil {
		release.CoverURL = jr.Image.URL()
	}
	return release
}

// ArtistReleasesResponse is the envelope of /api/tiny/artists/releases.
// Unlike the other tiny endpoints the result is a bare list.
type ArtistReleasesResponse struct {
	Result []JSONArtistRelease `json:"result"`
}

// JSONArtistRelease is one release reference in an artist's
// discography.
type JSONArtistRelease struct {
	ID int64 `json:"id"`
}

func formatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = formatID(id)
	}
	return out
}
