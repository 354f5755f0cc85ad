package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/handiism/zvuk-downloader/internal/model"
)

// coverSize is the variant requested from the image CDN. The API hands
// out templated URLs with a literal {size} placeholder.
const coverSize = "1000x1000"

// ZvukDate is a custom date type that handles the API's date fields,
// which arrive either as a compact number (20230915) or a string.
type ZvukDate struct {
	Raw string
}

// UnmarshalJSON accepts both numeric and string dates.
func (d *ZvukDate) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		d.Raw = n.String()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d.Raw = s
	return nil
}

// Year returns the four-digit year, or "" when the date is absent or
// too short to carry one.
func (d ZvukDate) Year() string {
	if len(d.Raw) < 4 {
		return ""
	}
	return d.Raw[:4]
}

// JSONImage represents a templated CDN image reference.
type JSONImage struct {
	Src string `json:"src"`
}

// URL returns the image source with the size placeholder filled in.
func (ji *JSONImage) URL() string {
	return strings.ReplaceAll(ji.Src, "{size}", coverSize)
}

// TracksResponse is the envelope of /api/tiny/tracks. Tracks are keyed
// by their decimal ID.
type TracksResponse struct {
	Result struct {
		Tracks map[string]JSONTrack `json:"tracks"`
	} `json:"result"`
}

// JSONTrack represents a track from the tiny tracks endpoint.
type JSONTrack struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Credits      string     `json:"credits"`
	ReleaseID    int64      `json:"release_id"`
	ReleaseTitle string     `json:"release_title"`
	Position     int        `json:"position"`
	Duration     int        `json:"duration"`
	ReleaseDate  *ZvukDate  `json:"release_date"`
	HasFLAC      bool       `json:"has_flac"`
	Image        *JSONImage `json:"image"`
}

// ToTrack converts a JSONTrack to a model.Track. The map key is the
// authoritative ID; the body's id field is not always present.
func (jt *JSONTrack) ToTrack(id string) *model.Track {
	track := &model.Track{
		ID:           id,
		Title:        jt.Title,
		Credits:      jt.Credits,
		ReleaseID:    formatID(jt.ReleaseID),
		ReleaseTitle: jt.ReleaseTitle,
		Position:     jt.Position,
		Duration:     jt.Duration,
		HasFLAC:      jt.HasFLAC,
	}
	if jt.ReleaseDate != nil {
		track.ReleaseYear = jt.ReleaseDate.Year()
	}
	if jt.Image != nil {
		track.CoverURL = jt.Image.URL()
	}
	return track
}

// StreamResponse is the envelope of /api/tiny/track/stream.
type StreamResponse struct {
	Result struct {
		Stream string `json:"stream"`
	} `json:"result"`
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
