package audio

import "github.com/handiism/zvuk-downloader/internal/model"

// TrackTags holds the text metadata written into a downloaded file.
//
// The same set of fields serves album tracks, podcast episodes, and
// audiobook chapters: episodes use the show author as Artist, chapters
// use the book title as Album.
type TrackTags struct {
	Title    string
	Artist   string
	Album    string
	Year     string
	Position int
}

// Tagger writes metadata and cover art into an audio file.
//
// Implementations exist for the two containers Zvuk serves: FLAC
// (vorbis comments + picture block) and MP3 (ID3v2 frames).
//
// Example:
//
//	tagger := audio.ForQuality(model.QualityFLAC)
//	err := tagger.Apply("/music/01 - Song.flac", audio.TrackTags{
//	    Title:    "Song",
//	    Artist:   "Artist",
//	    Album:    "Album",
//	    Year:     "2023",
//	    Position: 1,
//	}, jpegBytes)
type Tagger interface {
	// Apply writes tags into the file at path. artwork is JPEG bytes
	// for the front cover; pass nil to skip artwork.
	Apply(path string, tags TrackTags, artwork []byte) error
}

// ForQuality returns the tagger matching the container that quality
// downloads as.
func ForQuality(q model.Quality) Tagger {
	if q.IsLossless() {
		return &FLACTagger{}
	}
	return &MP3Tagger{}
}
