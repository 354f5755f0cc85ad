// Package model defines the core data structures used throughout
// the zvuk-downloader application.
//
// # Entities
//
// Track, Release, Playlist, Selection, Podcast, Episode, Audiobook and
// Chapter mirror the catalog's resource kinds. They carry only the
// fields the downloader consumes; wire-format decoding lives in the
// catalog client's dto package.
//
// # Quality
//
// Quality maps the --format flag to the stream endpoint's quality
// parameter and the output file extension:
//
//	q, err := model.QualityFromFormat(3)
//	q.String()    // "flac"
//	q.Extension() // ".flac"
//
// # Layout
//
// Layout computes destination paths under the output root. Each resource
// kind has its own subtree (_tracks, _releases, _playlists, _selections,
// _podcasts, _audiobooks) and release folders are expanded from a
// template:
//
//	layout := model.NewLayout("zvuk_downloads", "{artist}/{year} - {album}", "{tracknum} - {title}")
//	dir := layout.ReleaseDir(release)
//	path := layout.TrackFile(dir, track, model.QualityFLAC)
//
// All path segments are sanitized and truncated for cross-platform
// compatibility.
package model
