package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	ioutils "github.com/handiism/zvuk-downloader/internal/io"
)

// Default templates for release folders and track files.
//
// Templates support placeholders that are replaced with sanitized values:
//   - {artist} - artist credits line
//   - {album} - release title
//   - {year} - four-digit release year
//   - {title} - track title
//   - {tracknum} - track position (2 digits, zero-padded)
const (
	DefaultAlbumFolderTemplate = "{artist}/{year} - {album}"
	DefaultTrackFileTemplate   = "{tracknum} - {title}"
)

// Per-kind directory roots under the output path.
const (
	tracksRoot     = "_tracks"
	releasesRoot   = "_releases"
	playlistsRoot  = "_playlists"
	selectionsRoot = "_selections"
	podcastsRoot   = "_podcasts"
	audiobooksRoot = "_audiobooks"
)

// Layout computes destination paths for downloaded media.
//
// Every kind of resource lives under its own root inside the configured
// output path: standalone tracks under _tracks, releases under _releases
// and so on. Names are sanitized before they become path segments, and
// paths are truncated to stay within Windows limits (248 characters for
// folders, 260 for files).
//
// Example:
//
//	layout := NewLayout("zvuk_downloads", "", "")
//	dir := layout.ReleaseDir(release)
//	// zvuk_downloads/_releases/Artist/2023 - Album
//	path := layout.TrackFile(dir, track, QualityFLAC)
//	// zvuk_downloads/_releases/Artist/2023 - Album/01 - Title.flac
type Layout struct {
	root          string
	albumTemplate string
	trackTemplate string
}

// NewLayout creates a Layout rooted at the given output path.
//
// Empty template arguments fall back to DefaultAlbumFolderTemplate and
// DefaultTrackFileTemplate.
func NewLayout(root, albumFolderTemplate, trackFileTemplate string) *Layout {
	if albumFolderTemplate == "" {
		albumFolderTemplate = DefaultAlbumFolderTemplate
	}
	if trackFileTemplate == "" {
		trackFileTemplate = DefaultTrackFileTemplate
	}
	return &Layout{
		root:          root,
		albumTemplate: albumFolderTemplate,
		trackTemplate: trackFileTemplate,
	}
}

// TrackDir returns the directory for a standalone track download.
func (l *Layout) TrackDir(t *Track) string {
	name := ioutils.SanitizeFileName(t.Credits + " - " + t.ReleaseTitle)
	return l.dir(tracksRoot, name)
}

// ReleaseDir returns the directory for a release, expanded from the
// album folder template.
func (l *Layout) ReleaseDir(r *Release) string {
	path := l.albumTemplate
	path = strings.ReplaceAll(path, "{artist}", ioutils.SanitizeFileName(r.Credits))
	path = strings.ReplaceAll(path, "{year}", ioutils.SanitizeFileName(r.Year))
	path = strings.ReplaceAll(path, "{album}", ioutils.SanitizeFileName(r.Title))
	return l.dir(releasesRoot, filepath.FromSlash(path))
}

// PlaylistDir returns the directory for a playlist download.
func (l *Layout) PlaylistDir(title string) string {
	return l.dir(playlistsRoot, ioutils.SanitizeFileName(title))
}

// SelectionDir returns the directory for a curated selection download.
func (l *Layout) SelectionDir(title string) string {
	return l.dir(selectionsRoot, ioutils.SanitizeFileName(title))
}

// PodcastDir returns the directory for a podcast download.
func (l *Layout) PodcastDir(title string) string {
	return l.dir(podcastsRoot, ioutils.SanitizeFileName(title))
}

// AudiobookDir returns the directory for an audiobook download.
func (l *Layout) AudiobookDir(author, title string) string {
	name := ioutils.SanitizeFileName(author + " - " + title)
	return l.dir(audiobooksRoot, name)
}

// TrackFile returns the full file path for a track inside dir, expanded
// from the track file template and carrying the extension of the chosen
// quality tier.
func (l *Layout) TrackFile(dir string, t *Track, q Quality) string {
	name := l.trackTemplate
	name = strings.ReplaceAll(name, "{tracknum}", fmt.Sprintf("%02d", t.Position))
	name = strings.ReplaceAll(name, "{title}", t.Title)
	name = strings.ReplaceAll(name, "{artist}", t.Credits)
	name = strings.ReplaceAll(name, "{album}", t.ReleaseTitle)
	name = strings.ReplaceAll(name, "{year}", t.ReleaseYear)
	return l.File(dir, ioutils.SanitizeFileName(name)+q.Extension())
}

// EpisodeFile returns the full file path for a podcast episode inside dir.
// Episodes are numbered by their 1-indexed publication order so that
// same-titled episodes cannot collide.
func (l *Layout) EpisodeFile(dir string, index int, title string) string {
	name := fmt.Sprintf("%02d - %s", index, ioutils.SanitizeFileName(title))
	return l.File(dir, name+".mp3")
}

// ChapterFile returns the full file path for an audiobook chapter inside dir.
func (l *Layout) ChapterFile(dir string, c Chapter) string {
	name := fmt.Sprintf("%03d - %s", c.Position, ioutils.SanitizeFileName(c.Title))
	return l.File(dir, name+".mp3")
}

// File joins dir and name, truncating the name when the joined path
// would exceed the Windows MAX_PATH limit. The extension is preserved.
func (l *Layout) File(dir, name string) string {
	path := filepath.Join(dir, name)
	if len(path) < 260 {
		return path
	}

	ext := filepath.Ext(name)
	budget := 259 - len(dir) - 1 - len(ext)
	if budget > 0 && budget < len(name)-len(ext) {
		path = filepath.Join(dir, truncate(name, budget)+ext)
	}
	return path
}

// dir joins the output root, a kind root and a name, capping folder
// length for Windows compatibility.
func (l *Layout) dir(kindRoot, name string) string {
	path := filepath.Join(l.root, kindRoot, name)
	if len(path) >= 248 {
		path = truncate(path, 247)
	}
	return path
}

// truncate cuts s to at most n bytes, backing up so the cut never
// splits a multibyte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
