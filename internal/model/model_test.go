package model

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestQualityFromFormat(t *testing.T) {
	tests := []struct {
		format  int
		want    Quality
		wantErr bool
	}{
		{1, QualityMid, false},
		{2, QualityHigh, false},
		{3, QualityFLAC, false},
		{0, 0, true},
		{4, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		got, err := QualityFromFormat(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("QualityFromFormat(%d) expected error, got %v", tt.format, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("QualityFromFormat(%d) unexpected error: %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("QualityFromFormat(%d) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestQuality_StreamParamAndExtension(t *testing.T) {
	tests := []struct {
		quality Quality
		param   string
		ext     string
	}{
		{QualityMid, "mid", ".mp3"},
		{QualityHigh, "high", ".mp3"},
		{QualityFLAC, "flac", ".flac"},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			if got := tt.quality.String(); got != tt.param {
				t.Errorf("String() = %q, want %q", got, tt.param)
			}
			if got := tt.quality.Extension(); got != tt.ext {
				t.Errorf("Extension() = %q, want %q", got, tt.ext)
			}
		})
	}
}

func TestLayout_ReleaseDir(t *testing.T) {
	layout := NewLayout("out", "", "")
	release := &Release{
		ID:      "29015282",
		Title:   "Test Album",
		Credits: "Test Artist",
		Year:    "2023",
	}

	got := layout.ReleaseDir(release)
	want := filepath.Join("out", "_releases", "Test Artist", "2023 - Test Album")
	if got != want {
		t.Errorf("ReleaseDir() = %q, want %q", got, want)
	}
}

func TestLayout_ReleaseDir_SanitizesSegments(t *testing.T) {
	layout := NewLayout("out", "", "")
	release := &Release{
		Title:   "What/Ever: Deluxe",
		Credits: "AC|DC",
		Year:    "1980",
	}

	got := layout.ReleaseDir(release)
	if strings.Contains(got, "|") {
		t.Errorf("ReleaseDir() = %q, contains reserved character", got)
	}
	want := filepath.Join("out", "_releases", "AC_DC", "1980 - What_Ever_ Deluxe")
	if got != want {
		t.Errorf("ReleaseDir() = %q, want %q", got, want)
	}
}

func TestLayout_TrackFile(t *testing.T) {
	layout := NewLayout("out", "", "")
	track := &Track{
		ID:           "12776890",
		Title:        "Song Title",
		Credits:      "Artist",
		ReleaseTitle: "Album",
		Position:     3,
	}

	dir := layout.TrackDir(track)
	wantDir := filepath.Join("out", "_tracks", "Artist - Album")
	if dir != wantDir {
		t.Errorf("TrackDir() = %q, want %q", dir, wantDir)
	}

	got := layout.TrackFile(dir, track, QualityFLAC)
	want := filepath.Join(wantDir, "03 - Song Title.flac")
	if got != want {
		t.Errorf("TrackFile() = %q, want %q", got, want)
	}

	got = layout.TrackFile(dir, track, QualityHigh)
	want = filepath.Join(wantDir, "03 - Song Title.mp3")
	if got != want {
		t.Errorf("TrackFile() = %q, want %q", got, want)
	}
}

func TestLayout_CustomTemplates(t *testing.T) {
	layout := NewLayout("out", "{year} - {artist} - {album}", "{tracknum} {artist} - {title}")
	release := &Release{Title: "Album", Credits: "Artist", Year: "1999"}

	dir := layout.ReleaseDir(release)
	want := filepath.Join("out", "_releases", "1999 - Artist - Album")
	if dir != want {
		t.Errorf("ReleaseDir() = %q, want %q", dir, want)
	}

	track := &Track{Title: "Song", Credits: "Artist", ReleaseTitle: "Album", Position: 12}
	got := layout.TrackFile(dir, track, QualityFLAC)
	if filepath.Base(got) != "12 Artist - Song.flac" {
		t.Errorf("TrackFile() base = %q, want %q", filepath.Base(got), "12 Artist - Song.flac")
	}
}

func TestLayout_EpisodeFile(t *testing.T) {
	layout := NewLayout("out", "", "")
	dir := layout.PodcastDir("My Podcast")

	wantDir := filepath.Join("out", "_podcasts", "My Podcast")
	if dir != wantDir {
		t.Errorf("PodcastDir() = %q, want %q", dir, wantDir)
	}

	got := layout.EpisodeFile(dir, 7, "Episode: The Seventh")
	want := filepath.Join(wantDir, "07 - Episode_ The Seventh.mp3")
	if got != want {
		t.Errorf("EpisodeFile() = %q, want %q", got, want)
	}
}

func TestLayout_ChapterFile(t *testing.T) {
	layout := NewLayout("out", "", "")
	dir := layout.AudiobookDir("Author", "Book")

	wantDir := filepath.Join("out", "_audiobooks", "Author - Book")
	if dir != wantDir {
		t.Errorf("AudiobookDir() = %q, want %q", dir, wantDir)
	}

	got := layout.ChapterFile(dir, Chapter{ID: "42", Title: "Chapter One", Position: 1})
	want := filepath.Join(wantDir, "001 - Chapter One.mp3")
	if got != want {
		t.Errorf("ChapterFile() = %q, want %q", got, want)
	}
}

func TestLayout_FileTruncatesLongNames(t *testing.T) {
	layout := NewLayout("out", "", "")
	dir := filepath.Join("out", "_tracks", "Artist - Album")

	long := strings.Repeat("x", 400)
	got := layout.File(dir, long+".flac")

	if len(got) >= 260 {
		t.Errorf("File() length = %d, want < 260", len(got))
	}
	if filepath.Ext(got) != ".flac" {
		t.Errorf("File() lost extension: %q", got)
	}
}

func TestLayout_TruncationKeepsValidUTF8(t *testing.T) {
	layout := NewLayout("out", "", "")

	// Cyrillic titles put two-byte runes on the byte budget boundary;
	// the cut must back up instead of splitting one.
	dir := filepath.Join("out", "_tracks", "Artist - Album")
	got := layout.File(dir, strings.Repeat("я", 400)+".flac")

	if len(got) >= 260 {
		t.Errorf("File() length = %d, want < 260", len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("File() produced invalid UTF-8: %q", got)
	}
	if filepath.Ext(got) != ".flac" {
		t.Errorf("File() lost extension: %q", got)
	}

	playlistDir := layout.PlaylistDir("X" + strings.Repeat("я", 400))
	if len(playlistDir) > 247 {
		t.Errorf("PlaylistDir() length = %d, want <= 247", len(playlistDir))
	}
	if !utf8.ValidString(playlistDir) {
		t.Errorf("PlaylistDir() produced invalid UTF-8: %q", playlistDir)
	}
}
