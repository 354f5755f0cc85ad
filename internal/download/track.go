package download

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/audio"
	ioutils "github.com/handiism/zvuk-downloader/internal/io"
	"github.com/handiism/zvuk-downloader/internal/model"
)

// downloadOne materializes a single-track link under the _tracks root.
func (m *Manager) downloadOne(ctx context.Context, task *Task) error {
	track, err := m.catalog.GetTrack(ctx, task.Ref.ID)
	if err != nil {
		return err
	}
	task.Title = track.Credits + " - " + track.Title

	dir := m.layout.TrackDir(track)
	if err := ioutils.EnsureDir(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	artwork := m.artwork(ctx, track.CoverURL)
	return m.downloadTrack(ctx, task, dir, track, artwork)
}

// downloadTrack is the leaf flow shared by every track-bearing kind:
// stream URL lookup, streamed download, tags.
func (m *Manager) downloadTrack(ctx context.Context, task *Task, dir string, track *model.Track, artwork []byte) error {
	quality := m.trackQuality(track)
	if quality != m.quality {
		m.logger.Warn("no lossless stream, falling back",
			zap.String("track", track.ID),
			zap.String("quality", quality.String()))
	}

	path := m.layout.TrackFile(dir, track, quality)
	if m.skipExisting(task, path) {
		return nil
	}

	streamURL, err := m.catalog.GetStreamURL(ctx, track.ID, quality)
	if err != nil {
		return err
	}

	if err := m.fetchFile(ctx, task, streamURL, path); err != nil {
		return fmt.Errorf("download track %s: %w", track.ID, err)
	}

	m.tag(quality, path, audio.TrackTags{
		Title:    track.Title,
		Artist:   track.Credits,
		Album:    track.ReleaseTitle,
		Year:     track.ReleaseYear,
		Position: track.Position,
	}, artwork)

	m.logger.Info("downloaded", zap.String("file", filepath.Base(path)))
	return nil
}

// trackQuality returns the quality the track will actually download
// at. FLAC falls back to the high MP3 tier when the catalog has no
// lossless stream for the track.
func (m *Manager) trackQuality(track *model.Track) model.Quality {
	if m.quality.IsLossless() && !track.HasFLAC {
		return model.QualityHigh
	}
	return m.quality
}

// fetchTracks resolves ids to track metadata in one batched call,
// preserving list order. Ids the catalog does not know are logged and
// dropped.
func (m *Manager) fetchTracks(ctx context.Context, ids []string) ([]*model.Track, error) {
	byID, err := m.catalog.GetTracks(ctx, ids)
	if err != nil {
		return nil, err
	}

	tracks := make([]*model.Track, 0, len(ids))
	for _, id := range ids {
		track, ok := byID[id]
		if !ok {
			m.logger.Warn("track metadata missing", zap.String("track", id))
			continue
		}
		tracks = append(tracks, track)
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("no downloadable tracks among %d ids", len(ids))
	}
	return tracks, nil
}
