package download

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/audio"
	ioutils "github.com/handiism/zvuk-downloader/internal/io"
	"github.com/handiism/zvuk-downloader/internal/model"
	"github.com/handiism/zvuk-downloader/internal/runner"
)

// downloadRelease materializes one release: cover once, then all
// tracks through the nested runner, then the optional playlist file.
// The returned title is reported even when some tracks fail.
func (m *Manager) downloadRelease(ctx context.Context, task *Task, id string) (string, error) {
	release, err := m.catalog.GetRelease(ctx, id)
	if err != nil {
		return "", err
	}
	title := release.Credits + " - " + release.Title

	dir := m.layout.ReleaseDir(release)
	if err := ioutils.EnsureDir(dir); err != nil {
		return title, fmt.Errorf("create %s: %w", dir, err)
	}

	tracks, err := m.fetchTracks(ctx, release.TrackIDs)
	if err != nil {
		return title, err
	}

	artwork := m.releaseArtwork(ctx, task, release, dir)

	report := runner.Run(ctx, m.cfg.Threads, tracks, func(ctx context.Context, track *model.Track) error {
		return m.downloadTrack(ctx, task, dir, track, artwork)
	})
	for _, res := range report.Failed() {
		m.logger.Error("track failed", zap.String("track", res.Item.ID), zap.Error(res.Err))
	}

	m.writePlaylistFile(ctx, task, dir, title, tracks)

	if err := report.Err(); err != nil {
		return title, fmt.Errorf("release %s: %w", id, err)
	}

	m.logger.Info("release complete", zap.String("release", title), zap.Int("tracks", len(tracks)))
	return title, nil
}

// downloadArtist downloads an artist's whole discography, one nested
// runner item per release.
func (m *Manager) downloadArtist(ctx context.Context, task *Task) error {
	ids, err := m.catalog.GetArtistReleaseIDs(ctx, task.Ref.ID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("artist %s has no releases", task.Ref.ID)
	}
	task.Title = fmt.Sprintf("%d releases", len(ids))

	report := runner.Run(ctx, m.cfg.Threads, ids, func(ctx context.Context, id string) error {
		_, err := m.downloadRelease(ctx, task, id)
		return err
	})
	for _, res := range report.Failed() {
		m.logger.Error("release failed", zap.String("release", res.Item), zap.Error(res.Err))
	}
	return report.Err()
}

// releaseArtwork downloads the release cover once, saves it next to
// the tracks when configured, and returns the bytes to embed in tags.
func (m *Manager) releaseArtwork(ctx context.Context, task *Task, release *model.Release, dir string) []byte {
	if !release.HasCover() || (!m.cfg.EmbedCover && !m.cfg.SaveCoverInFolder) {
		return nil
	}

	data, err := m.client.FetchUncached(ctx, release.CoverURL)
	if err != nil {
		m.logger.Warn("cover download failed", zap.String("release", release.ID), zap.Error(err))
		return nil
	}

	if m.cfg.SaveCoverInFolder {
		cover, err := m.images.ConvertToJPEG(ctx, data)
		if err != nil {
			m.logger.Warn("cover convert failed", zap.String("release", release.ID), zap.Error(err))
		} else if err := ioutils.WriteFile(ctx, filepath.Join(dir, "cover.jpg"), cover); err != nil {
			m.logger.Warn("cover save failed", zap.String("release", release.ID), zap.Error(err))
		} else {
			atomic.AddInt32(&task.files, 1)
		}
	}

	if !m.cfg.EmbedCover {
		return nil
	}

	resized, err := m.images.ResizeImage(ctx, data, m.cfg.CoverMaxSize, m.cfg.CoverMaxSize)
	if err != nil {
		m.logger.Warn("cover resize failed", zap.String("release", release.ID), zap.Error(err))
		return nil
	}
	return resized
}

// writePlaylistFile drops a playlist file next to the downloaded
// tracks when create_playlist is on.
func (m *Manager) writePlaylistFile(ctx context.Context, task *Task, dir, title string, tracks []*model.Track) {
	if !m.cfg.CreatePlaylist || len(tracks) == 0 {
		return
	}

	entries := make([]audio.PlaylistEntry, 0, len(tracks))
	for _, track := range tracks {
		path := m.layout.TrackFile(dir, track, m.trackQuality(track))
		entries = append(entries, audio.PlaylistEntry{
			File:     filepath.Base(path),
			Title:    track.Title,
			Artist:   track.Credits,
			Duration: track.Duration,
		})
	}

	name := ioutils.SanitizeFileName(title) + m.playlist.Extension()
	path := m.layout.File(dir, name)
	content := m.playlist.CreatePlaylist(title, entries)

	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		m.logger.Warn("playlist write failed", zap.String("file", filepath.Base(path)), zap.Error(err))
		return
	}

	atomic.AddInt32(&task.files, 1)
	m.logger.Info("created playlist", zap.String("file", filepath.Base(path)))
}
