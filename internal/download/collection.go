package download

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	ioutils "github.com/handiism/zvuk-downloader/internal/io"
	"github.com/handiism/zvuk-downloader/internal/model"
	"github.com/handiism/zvuk-downloader/internal/runner"
)

// downloadPlaylist materializes a user playlist under the _playlists
// root.
func (m *Manager) downloadPlaylist(ctx context.Context, task *Task) error {
	playlist, err := m.catalog.GetPlaylist(ctx, task.Ref.ID)
	if err != nil {
		return err
	}
	task.Title = playlist.Title

	dir := m.layout.PlaylistDir(playlist.Title)
	return m.downloadTrackList(ctx, task, dir, playlist.Title, playlist.TrackIDs)
}

// downloadSelection materializes a curated selection under the
// _selections root.
func (m *Manager) downloadSelection(ctx context.Context, task *Task) error {
	selection, err := m.catalog.GetSelection(ctx, task.Ref.ID)
	if err != nil {
		return err
	}
	task.Title = selection.Title

	dir := m.layout.SelectionDir(selection.Title)
	return m.downloadTrackList(ctx, task, dir, selection.Title, selection.TrackIDs)
}

// downloadTrackList materializes an ordered list of tracks gathered
// from many releases. Tracks are renumbered by list position, both in
// the filename and the track-number tag, so same-numbered tracks from
// different releases cannot collide.
func (m *Manager) downloadTrackList(ctx context.Context, task *Task, dir, title string, ids []string) error {
	if err := ioutils.EnsureDir(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tracks, err := m.fetchTracks(ctx, ids)
	if err != nil {
		return err
	}
	for i, track := range tracks {
		renumbered := *track
		renumbered.Position = i + 1
		tracks[i] = &renumbered
	}

	report := runner.Run(ctx, m.cfg.Threads, tracks, func(ctx context.Context, track *model.Track) error {
		return m.downloadTrack(ctx, task, dir, track, nil)
	})
	for _, res := range report.Failed() {
		m.logger.Error("track failed", zap.String("track", res.Item.ID), zap.Error(res.Err))
	}

	m.writePlaylistFile(ctx, task, dir, title, tracks)
	return report.Err()
}
