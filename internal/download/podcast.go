package download

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/audio"
	ioutils "github.com/handiism/zvuk-downloader/internal/io"
	"github.com/handiism/zvuk-downloader/internal/model"
	"github.com/handiism/zvuk-downloader/internal/runner"
)

// episodeRef pairs an episode id with its 1-based position in the
// show's listing, which becomes the filename prefix.
type episodeRef struct {
	index int
	id    string
}

// downloadPodcast materializes a podcast's episodes under the
// _podcasts root.
func (m *Manager) downloadPodcast(ctx context.Context, task *Task) error {
	podcast, err := m.catalog.GetPodcast(ctx, task.Ref.ID)
	if err != nil {
		return err
	}
	task.Title = podcast.Title

	dir := m.layout.PodcastDir(podcast.Title)
	if err := ioutils.EnsureDir(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	refs := make([]episodeRef, len(podcast.EpisodeIDs))
	for i, id := range podcast.EpisodeIDs {
		refs[i] = episodeRef{index: i + 1, id: id}
	}

	report := runner.Run(ctx, m.cfg.Threads, refs, func(ctx context.Context, ref episodeRef) error {
		return m.downloadEpisode(ctx, task, dir, podcast.Title, ref)
	})
	for _, res := range report.Failed() {
		m.logger.Error("episode failed", zap.String("episode", res.Item.id), zap.Error(res.Err))
	}
	return report.Err()
}

// downloadEpisode materializes one episode. Episodes carry their
// stream URL in the metadata, so there is no separate stream lookup.
func (m *Manager) downloadEpisode(ctx context.Context, task *Task, dir, show string, ref episodeRef) error {
	episode, err := m.catalog.GetEpisode(ctx, ref.id)
	if err != nil {
		return err
	}
	if episode.StreamURL == "" {
		return fmt.Errorf("episode %s has no stream url", ref.id)
	}

	path := m.layout.EpisodeFile(dir, ref.index, episode.Title)
	if m.skipExisting(task, path) {
		return nil
	}

	if err := m.fetchFile(ctx, task, episode.StreamURL, path); err != nil {
		return fmt.Errorf("download episode %s: %w", ref.id, err)
	}

	m.tag(model.QualityMid, path, audio.TrackTags{
		Title:    episode.Title,
		Artist:   episode.Author,
		Album:    show,
		Position: ref.index,
	}, nil)

	m.logger.Info("downloaded", zap.String("file", filepath.Base(path)))
	return nil
}
