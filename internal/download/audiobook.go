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

// downloadAudiobook materializes an audiobook's chapters under the
// _audiobooks root.
func (m *Manager) downloadAudiobook(ctx context.Context, task *Task) error {
	book, err := m.catalog.GetAudiobook(ctx, task.Ref.ID)
	if err != nil {
		return err
	}
	task.Title = book.Author + " - " + book.Title

	dir := m.layout.AudiobookDir(book.Author, book.Title)
	if err := ioutils.EnsureDir(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	report := runner.Run(ctx, m.cfg.Threads, book.Chapters, func(ctx context.Context, chapter model.Chapter) error {
		return m.downloadChapter(ctx, task, dir, book, chapter)
	})
	for _, res := range report.Failed() {
		m.logger.Error("chapter failed", zap.String("chapter", res.Item.ID), zap.Error(res.Err))
	}
	return report.Err()
}

// downloadChapter materializes one chapter. The chapter's stream URL
// comes from a per-chapter GraphQL lookup.
func (m *Manager) downloadChapter(ctx context.Context, task *Task, dir string, book *model.Audiobook, chapter model.Chapter) error {
	path := m.layout.ChapterFile(dir, chapter)
	if m.skipExisting(task, path) {
		return nil
	}

	streamURL, err := m.catalog.GetChapterStreamURL(ctx, chapter.ID)
	if err != nil {
		return err
	}

	if err := m.fetchFile(ctx, task, streamURL, path); err != nil {
		return fmt.Errorf("download chapter %s: %w", chapter.ID, err)
	}

	m.tag(model.QualityMid, path, audio.TrackTags{
		Title:    chapter.Title,
		Artist:   book.Author,
		Album:    book.Title,
		Position: chapter.Position,
	}, nil)

	m.logger.Info("downloaded", zap.String("file", filepath.Base(path)))
	return nil
}
