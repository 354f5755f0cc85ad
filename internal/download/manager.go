package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/audio"
	"github.com/handiism/zvuk-downloader/internal/catalog"
	"github.com/handiism/zvuk-downloader/internal/config"
	"github.com/handiism/zvuk-downloader/internal/http"
	ioutils "github.com/handiism/zvuk-downloader/internal/io"
	"github.com/handiism/zvuk-downloader/internal/model"
	"github.com/handiism/zvuk-downloader/internal/resolve"
	"github.com/handiism/zvuk-downloader/internal/runner"
)

// Manager coordinates downloads for every supported link kind.
type Manager struct {
	cfg      *config.Config
	client   *http.Client
	catalog  *catalog.Client
	layout   *model.Layout
	images   *ioutils.ImageService
	playlist *audio.PlaylistCreator
	logger   *zap.Logger
	quality  model.Quality
}

// NewManager creates a download Manager.
func NewManager(cfg *config.Config, client *http.Client, cat *catalog.Client, logger *zap.Logger) (*Manager, error) {
	quality, err := cfg.Quality()
	if err != nil {
		return nil, err
	}

	return &Manager{
		cfg:      cfg,
		client:   client,
		catalog:  cat,
		layout:   cfg.Layout(),
		images:   ioutils.NewImageService(),
		playlist: audio.NewPlaylistCreator(cfg.PlaylistFileFormat(), cfg.M3UExtended),
		logger:   logger,
		quality:  quality,
	}, nil
}

// Run verifies the account's subscription, then downloads every link.
//
// The error return covers only the subscription check; download
// failures live inside the Summary so one bad link cannot hide the
// results of the others.
func (m *Manager) Run(ctx context.Context, links []string) (*Summary, error) {
	if err := m.catalog.VerifySubscription(ctx); err != nil {
		return nil, err
	}
	return m.DownloadAll(ctx, links), nil
}

// DownloadAll resolves and downloads every link with bounded
// parallelism, producing one summary row per link in input order.
// Links that fail to resolve are reported and do not stop the rest.
func (m *Manager) DownloadAll(ctx context.Context, links []string) *Summary {
	outcomes := make([]Outcome, len(links))

	var tasks []*Task
	for i, link := range links {
		ref, err := resolve.Link(link)
		if err != nil {
			m.logger.Warn("skipping link", zap.String("link", link), zap.Error(err))
			outcomes[i] = Outcome{Link: link, Err: err}
			continue
		}
		tasks = append(tasks, &Task{Link: link, Ref: ref, index: i})
	}

	report := runner.Run(ctx, m.cfg.Threads, tasks, m.dispatch)

	for _, res := range report.Results {
		task := res.Item
		if res.Err != nil {
			m.logger.Error("link failed",
				zap.String("kind", task.Ref.Kind.String()),
				zap.String("id", task.Ref.ID),
				zap.Error(res.Err))
		}
		outcomes[task.index] = task.outcome(res.Err)
	}

	return &Summary{Outcomes: outcomes}
}

// dispatch routes one resolved link to the flow for its kind.
func (m *Manager) dispatch(ctx context.Context, task *Task) error {
	m.logger.Info("starting",
		zap.String("kind", task.Ref.Kind.String()),
		zap.String("id", task.Ref.ID))

	switch task.Ref.Kind {
	case resolve.KindTrack:
		return m.downloadOne(ctx, task)
	case resolve.KindRelease:
		title, err := m.downloadRelease(ctx, task, task.Ref.ID)
		if title != "" {
			task.Title = title
		}
		return err
	case resolve.KindPlaylist:
		return m.downloadPlaylist(ctx, task)
	case resolve.KindArtist:
		return m.downloadArtist(ctx, task)
	case resolve.KindSelection:
		return m.downloadSelection(ctx, task)
	case resolve.KindPodcast:
		return m.downloadPodcast(ctx, task)
	case resolve.KindAudiobook:
		return m.downloadAudiobook(ctx, task)
	default:
		return fmt.Errorf("no handler for kind %s", task.Ref.Kind)
	}
}

// fetchFile streams url into path, retrying with the configured fixed
// delay. A partial file from a failed attempt is removed so a re-run
// does not mistake it for a finished download.
func (m *Manager) fetchFile(ctx context.Context, task *Task, url, path string) error {
	var written int64
	var err error

	for attempt := 1; attempt <= m.cfg.RetryAttempts; attempt++ {
		written, err = m.client.Download(ctx, url, path)
		if err == nil {
			break
		}

		m.logger.Warn("download attempt failed",
			zap.String("file", filepath.Base(path)),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", m.cfg.RetryAttempts),
			zap.Error(err))

		if attempt < m.cfg.RetryAttempts {
			m.waitRetry(ctx)
		}
	}

	if err != nil {
		_ = os.Remove(path)
		return err
	}

	atomic.AddInt64(&task.bytes, written)
	atomic.AddInt32(&task.files, 1)
	return nil
}

func (m *Manager) waitRetry(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(m.cfg.RetryDelay()):
	}
}

// skipExisting reports whether path already holds a finished download
// from an earlier run.
func (m *Manager) skipExisting(task *Task, path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return false
	}

	m.logger.Info("skipping existing file", zap.String("file", filepath.Base(path)))
	atomic.AddInt32(&task.skipped, 1)
	return true
}

// artwork fetches cover art and sizes it for embedding. Covers are
// best effort: failures are logged and produce nil.
func (m *Manager) artwork(ctx context.Context, coverURL string) []byte {
	if !m.cfg.EmbedCover || coverURL == "" {
		return nil
	}

	data, err := m.client.FetchUncached(ctx, coverURL)
	if err != nil {
		m.logger.Warn("cover download failed", zap.String("url", coverURL), zap.Error(err))
		return nil
	}

	resized, err := m.images.ResizeImage(ctx, data, m.cfg.CoverMaxSize, m.cfg.CoverMaxSize)
	if err != nil {
		m.logger.Warn("cover resize failed", zap.String("url", coverURL), zap.Error(err))
		return nil
	}
	return resized
}

// tag writes tags into a finished file. Failures are logged, not
// returned: the audio is already on disk.
func (m *Manager) tag(q model.Quality, path string, tags audio.TrackTags, artwork []byte) {
	if err := audio.ForQuality(q).Apply(path, tags, artwork); err != nil {
		m.logger.Warn("tagging failed", zap.String("file", filepath.Base(path)), zap.Error(err))
	}
}
