package download

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/tiktok-downloader/internal/archive"
	"github.com/handiism/tiktok-downloader/internal/config"
	"github.com/handiism/tiktok-downloader/internal/http"
	ioutils "github.com/handiism/tiktok-downloader/internal/io"
	"github.com/handiism/tiktok-downloader/internal/media"
	"github.com/handiism/tiktok-downloader/internal/model"
	"github.com/handiism/tiktok-downloader/internal/naming"
	"github.com/handiism/tiktok-downloader/internal/tiktok"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates the full pipeline for a list of content URLs:
// parse, dedup against the archive ledger, resolve, name, download,
// tag, and record.
//
// Per-item failures produce a failed Outcome and the run continues.
// Only two conditions abort the whole run: the destination directory
// cannot be created, or the archive ledger cannot be read (dedup
// correctness would be silently lost).
type Manager struct {
	settings *config.Settings
	client   *http.Client
	resolver *tiktok.Resolver
	ledger   *archive.Ledger
	tagger   *media.Tagger

	totalFiles      int32
	downloadedFiles int32
	receivedBytes   int64

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(time.Duration(settings.TimeoutSeconds) * time.Second)

	m := &Manager{
		settings:   settings,
		client:     client,
		resolver:   tiktok.NewResolver(client, settings.Endpoints),
		ledger:     archive.NewLedger(settings.ArchivePath),
		tagger:     media.NewTagger(settings.FfmpegPath),
		onProgress: onProgress,
	}
	m.resolver.OnAttempt = func(endpoint string, err error) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Endpoint failed, trying next: %v", err), Level: LevelVerbose})
	}
	return m
}

// Run processes every URL and returns one Outcome per input, in input
// order. The returned error is non-nil only for run-fatal conditions;
// per-item failures are reported through the outcomes.
func (m *Manager) Run(ctx context.Context, urls []string) ([]model.Outcome, error) {
	if err := ioutils.EnsureDir(m.settings.DownloadDir); err != nil {
		return nil, fmt.Errorf("creating download directory: %w", err)
	}

	atomic.StoreInt32(&m.totalFiles, int32(len(urls)))

	outcomes := make([]model.Outcome, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	limit := m.settings.MaxConcurrentDownloads
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, rawURL := range urls {
		i, rawURL := i, rawURL
		g.Go(func() error {
			outcome, err := m.processURL(ctx, rawURL)
			outcomes[i] = outcome
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// GetProgress returns current download progress: completed and total
// files, and the bytes streamed to disk so far.
func (m *Manager) GetProgress() (filesReceived, filesTotal int32, receivedBytes int64) {
	return atomic.LoadInt32(&m.downloadedFiles), atomic.LoadInt32(&m.totalFiles),
		atomic.LoadInt64(&m.receivedBytes)
}

// processURL runs the pipeline for one URL. The returned error is
// non-nil only for run-fatal conditions.
func (m *Manager) processURL(ctx context.Context, rawURL string) (model.Outcome, error) {
	ref, ok := tiktok.ParseMediaURL(rawURL)
	if !ok {
		err := fmt.Errorf("unsupported URL: %s", rawURL)
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return model.Outcome{URL: rawURL, Kind: model.OutcomeFailed, Err: err}, nil
	}
	canonical, _ := tiktok.CanonicalURL(rawURL)

	recorded, err := m.ledger.Contains(ref.ID)
	if err != nil {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return model.Outcome{URL: rawURL, MediaID: ref.ID, Kind: model.OutcomeFailed, Err: err}, err
	}
	if recorded {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Already downloaded: %s", ref.ID), Level: LevelInfo})
		return model.Outcome{URL: rawURL, MediaID: ref.ID, Kind: model.OutcomeAlreadyDownloaded}, nil
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Resolving %s (%s)", ref.ID, ref.Kind), Level: LevelVerbose})
	post, err := m.resolver.Resolve(ctx, ref, canonical)
	if err != nil {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return model.Outcome{URL: rawURL, MediaID: ref.ID, Kind: model.OutcomeFailed, Err: err}, nil
	}

	if post.Kind == model.KindPhoto {
		err = m.downloadGallery(ctx, post)
	} else {
		err = m.downloadVideo(ctx, post)
	}
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", post.ID, err), Level: LevelError})
		return model.Outcome{URL: rawURL, MediaID: ref.ID, Kind: model.OutcomeFailed, Err: err}, nil
	}

	// A failed append only degrades dedup for this item; the download
	// itself succeeded.
	if err := m.ledger.Append(post.ID); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not record %s in archive: %v", post.ID, err), Level: LevelWarning})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", post.ID), Level: LevelSuccess})
	return model.Outcome{URL: rawURL, MediaID: ref.ID, Kind: model.OutcomeSuccess}, nil
}

func (m *Manager) downloadVideo(ctx context.Context, post *model.Post) error {
	if len(post.VideoURLs) == 0 {
		return fmt.Errorf("record for %s carries no play addresses", post.ID)
	}

	fields := naming.FieldsFromPost(post)
	name := naming.ForceVideoExt(naming.Render(m.settings.OutputTemplate, fields))
	path := naming.PadUntilFree(filepath.Join(m.settings.DownloadDir, name))

	if err := m.downloadWithRetries(ctx, post.VideoURLs, path); err != nil {
		return err
	}
	atomic.AddInt32(&m.downloadedFiles, 1)

	if m.tagger.Enabled() {
		if err := m.tagger.TagVideo(ctx, path, post); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(path), err), Level: LevelWarning})
		}
	}

	if err := ioutils.RestoreModTime(path, post.CreatedAt); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error restoring mod time of %s: %v", filepath.Base(path), err), Level: LevelWarning})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s", filepath.Base(path)), Level: LevelVerbose})
	return nil
}

func (m *Manager) downloadGallery(ctx context.Context, post *model.Post) error {
	count := len(post.Images)
	if count == 0 {
		return fmt.Errorf("record for %s carries no gallery images", post.ID)
	}
	atomic.AddInt32(&m.totalFiles, int32(count-1))

	baseFields := naming.FieldsFromPost(post)

	for i, img := range post.Images {
		if len(img.URLs) == 0 {
			return fmt.Errorf("gallery image %d of %s carries no mirrors", i+1, post.ID)
		}

		path := naming.PadUntilFree(m.photoPath(baseFields.WithDimensions(img.Width, img.Height), i, count))

		// Later mirrors are the more reliable ones for gallery images.
		if err := m.downloadWithRetries(ctx, reversed(img.URLs), path); err != nil {
			return fmt.Errorf("image %d/%d: %w", i+1, count, err)
		}
		atomic.AddInt32(&m.downloadedFiles, 1)

		if img.Width == 0 || img.Height == 0 {
			path = m.renameWithProbedDimensions(path, baseFields, i, count)
		}

		if m.tagger.Enabled() {
			if err := m.tagger.TagImage(ctx, path, post); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(path), err), Level: LevelWarning})
			}
		}

		if err := ioutils.RestoreModTime(path, post.CreatedAt); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error restoring mod time of %s: %v", filepath.Base(path), err), Level: LevelWarning})
		}

		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s", filepath.Base(path)), Level: LevelVerbose})
	}

	return nil
}

// photoPath renders the destination for one gallery image. A single
// photo keeps the plain name; multi-image galleries get an index suffix.
func (m *Manager) photoPath(fields naming.Fields, index, count int) string {
	name := naming.ForcePhotoExt(naming.Render(m.settings.OutputTemplate, fields))
	if count > 1 {
		name = naming.IndexedName(name, index+1, count)
	}
	return filepath.Join(m.settings.DownloadDir, name)
}

// renameWithProbedDimensions fills in dimension placeholders the API
// left empty by probing the downloaded file. Probe or rename failures
// keep the original name; the download is already safe on disk.
func (m *Manager) renameWithProbedDimensions(path string, baseFields naming.Fields, index, count int) string {
	width, height, err := media.Dimensions(path)
	if err != nil {
		return path
	}

	refreshed := m.photoPath(baseFields.WithDimensions(width, height), index, count)
	if refreshed == path {
		return path
	}

	refreshed = naming.PadUntilFree(refreshed)
	if err := os.Rename(path, refreshed); err != nil {
		return path
	}
	return refreshed
}

// downloadWithRetries tries the mirror list in order, restarting from
// the first mirror after an exponentially growing cooldown.
func (m *Manager) downloadWithRetries(ctx context.Context, urls []string, destPath string) error {
	attempts := m.settings.DownloadMaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for tries := 0; tries < attempts; tries++ {
		if tries > 0 {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries, attempts-1, filepath.Base(destPath)), Level: LevelWarning})
			m.waitForRetry(ctx, tries-1)
		}

		for _, url := range urls {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Count only the delta per callback so retried or partial
			// attempts don't inflate the running byte total.
			var prev int64
			lastErr = m.client.DownloadFile(ctx, url, destPath, func(written, total int64) {
				atomic.AddInt64(&m.receivedBytes, written-prev)
				prev = written
			})
			if lastErr == nil {
				return nil
			}
			atomic.AddInt64(&m.receivedBytes, -prev) // partial file was removed
			m.progress(ProgressEvent{Message: fmt.Sprintf("Mirror failed for %s: %v", filepath.Base(destPath), lastErr), Level: LevelVerbose})
		}
	}

	return lastErr
}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
