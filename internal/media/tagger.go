package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/tiktok-downloader/internal/model"
)

// Tagger embeds post metadata into downloaded video files.
//
// Tagging runs ffmpeg as a subprocess with stream copy, so the media
// itself is never re-encoded: ffmpeg writes the tagged copy to a
// temporary file next to the original, which then replaces the
// original atomically via rename.
//
// The embedded fields are:
//   - comment, purl: the canonical post URL
//   - description, synopsis: the post caption
//   - artist: the author's handle
//   - country: the two-letter region code
//   - date: the post's creation date (UTC, yyyymmdd)
//
// Example:
//
//	tagger := media.NewTagger(ffmpegPath)
//	if err := tagger.TagVideo(ctx, "video.mp4", post); err != nil {
//	    log.Printf("Failed to tag %s: %v", "video.mp4", err)
//	}
type Tagger struct {
	ffmpegPath string
}

// NewTagger creates a Tagger using the ffmpeg binary at ffmpegPath.
//
// An empty path disables tagging: TagVideo becomes a no-op. This is
// the degraded mode used when no ffmpeg binary could be located.
func NewTagger(ffmpegPath string) *Tagger {
	return &Tagger{ffmpegPath: ffmpegPath}
}

// Enabled reports whether a ffmpeg binary is configured.
func (t *Tagger) Enabled() bool {
	return t.ffmpegPath != ""
}

// TagVideo writes the post's metadata into the video file at path.
//
// The original file is only replaced after ffmpeg exits successfully;
// on any failure the temporary output is removed and the original is
// left untouched, so a failed tagging pass never costs the download.
func (t *Tagger) TagVideo(ctx context.Context, path string, post *model.Post) error {
	return t.retag(ctx, path, post, []string{"-movflags", "use_metadata_tags", "-map_metadata", "0"})
}

// TagImage writes the post's metadata into the image file at path, with
// the same replace-on-success semantics as TagVideo.
func (t *Tagger) TagImage(ctx context.Context, path string, post *model.Post) error {
	return t.retag(ctx, path, post, []string{"-map_metadata", "0"})
}

func (t *Tagger) retag(ctx context.Context, path string, post *model.Post, extraArgs []string) error {
	if !t.Enabled() {
		return nil
	}

	tmpPath := filepath.Join(filepath.Dir(path), uuid.NewString()+filepath.Ext(path))

	args := []string{"-i", path}
	args = append(args, metadataArgs(post)...)
	args = append(args, extraArgs...)
	args = append(args, "-c", "copy", "-y", tmpPath)

	cmd := exec.CommandContext(ctx, t.ffmpegPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("running ffmpeg: %w: %s", err, out)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing original: %w", err)
	}
	return nil
}

// metadataArgs builds the -metadata key=value pairs for a post. Empty
// source fields still produce pairs so stale tags from the source file
// get cleared; only the date is omitted when unknown.
func metadataArgs(post *model.Post) []string {
	pairs := [][2]string{
		{"comment", post.CanonicalURL},
		{"purl", post.CanonicalURL},
		{"description", post.Description},
		{"synopsis", post.Description},
		{"artist", post.AuthorName},
		{"country", post.Region},
	}
	if post.CreatedAt != 0 {
		date := time.Unix(post.CreatedAt, 0).UTC().Format("20060102")
		pairs = append(pairs, [2]string{"date", date})
	}

	args := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		args = append(args, "-metadata", p[0]+"="+p[1])
	}
	return args
}
