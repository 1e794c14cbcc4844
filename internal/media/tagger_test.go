package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/tiktok-downloader/internal/model"
)

func TestMetadataArgs(t *testing.T) {
	post := &model.Post{
		Description:  "a caption",
		CreatedAt:    1700000000, // 2023-11-14 UTC
		AuthorName:   "someuser",
		Region:       "US",
		CanonicalURL: "https://www.tiktok.com/@someuser/video/123",
	}

	args := metadataArgs(post)

	want := map[string]string{
		"comment":     post.CanonicalURL,
		"purl":        post.CanonicalURL,
		"description": "a caption",
		"synopsis":    "a caption",
		"artist":      "someuser",
		"country":     "US",
		"date":        "20231114",
	}

	got := parseMetadataArgs(t, args)
	if len(got) != len(want) {
		t.Fatalf("got %d metadata pairs, want %d: %v", len(got), len(want), got)
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("metadata %q = %q, want %q", key, got[key], value)
		}
	}
}

func TestMetadataArgsOmitsDateWhenUnknown(t *testing.T) {
	got := parseMetadataArgs(t, metadataArgs(&model.Post{}))

	if _, ok := got["date"]; ok {
		t.Error("date pair present for zero creation time")
	}
	// Empty fields are still emitted so existing tags get overwritten.
	if value, ok := got["comment"]; !ok || value != "" {
		t.Errorf("comment pair = %q, %v; want empty string present", value, ok)
	}
}

func parseMetadataArgs(t *testing.T, args []string) map[string]string {
	t.Helper()

	pairs := make(map[string]string)
	for i := 0; i < len(args); i += 2 {
		if args[i] != "-metadata" {
			t.Fatalf("args[%d] = %q, want -metadata", i, args[i])
		}
		if i+1 >= len(args) {
			t.Fatalf("dangling -metadata flag at end of %v", args)
		}
		key, value, found := strings.Cut(args[i+1], "=")
		if !found {
			t.Fatalf("metadata arg %q has no key=value form", args[i+1])
		}
		pairs[key] = value
	}
	return pairs
}

func TestTagVideoDisabledIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("not a real video"), 0644); err != nil {
		t.Fatal(err)
	}

	tagger := NewTagger("")
	if tagger.Enabled() {
		t.Error("Enabled() = true for empty ffmpeg path")
	}
	if err := tagger.TagVideo(context.Background(), path, &model.Post{}); err != nil {
		t.Fatalf("TagVideo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "not a real video" {
		t.Error("disabled tagger modified the file")
	}
}

func TestTagVideoFailureLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	// "false" exits non-zero without reading its arguments.
	tagger := NewTagger("false")
	if err := tagger.TagVideo(context.Background(), path, &model.Post{}); err == nil {
		t.Fatal("TagVideo() error = nil, want failure")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original" {
		t.Error("failed tagging modified the original file")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries after failure, want only the original", len(entries))
	}
}
