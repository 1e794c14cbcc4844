package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	defaults := DefaultSettings()
	if settings.OutputTemplate != defaults.OutputTemplate {
		t.Errorf("OutputTemplate = %q, want default %q", settings.OutputTemplate, defaults.OutputTemplate)
	}
	if settings.DownloadMaxRetries != defaults.DownloadMaxRetries {
		t.Errorf("DownloadMaxRetries = %d, want default %d", settings.DownloadMaxRetries, defaults.DownloadMaxRetries)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.OutputTemplate = "%author_name% - %description%"
	settings.ArchivePath = "/tmp/archive.txt"
	settings.MaxConcurrentDownloads = 4

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.OutputTemplate != settings.OutputTemplate {
		t.Errorf("OutputTemplate = %q, want %q", loaded.OutputTemplate, settings.OutputTemplate)
	}
	if loaded.ArchivePath != settings.ArchivePath {
		t.Errorf("ArchivePath = %q, want %q", loaded.ArchivePath, settings.ArchivePath)
	}
	if loaded.MaxConcurrentDownloads != 4 {
		t.Errorf("MaxConcurrentDownloads = %d, want 4", loaded.MaxConcurrentDownloads)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_template": "%media_id%"}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.OutputTemplate != "%media_id%" {
		t.Errorf("OutputTemplate = %q, want overridden value", settings.OutputTemplate)
	}
	if settings.DownloadMaxRetries != DefaultSettings().DownloadMaxRetries {
		t.Error("unset fields did not keep their defaults")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil for malformed JSON")
	}
}
