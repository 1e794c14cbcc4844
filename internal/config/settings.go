package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	DownloadDir            string  `json:"download_dir"`
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries     int     `json:"download_max_retries"`
	DownloadRetryCooldown  float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent  float64 `json:"download_retry_exponent"`
	TimeoutSeconds         int     `json:"timeout_seconds"`

	// File naming
	OutputTemplate string `json:"output_template"`

	// Archive settings. An empty path disables the ledger.
	ArchivePath string `json:"archive_path"`

	// Tagging settings. An empty FfmpegPath disables metadata tagging.
	FfmpegPath string `json:"ffmpeg_path"`

	// Endpoints overrides the resolver endpoint list. Leave empty for
	// the built-in fallback chain.
	Endpoints []string `json:"endpoints,omitempty"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DownloadDir:            filepath.Join(homeDir, "Downloads", "TikTok"),
		MaxConcurrentDownloads: 1,
		DownloadMaxRetries:     7,
		DownloadRetryCooldown:  0.2,
		DownloadRetryExponent:  4.0,
		TimeoutSeconds:         30,

		OutputTemplate: "%author_name% - %media_id%",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
