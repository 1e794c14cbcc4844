// Package config provides configuration management for tiktok-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads to ~/Downloads/TikTok
//	// "%author_name% - %media_id%" output template
//	// 7 retries with exponential backoff
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputTemplate = "%author_name% - %description%"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Download directory and output template
//   - Concurrent download limits
//   - Retry behavior and request timeout
//   - Archive ledger path
//   - ffmpeg binary used for metadata tagging
package config
