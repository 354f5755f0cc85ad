// Package config provides configuration management for zvuk-dl.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - ZVUK_* environment variable overrides
//   - Conversion helpers for quality and directory layout
//
// # Default Settings
//
// Use Default() to get sensible defaults:
//
//	cfg := config.Default()
//	// Downloads to ./zvuk_downloads
//	// 5 concurrent downloads, FLAC quality
//	// Responses cached in zvuk-cache.db
//
// # Loading from File
//
//	cfg, err := config.Load("zvuk-dl.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	cfg.ApplyEnv()
//	if err := cfg.Validate(); err != nil {
//	    // Reject bad settings before any network work
//	}
//
// # Configuration Options
//
// Config includes options for:
//   - Output path and file naming templates
//   - Concurrent download limit and quality format
//   - Retry behavior
//   - Cover art handling
//   - Playlist generation
//   - Log level and optional log file
package config
