package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/handiism/zvuk-downloader/internal/audio"
	"github.com/handiism/zvuk-downloader/internal/model"
)

// Config holds all configuration options.
type Config struct {
	// Download settings
	OutputPath        string  `toml:"output_path"`
	Threads           int     `toml:"threads"`
	Format            int     `toml:"format"`
	RetryAttempts     int     `toml:"retry_attempts"`
	RetryDelaySeconds float64 `toml:"retry_delay_seconds"`

	// Session and cache
	CookiesPath string `toml:"cookies_path"`
	CachePath   string `toml:"cache_path"`

	// File naming
	AlbumFolderTemplate string `toml:"album_folder_template"`
	TrackFileTemplate   string `toml:"track_file_template"`

	// Cover art settings
	SaveCoverInFolder bool `toml:"save_cover_in_folder"`
	EmbedCover        bool `toml:"embed_cover"`
	CoverMaxSize      int  `toml:"cover_max_size"`

	// Playlist settings
	CreatePlaylist bool   `toml:"create_playlist"`
	PlaylistFormat string `toml:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `toml:"m3u_extended"`

	// Logging
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutputPath:        "zvuk_downloads",
		Threads:           5,
		Format:            int(model.QualityFLAC),
		RetryAttempts:     3,
		RetryDelaySeconds: 2,

		CookiesPath: "cookies.txt",
		CachePath:   "zvuk-cache.db",

		AlbumFolderTemplate: model.DefaultAlbumFolderTemplate,
		TrackFileTemplate:   model.DefaultTrackFileTemplate,

		SaveCoverInFolder: false,
		EmbedCover:        true,
		CoverMaxSize:      1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		LogLevel: "info",
	}
}

// Load reads config from a TOML file. A missing file is not an error:
// defaults are returned so the tool works without any configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to a TOML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays ZVUK_* environment variables onto the config.
// Variables that are unset or fail to parse leave the field unchanged.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ZVUK_OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("ZVUK_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Threads = n
		}
	}
	if v := os.Getenv("ZVUK_FORMAT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Format = n
		}
	}
	if v := os.Getenv("ZVUK_COOKIES_PATH"); v != "" {
		c.CookiesPath = v
	}
	if v := os.Getenv("ZVUK_CACHE_PATH"); v != "" {
		c.CachePath = v
	}
	if v := os.Getenv("ZVUK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ZVUK_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	if _, err := model.QualityFromFormat(c.Format); err != nil {
		return err
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be at least 1, got %d", c.RetryAttempts)
	}
	if c.RetryDelaySeconds < 0 {
		return fmt.Errorf("retry_delay_seconds must not be negative, got %v", c.RetryDelaySeconds)
	}
	if c.CoverMaxSize < 0 {
		return fmt.Errorf("cover_max_size must not be negative, got %d", c.CoverMaxSize)
	}
	switch c.PlaylistFormat {
	case "m3u", "pls", "wpl", "zpl":
	default:
		return fmt.Errorf("playlist_format must be one of m3u, pls, wpl, zpl, got %q", c.PlaylistFormat)
	}
	return nil
}

// Quality converts the numeric format setting to a Quality.
func (c *Config) Quality() (model.Quality, error) {
	return model.QualityFromFormat(c.Format)
}

// Layout builds the directory layout rooted at the output path.
func (c *Config) Layout() *model.Layout {
	return model.NewLayout(c.OutputPath, c.AlbumFolderTemplate, c.TrackFileTemplate)
}

// RetryDelay returns the pause between download attempts.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds * float64(time.Second))
}

// PlaylistFileFormat converts the playlist format name to the audio
// package's format constant. Unknown names fall back to M3U.
func (c *Config) PlaylistFileFormat() audio.PlaylistFormat {
	switch c.PlaylistFormat {
	case "m3u":
		return audio.FormatM3U
	case "pls":
		return audio.FormatPLS
	case "wpl":
		return audio.FormatWPL
	case "zpl":
		return audio.FormatZPL
	default:
		return audio.FormatM3U
	}
}
