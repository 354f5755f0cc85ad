package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/handiism/zvuk-downloader/internal/config"
)

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.toml")
}

func TestBuildConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("ZVUK_THREADS", "9")
	t.Setenv("ZVUK_OUTPUT_PATH", "from-env")

	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--threads", "3"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd, missingConfig(t), 3, "", 0, false)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Threads != 3 {
		t.Errorf("Threads = %d, want flag value 3", cfg.Threads)
	}
	if cfg.OutputPath != "from-env" {
		t.Errorf("OutputPath = %q, want env value to stand", cfg.OutputPath)
	}
}

func TestBuildConfigVerboseSetsDebug(t *testing.T) {
	cmd := newRootCommand()

	cfg, err := buildConfig(cmd, missingConfig(t), 0, "", 0, true)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestBuildConfigRejectsUnknownFormat(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--format", "7"}); err != nil {
		t.Fatal(err)
	}

	if _, err := buildConfig(cmd, missingConfig(t), 0, "", 7, false); err == nil {
		t.Error("expected an error for format 7")
	}
}

func TestBuildConfigRejectsZeroThreads(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--threads", "0"}); err != nil {
		t.Fatal(err)
	}

	if _, err := buildConfig(cmd, missingConfig(t), 0, "", 0, false); err == nil {
		t.Error("expected an error for zero threads")
	}
}

func TestRunCheckAuthFailureExitsClean(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.CookiesPath = filepath.Join(dir, "cookies.txt")
	cfg.CachePath = filepath.Join(dir, "cache.db")

	// --check-auth prints its verdict; a broken session is part of the
	// verdict, not a process failure.
	if err := run(context.Background(), cfg, true, nil); err != nil {
		t.Errorf("check-auth run returned %v, want nil", err)
	}

	// A download run with the same broken session is fatal.
	if err := run(context.Background(), cfg, false, []string{"https://zvuk.com/track/1"}); err == nil {
		t.Error("expected an error for a download run without cookies")
	}
}
