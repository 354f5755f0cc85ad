// Package ioutils provides file system utilities for the zvuk-downloader.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// reservedChars matches characters that catalog names may contain but
// path segments must not.
var reservedChars = regexp.MustCompile(`[<>@%!+:"/\\|?*]`)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/playlist.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName replaces characters that are invalid in file/folder
// names and normalizes whitespace.
//
// The following transformations are applied, in order:
//   - Unicode normalization to NFC, so visually identical names from
//     different catalog sources produce identical paths
//   - Reserved characters (< > @ % ! + : " / \ | ? *) → underscore
//   - Whitespace runs (spaces, tabs, newlines) → single space
//   - Leading and trailing whitespace → removed
//
// The function is idempotent: applying it to its own output returns
// the output unchanged. The result may be empty when the input consists
// entirely of whitespace.
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")       // Returns "Song_ Part 1_2"
//	SanitizeFileName("Name   with  spaces")  // Returns "Name with spaces"
//	SanitizeFileName("  trimmed  ")          // Returns "trimmed"
func SanitizeFileName(name string) string {
	name = norm.NFC.String(name)
	name = reservedChars.ReplaceAllString(name, "_")
	return strings.Join(strings.Fields(name), " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/music/_releases/Artist/2023 - Album")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
