// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing and directory creation
//   - Filename sanitization for cross-platform compatibility
//   - Cover art resizing and format conversion
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove characters that cannot appear in path
// segments. The replacement set covers the names the catalog produces
// (titles with colons, slashes, percent signs and similar):
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// Sanitization is idempotent, so already-sanitized names pass through
// unchanged.
//
// # File Operations
//
//	err := ioutils.WriteFile(ctx, "/path/to/playlist.m3u", content)
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Image Processing
//
// The ImageService handles cover art manipulation:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(ctx, coverData, 1000, 1000)
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
