// Package audio provides audio file manipulation services including
// tag writing and playlist generation.
//
// # Tagging
//
// Use ForQuality to pick the tagger matching the downloaded container,
// then Apply to write metadata and cover art:
//
//	tagger := audio.ForQuality(model.QualityFLAC)
//	err := tagger.Apply(path, audio.TrackTags{
//	    Title:    "Song",
//	    Artist:   "Artist",
//	    Album:    "Album",
//	    Year:     "2023",
//	    Position: 1,
//	}, artworkBytes)
//
// FLAC files get vorbis comments (TITLE, ARTIST, ALBUM, DATE,
// TRACKNUMBER) and a front cover picture block. MP3 files get the
// equivalent ID3v2 frames.
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(title, entries)
//	os.WriteFile("playlist"+creator.Extension(), []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
