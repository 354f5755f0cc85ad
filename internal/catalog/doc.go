// Package catalog talks to the Zvuk catalog API and converts its
// responses into model types.
//
// # Endpoints
//
// Catalog metadata lives under /api/tiny and is addressed by numeric
// IDs:
//
//	tracks    /api/tiny/tracks?ids=1,2,3
//	releases  /api/tiny/releases?ids=1
//	playlists /api/tiny/playlists?ids=1&include=track,release
//	selection /api/tiny/selection?id=1&include=track
//	podcasts  /api/tiny/podcasts?ids=1
//	episodes  /api/tiny/podcast_episodes?id=1
//	artists   /api/tiny/artists/releases?artist_id=1
//
// Audiobooks are served by the GraphQL endpoint (/api/v1/graphql)
// instead; see GetAudiobook and GetChapterStreamURL.
//
// # Caching
//
// Metadata fetches ride the durable response cache, so repeated runs
// over the same links replay from disk. Stream URLs (signed,
// short-lived), subscription checks, and GraphQL queries always go to
// the network.
//
// # DTOs
//
// The dto subpackage mirrors the wire format, including its quirks:
// map envelopes keyed by decimal IDs, dates that arrive as either
// numbers or strings, and image URLs with a {size} placeholder.
// Conversion to model types happens at the package boundary; nothing
// above catalog sees a DTO.
package catalog
