// Package http provides the HTTP client used for all Zvuk API and CDN
// traffic.
//
// # Session
//
// Every request carries the session's x-auth-token header, browser
// user agent, and cookie set, so the API sees the same client the
// user's browser was.
//
// # Retries
//
// Transient failures are retried with a fixed delay between attempts.
// When the budget runs out the caller receives a *FetchError wrapping
// the last attempt's error:
//
//	var fetchErr *http.FetchError
//	if errors.As(err, &fetchErr) {
//	    log.Warn("gave up", zap.String("url", fetchErr.URL), zap.Int("attempts", fetchErr.Attempts))
//	}
//
// # Response cache
//
// Fetch and FetchJSON consult a durable response cache before going to
// the network and store successful responses afterward. Catalog
// metadata never changes for our purposes, so interrupted runs resume
// without refetching anything. Stream URLs, profile state, and GraphQL
// queries bypass the cache (FetchUncached, FetchJSONUncached, Post).
//
// # Downloads
//
// Download streams audio content straight to disk without buffering
// whole files in memory. It makes a single attempt; the download
// manager owns the retry policy for content.
package http
