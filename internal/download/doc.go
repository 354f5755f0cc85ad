// Package download provides the download orchestration logic for
// fetching media from the Zvuk catalog.
//
// # Manager
//
// The Manager coordinates the entire download process:
//
//  1. Resolve input links to typed resource references
//  2. Fetch resource metadata from the catalog
//  3. Download cover art (releases and standalone tracks)
//  4. Download audio streams concurrently
//  5. Tag the finished files (Vorbis comments or ID3v2 by quality)
//  6. Generate playlist files (optional)
//
// # Basic Usage
//
//	manager, err := download.NewManager(cfg, client, catalogClient, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := manager.Run(ctx, links)
//	if err != nil {
//	    log.Fatal(err) // credential problem, nothing was downloaded
//	}
//	for _, outcome := range summary.Outcomes {
//	    fmt.Println(outcome.Link, outcome.Files, outcome.Err)
//	}
//
// # Concurrency
//
// Both levels run through the bounded runner with the same ceiling
// (config threads): links at the top level, and tracks, episodes or
// chapters inside each link. One item's failure never stops its
// siblings; per-item errors are collected into the Summary.
//
// # Failure Handling
//
// Only the subscription check aborts a run. Everything after it is
// scoped to a single link or a single file: unrecognized links,
// missing metadata and failed streams produce log lines and summary
// rows. Tag and cover failures are logged and keep the audio.
package download
