// Package resolve classifies catalog links into typed resource references.
//
// A link is recognized by the path segment markers the catalog uses:
// /track/, /release/, /playlist/, /artist/, /selection/, /podcast/ and
// /abook/. The identifier is the segment immediately following the
// marker:
//
//	ref, err := resolve.Link("https://zvuk.com/track/12776890")
//	// ref.Kind == resolve.KindTrack, ref.ID == "12776890"
//
// Links that match no marker, or carry an empty identifier, return
// ErrUnrecognizedLink.
package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedLink is returned when a link matches no known resource marker.
var ErrUnrecognizedLink = errors.New("unrecognized link")

// Kind identifies the type of resource a link points to.
type Kind int

const (
	KindTrack Kind = iota
	KindRelease
	KindPlaylist
	KindArtist
	KindSelection
	KindPodcast
	KindAudiobook
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindRelease:
		return "release"
	case KindPlaylist:
		return "playlist"
	case KindArtist:
		return "artist"
	case KindSelection:
		return "selection"
	case KindPodcast:
		return "podcast"
	case KindAudiobook:
		return "audiobook"
	default:
		return "unknown"
	}
}

// ResourceRef is a typed reference to one catalog resource.
type ResourceRef struct {
	Kind Kind
	ID   string
}

// markers maps path segments to kinds, scanned in declaration order.
var markers = []struct {
	segment string
	kind    Kind
}{
	{"/track/", KindTrack},
	{"/release/", KindRelease},
	{"/playlist/", KindPlaylist},
	{"/artist/", KindArtist},
	{"/selection/", KindSelection},
	{"/podcast/", KindPodcast},
	{"/abook/", KindAudiobook},
}

// Link classifies a catalog link into a ResourceRef.
//
// The identifier is the substring between the marker and the next path
// or query delimiter (/, ?, #) or the end of the link. An empty
// identifier is treated as unrecognized.
func Link(link string) (ResourceRef, error) {
	for _, m := range markers {
		idx := strings.Index(link, m.segment)
		if idx == -1 {
			continue
		}

		id := link[idx+len(m.segment):]
		if cut := strings.IndexAny(id, "/?#"); cut != -1 {
			id = id[:cut]
		}
		if id == "" {
			continue
		}

		return ResourceRef{Kind: m.kind, ID: id}, nil
	}

	return ResourceRef{}, fmt.Errorf("%w: %s", ErrUnrecognizedLink, link)
}
