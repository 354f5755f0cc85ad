// Package auth loads the Zvuk session from an exported cookies.txt
// file and attaches it to outgoing requests.
//
// Zvuk has no public token endpoint: users export their browser
// cookies in Netscape format (the "Get cookies.txt" family of
// extensions) and the access_token cookie becomes the x-auth-token
// header. The cookies themselves ride along on every request so the
// CDN sees the same session the browser had.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/mengzhuo/cookiestxt"
)

// ErrTokenNotFound means cookies.txt had no usable access_token cookie.
// This is a credential problem the user must fix; no amount of retrying
// helps.
var ErrTokenNotFound = errors.New("access token not found in cookies")

// ErrNoSubscription means the account behind the token has no active
// subscription, so stream URLs will not be served.
var ErrNoSubscription = errors.New("account has no active subscription")

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:141.0) Gecko/20100101 Firefox/141.0"

// tokenLength is the size of a Zvuk access token. Anything else in the
// cookie is stale or truncated.
const tokenLength = 32

// Session carries the credentials for one run of the tool.
type Session struct {
	// Token is the value of the access_token cookie, sent as the
	// x-auth-token header.
	Token string

	// RunID identifies this invocation in log output.
	RunID string

	// Cookies is the full browser cookie set from cookies.txt.
	Cookies []*http.Cookie
}

// LoadSession reads a Netscape-format cookies.txt file and extracts the
// access token.
//
// Example:
//
//	session, err := auth.LoadSession("cookies.txt")
//	if errors.Is(err, auth.ErrTokenNotFound) {
//	    // cookies are stale, ask the user to re-export them
//	}
func LoadSession(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cookies file: %w", err)
	}
	defer f.Close()

	cookies, err := cookiestxt.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse cookies file: %w", err)
	}

	var token string
	for _, c := range cookies {
		if c.Name == "access_token" {
			token = c.Value
			break
		}
	}
	if len(token) != tokenLength {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, path)
	}

	return &Session{
		Token:   token,
		RunID:   uuid.NewString(),
		Cookies: cookies,
	}, nil
}

// Apply sets the session headers and cookies on an outgoing request.
func (s *Session) Apply(req *http.Request) {
	req.Header.Set("x-auth-token", s.Token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", "https://zvuk.com")
	req.Header.Set("Referer", "https://zvuk.com/")
	for _, c := range s.Cookies {
		req.AddCookie(c)
	}
}
