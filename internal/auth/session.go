package auth

import (
	"net/http"
	"strings"
)

// CookieName is the cookie carrying the session token.
const CookieName = "auth-token"

const bearerPrefix = "Bearer "

// ExtractToken pulls the session token from a request: an explicit
// Authorization bearer header wins, else the auth-token cookie parsed from the
// raw Cookie header. An empty result means "unauthenticated", not an error —
// the caller decides whether that matters.
func ExtractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		if token := strings.TrimSpace(h[len(bearerPrefix):]); token != "" {
			return token
		}
	}

	for _, segment := range strings.Split(r.Header.Get("Cookie"), ";") {
		segment = strings.TrimSpace(segment)
		if strings.HasPrefix(segment, CookieName+"=") {
			return segment[len(CookieName)+1:]
		}
	}

	return ""
}
