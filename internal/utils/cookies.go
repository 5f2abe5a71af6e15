// Helper for issuing / clearing the session cookie plus the response
// headers that should accompany token-bearing responses.

package utils

import (
	"fmt"
	"net/http"
	"time"
)

// SessionCookieName is the cookie the frontend sends back on every call.
const SessionCookieName = "token"

// SetSessionCookie writes the session cookie and the security-header block.
// secure=false is only for local plain-HTTP development.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	if token == "" {
		return
	}

	maxAge := int(ttl.Seconds())
	expires := time.Now().Add(ttl).UTC().Format(http.TimeFormat)

	line := fmt.Sprintf("%s=%s; Path=/; Max-Age=%d; Expires=%s; SameSite=Strict; HttpOnly%s",
		SessionCookieName, token, maxAge, expires, secureAttr(secure))
	w.Header().Add("Set-Cookie", line)

	addSecurityHeaders(w)
}

// ClearSessionCookie deletes the session cookie (logout / account deletion).
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	expired := time.Now().Add(-1 * time.Hour).UTC().Format(http.TimeFormat)

	line := fmt.Sprintf("%s=; Path=/; Expires=%s; Max-Age=0; SameSite=Strict; HttpOnly%s",
		SessionCookieName, expired, secureAttr(secure))
	w.Header().Add("Set-Cookie", line)

	addSecurityHeaders(w)
}

func secureAttr(on bool) string {
	if on {
		return "; Secure"
	}
	return ""
}

func addSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
}
