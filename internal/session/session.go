// Package session generates opaque session tokens and moves them between
// requests, responses and the session_id cookie.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const CookieName = "session_id"

// GenerateToken returns a 64-character hex token from 32 random bytes.
// Uniqueness is probabilistic; the users.session_id unique index is the
// backstop.
func GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// TokenFromRequest returns the session token carried by the request, or ""
// when the cookie is absent or malformed. A missing session is never an
// error at this layer.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Attach sets the session cookie on a response that establishes a session.
// maxAge is in seconds.
func Attach(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the session cookie (Max-Age=0 on the wire).
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
