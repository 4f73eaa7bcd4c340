// Package session manages the auth cookie that transports the session
// token between browser and server.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "auth_token"

// CookieManager writes, reads, and clears the auth cookie with its
// security attributes. Secure is explicit deployment configuration; it is
// never inferred from the request.
type CookieManager struct {
	Secure bool
	TTL    time.Duration
}

func NewCookieManager(secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{Secure: secure, TTL: ttl}
}

// Attach sets the auth cookie on the response. HttpOnly keeps it out of
// reach of page scripts; MaxAge matches the token lifetime.
func (m *CookieManager) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear overwrites the cookie with an empty value and an expiry in the
// past so the browser discards it.
func (m *CookieManager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the token from the request cookie, or ok=false when the
// cookie is absent or empty.
func (m *CookieManager) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
