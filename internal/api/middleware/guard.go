package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinewatch/movienight/internal/api/metrics"
	"github.com/cinewatch/movienight/internal/core/ports"
	"github.com/cinewatch/movienight/internal/session"
)

// RouteConfig classifies page paths. The lists are deployment
// configuration, not compiled-in facts; the guard only prefix-matches
// whatever it is given. A path matching neither list is allowed through:
// anything not explicitly protected is public by omission.
type RouteConfig struct {
	// Public paths are reachable without a session (login and landing pages).
	Public []string
	// Protected paths require a valid session.
	Protected []string
	// ExcludedPrefixes pass through untouched (API routes, probes, metrics).
	ExcludedPrefixes []string
	// PublicLanding is where unauthenticated visitors to protected paths go.
	PublicLanding string
	// AuthLanding is where authenticated visitors to public paths go.
	AuthLanding string
}

// Guard intercepts page navigation before any handler runs and decides
// redirect-vs-allow from (path, cookie) alone. It performs no I/O: token
// verification is a local signature check, so the guard never stalls the
// pipeline and never surfaces an error to the browser.
func Guard(routes RouteConfig, verifier ports.TokenVerifier, cookies *session.CookieManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if excluded(path, routes.ExcludedPrefixes) {
				return next(c)
			}

			isPublic := matchesAny(path, routes.Public)
			isProtected := matchesAny(path, routes.Protected)
			tokenString, hasToken := cookies.Read(c)

			// An already-authenticated user has no business on the login
			// screen; send them to the app.
			if isPublic && hasToken {
				if _, ok := verifier.Verify(tokenString); ok {
					metrics.GuardRedirectsTotal.WithLabelValues("already_authenticated").Inc()
					return c.Redirect(http.StatusFound, routes.AuthLanding)
				}
			}

			if isProtected && !hasToken {
				metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusFound, routes.PublicLanding)
			}

			if isProtected && hasToken {
				if _, ok := verifier.Verify(tokenString); !ok {
					// Stale or forged cookies are purged on the way out.
					cookies.Clear(c)
					metrics.GuardRedirectsTotal.WithLabelValues("invalid_token").Inc()
					return c.Redirect(http.StatusFound, routes.PublicLanding)
				}
			}

			return next(c)
		}
	}
}

// matchesAny reports whether path equals one of the prefixes or sits
// beneath it as a sub-path. The bare root "/" only ever matches exactly.
func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p {
			return true
		}
		if p != "/" && strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

// excluded skips API routes, probes, and static assets (any path with a
// file extension).
func excluded(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return strings.Contains(path, ".")
}
