package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, []string{"/", "/login", "/register"}, cfg.Routes.Public)
	require.Equal(t, []string{"/home", "/browse", "/favorites"}, cfg.Routes.Protected)
	require.Equal(t, "/", cfg.Routes.PublicLanding)
	require.Equal(t, "/home", cfg.Routes.AuthLanding)
	require.Equal(t, 5, cfg.Login.MaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.Login.Window)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("ROUTES_PROTECTED", "/home|/browse|/favorites|/watchlist")
	t.Setenv("LOGIN_ATTEMPT_LIMIT", "0")

	cfg := Load()

	require.False(t, cfg.CookieSecure)
	require.Contains(t, cfg.Routes.Protected, "/watchlist")
	require.Zero(t, cfg.Login.MaxAttempts)
}
