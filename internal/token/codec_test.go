package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cinewatch/movienight/internal/core/domain"
)

func TestNewCodec_EmptySecret(t *testing.T) {
	_, err := NewCodec("", time.Hour)
	require.Error(t, err)
}

func TestNewCodec_DefaultTTL(t *testing.T) {
	c, err := NewCodec("secret", 0)
	require.NoError(t, err)
	require.Equal(t, DefaultTTL, c.TTL())
}

func TestCodec_RoundTrip(t *testing.T) {
	c, err := NewCodec("secret", 24*time.Hour)
	require.NoError(t, err)

	want := domain.Session{UserID: "u-123", Email: "alice@example.com"}
	tok, err := c.Issue(want)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, ok := c.Verify(tok)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestCodec_Verify_Garbage(t *testing.T) {
	c, err := NewCodec("secret", time.Hour)
	require.NoError(t, err)

	for _, in := range []string{"", "not-a-token", "a.b.c", "ey.ey.ey"} {
		_, ok := c.Verify(in)
		require.False(t, ok, "input %q must not verify", in)
	}
}

func TestCodec_Verify_TamperedToken(t *testing.T) {
	c, err := NewCodec("secret", time.Hour)
	require.NoError(t, err)

	tok, err := c.Issue(domain.Session{UserID: "u-1", Email: "a@b.c"})
	require.NoError(t, err)

	// Flip one byte of the signature.
	raw := []byte(tok)
	raw[len(raw)-1] ^= 0x01
	_, ok := c.Verify(string(raw))
	require.False(t, ok)
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	signer, err := NewCodec("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewCodec("secret-b", time.Hour)
	require.NoError(t, err)

	tok, err := signer.Issue(domain.Session{UserID: "u-1", Email: "a@b.c"})
	require.NoError(t, err)

	_, ok := verifier.Verify(tok)
	require.False(t, ok)
}

func TestCodec_Verify_Expired(t *testing.T) {
	c, err := NewCodec("secret", 24*time.Hour)
	require.NoError(t, err)

	issued := time.Now()
	c.now = func() time.Time { return issued }

	tok, err := c.Issue(domain.Session{UserID: "u-1", Email: "a@b.c"})
	require.NoError(t, err)

	// Still valid just before the 24h mark.
	c.now = func() time.Time { return issued.Add(24*time.Hour - time.Minute) }
	_, ok := c.Verify(tok)
	require.True(t, ok)

	// Invalid once the lifetime has elapsed, signature notwithstanding.
	c.now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }
	_, ok = c.Verify(tok)
	require.False(t, ok)
}

func TestCodec_Verify_MissingSubject(t *testing.T) {
	c, err := NewCodec("secret", time.Hour)
	require.NoError(t, err)

	tok, err := c.Issue(domain.Session{Email: "a@b.c"})
	require.NoError(t, err)

	_, ok := c.Verify(tok)
	require.False(t, ok)
}
