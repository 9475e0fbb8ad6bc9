package service

import (
	"strings"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "alice@example.com")
	require.NoError(t, err)

	// bearer tokens are the standard three-segment JWT shape
	assert.Len(t, strings.Split(token, "."), 3)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenTamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "alice@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	forged := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenMissingSignatureSegment(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "alice@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	_, err = svc.Verify(parts[0] + "." + parts[1])
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(42, "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(42, "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", tok)
	}
}
