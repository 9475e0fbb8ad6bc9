package service

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(memory.NewUserRepository(), tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEmpty(t, token)
	// the stored hash never equals the plaintext
	assert.NotEqual(t, "secret1", u.PasswordHash)

	u2, token2, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)
	assert.NotEmpty(t, token2)

	// the issued token verifies back to the same user
	userID, err := svc.tokens.Verify(token2)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice@example.com", "different")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	// wrong password and unknown email yield the same error
	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestProfileVanishedUser(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Profile(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
