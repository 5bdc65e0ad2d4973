package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudvault-api/internal/domain/session"
)

func newAuthService() (*memUserRepo, *memSessionRepo, *AuthService) {
	ur := newMemUserRepo()
	sr := newMemSessionRepo()
	as := NewAuthService(ur, sr, newTestCounter()).(*AuthService)
	return ur, sr, as
}

func TestAuthService_SignupThenVerify(t *testing.T) {
	_, _, as := newAuthService()
	ctx := context.Background()

	created, tok, err := as.Signup(ctx, "  User@Example.COM ", "VeryStrongPassw0rd!", " Test User ")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, tok, 64)

	assert.Equal(t, "user@example.com", created.Email)
	assert.Equal(t, "Test User", created.Name)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "VeryStrongPassw0rd!", *created.PasswordHash)

	got, err := as.Verify(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestAuthService_Login(t *testing.T) {
	_, _, as := newAuthService()
	ctx := context.Background()

	created, _, err := as.Signup(ctx, "user@example.com", "VeryStrongPassw0rd!", "Test User")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		u, tok, err := as.Login(ctx, "user@example.com", "VeryStrongPassw0rd!")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
		assert.Len(t, tok, 64)
	})

	t.Run("case-insensitive email", func(t *testing.T) {
		u, _, err := as.Login(ctx, "USER@example.com", "VeryStrongPassw0rd!")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := as.Login(ctx, "user@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	// same error for a missing account as for a wrong password
	t.Run("unknown email", func(t *testing.T) {
		_, _, err := as.Login(ctx, "nobody@example.com", "VeryStrongPassw0rd!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_EachLoginIssuesFreshToken(t *testing.T) {
	_, sr, as := newAuthService()
	ctx := context.Background()

	_, tok1, err := as.Signup(ctx, "user@example.com", "VeryStrongPassw0rd!", "Test User")
	require.NoError(t, err)
	_, tok2, err := as.Login(ctx, "user@example.com", "VeryStrongPassw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, tok1, tok2)
	assert.Len(t, sr.sessions, 2)
}

func TestAuthService_Verify(t *testing.T) {
	_, sr, as := newAuthService()
	ctx := context.Background()

	created, tok, err := as.Signup(ctx, "user@example.com", "VeryStrongPassw0rd!", "Test User")
	require.NoError(t, err)

	t.Run("unknown token", func(t *testing.T) {
		_, err := as.Verify(ctx, "deadbeef")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("expired token", func(t *testing.T) {
		require.NoError(t, sr.CreateSession(ctx, session.Session{
			Token:     "expired-token",
			UserID:    created.ID,
			CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
			ExpiresAt: time.Now().Add(-24 * time.Hour),
		}))

		_, err := as.Verify(ctx, "expired-token")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, as.Logout(ctx, tok))

		_, err := as.Verify(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	_, _, as := newAuthService()
	ctx := context.Background()

	created, tok, err := as.Signup(ctx, "user@example.com", "VeryStrongPassw0rd!", "Test User")
	require.NoError(t, err)

	t.Run("valid token edits the profile", func(t *testing.T) {
		avatar := "https://cdn/avatar.png"
		updated, err := as.UpdateProfile(ctx, tok, "  Renamed User ", &avatar)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Renamed User", updated.Name)
		require.NotNil(t, updated.AvatarURL)
		assert.Equal(t, avatar, *updated.AvatarURL)

		u, err := as.Verify(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, "Renamed User", u.Name)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := as.UpdateProfile(ctx, "deadbeef", "Someone", nil)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestAuthService_LogoutIdempotent(t *testing.T) {
	_, _, as := newAuthService()
	ctx := context.Background()

	_, tok, err := as.Signup(ctx, "user@example.com", "VeryStrongPassw0rd!", "Test User")
	require.NoError(t, err)

	require.NoError(t, as.Logout(ctx, tok))
	require.NoError(t, as.Logout(ctx, tok))
	assert.NoError(t, as.Logout(ctx, "never-issued"))
}

func TestAuthService_SessionTTL(t *testing.T) {
	_, sr, as := newAuthService()
	ctx := context.Background()

	_, tok, err := as.Signup(ctx, "user@example.com", "VeryStrongPassw0rd!", "Test User")
	require.NoError(t, err)

	s := sr.sessions[tok]
	assert.WithinDuration(t, s.CreatedAt.Add(session.TTL), s.ExpiresAt, time.Second)
}
