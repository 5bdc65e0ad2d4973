package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"cloudvault-api/internal/application/ports"
	"cloudvault-api/internal/domain/session"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/password"
	"cloudvault-api/internal/infrastructure/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Burned on unknown-email logins so the miss costs a bcrypt compare,
// same as a wrong password against a real account.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService struct {
	userRepository    user.Repository
	sessionRepository session.Repository
	mCounter          *prometheus.CounterVec
}

func NewAuthService(
	userRepository user.Repository,
	sessionRepository session.Repository,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		mCounter:          mCounter,
	}
}

func (as *AuthService) Signup(ctx context.Context, email, requestPassword, name string) (*user.User, string, error) {
	hash, err := password.Hash(requestPassword)
	if err != nil {
		return nil, "", err
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(email),
		PasswordHash: &hash,
		Name:         strings.TrimSpace(name),
	}

	created, err := as.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, "", err
	}

	tok, err := as.issueSession(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}

	as.mCounter.WithLabelValues("signup_total").Inc()

	return created, tok, nil
}

func (as *AuthService) Login(ctx context.Context, email, requestPassword string) (*user.User, string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil || u.PasswordHash == nil {
		_ = password.Compare(dummyHash, requestPassword)
		return nil, "", ErrInvalidCredentials
	}

	if err = password.Compare(*u.PasswordHash, requestPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := as.issueSession(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}

	as.mCounter.WithLabelValues("login_total").Inc()

	return u, tok, nil
}

func (as *AuthService) Verify(ctx context.Context, tok string) (*user.User, error) {
	s, err := as.sessionRepository.FetchLiveSession(ctx, tok)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrInvalidSession
	}

	u, err := as.userRepository.FetchUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidSession
	}

	return u, nil
}

// UpdateProfile edits the profile of whoever the token resolves to; the
// session is the only authorization.
func (as *AuthService) UpdateProfile(ctx context.Context, tok, name string, avatarURL *string) (*user.User, error) {
	u, err := as.Verify(ctx, tok)
	if err != nil {
		return nil, err
	}

	updated, err := as.userRepository.UpdateProfile(ctx, user.User{
		ID:        u.ID,
		Name:      strings.TrimSpace(name),
		AvatarURL: avatarURL,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrInvalidSession
	}

	as.mCounter.WithLabelValues("profile_updates_total").Inc()

	return updated, nil
}

// Logout is idempotent: revoking an absent token is not an error.
func (as *AuthService) Logout(ctx context.Context, tok string) error {
	return as.sessionRepository.DeleteSession(ctx, tok)
}

func (as *AuthService) issueSession(ctx context.Context, userID user.ID) (string, error) {
	tok, err := token.New()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if err = as.sessionRepository.CreateSession(ctx, session.Session{
		Token:  tok,
		UserID: userID,

		CreatedAt: now,
		ExpiresAt: now.Add(session.TTL),
	}); err != nil {
		return "", err
	}

	return tok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
