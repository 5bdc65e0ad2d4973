package ports

import (
	"context"

	"cloudvault-api/internal/domain/user"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*user.User, string, error)
	Login(ctx context.Context, email, password string) (*user.User, string, error)
	Verify(ctx context.Context, token string) (*user.User, error)
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, token, name string, avatarURL *string) (*user.User, error)
}
