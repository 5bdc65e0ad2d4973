package session

import (
	"context"
)

type Repository interface {
	CreateSession(ctx context.Context, req Session) error
	// FetchLiveSession returns nil when the token is unknown or expired.
	// Expiry is checked at lookup time, never by row existence alone.
	FetchLiveSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
