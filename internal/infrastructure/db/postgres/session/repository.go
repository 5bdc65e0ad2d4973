package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cloudvault-api/internal/domain/session"
	"cloudvault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) session.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSession(ctx context.Context, req session.Session) error {
	_, err := r.db.Exec(ctx, InsertSession,
		req.Token, req.UserID, req.CreatedAt, req.ExpiresAt,
	)
	return err
}

// FetchLiveSession checks expiry in SQL so a stale row behaves exactly
// like a missing one.
func (r *Repository) FetchLiveSession(ctx context.Context, token string) (*session.Session, error) {
	s := new(Session)
	err := r.db.QueryRow(ctx, SelectLiveSession, token).Scan(
		&s.Token,
		&s.UserID,

		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, DeleteSessionByToken, token)
	return err
}

func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, DeleteExpiredSessions)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
