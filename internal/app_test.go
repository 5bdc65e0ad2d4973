package internal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"cloudvault-api/internal/domain/session"
)

type fakeSessionRepo struct {
	deleteExpiredCalls int
	deleteExpiredN     int64
	deleteExpiredErr   error
}

func (f *fakeSessionRepo) CreateSession(context.Context, session.Session) error { return nil }
func (f *fakeSessionRepo) FetchLiveSession(context.Context, string) (*session.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) DeleteSession(context.Context, string) error { return nil }

func (f *fakeSessionRepo) DeleteExpired(context.Context) (int64, error) {
	f.deleteExpiredCalls++
	return f.deleteExpiredN, f.deleteExpiredErr
}

// the pruner must work on an App as built, before InitControllers runs
func TestApp_PruneExpiredSessions(t *testing.T) {
	repo := &fakeSessionRepo{deleteExpiredN: 2}
	a := &App{
		logger:   zap.NewNop(),
		sessions: repo,
	}

	a.pruneExpiredSessions(context.Background())
	assert.Equal(t, 1, repo.deleteExpiredCalls)
}

func TestApp_PruneExpiredSessionsSurvivesError(t *testing.T) {
	repo := &fakeSessionRepo{deleteExpiredErr: errors.New("db down")}
	a := &App{
		logger:   zap.NewNop(),
		sessions: repo,
	}

	a.pruneExpiredSessions(context.Background())
	a.pruneExpiredSessions(context.Background())
	assert.Equal(t, 2, repo.deleteExpiredCalls)
}
