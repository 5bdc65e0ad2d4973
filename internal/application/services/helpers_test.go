package services

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"cloudvault-api/internal/domain/session"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/infrastructure/mq"
)

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[user.ID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[user.ID]*user.User{}}
}

func (r *memUserRepo) FetchUserByID(_ context.Context, id user.ID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *memUserRepo) FetchUserByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) CreateUser(_ context.Context, req user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := req
	r.users[u.ID] = &u
	return &u, nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, req user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[req.ID]
	if !ok {
		return nil, nil
	}
	u.Name = req.Name
	u.AvatarURL = req.AvatarURL
	return u, nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]session.Session{}}
}

func (r *memSessionRepo) CreateSession(_ context.Context, req session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[req.Token] = req
	return nil
}

func (r *memSessionRepo) FetchLiveSession(_ context.Context, token string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return &s, nil
}

func (r *memSessionRepo) DeleteSession(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for tok, s := range r.sessions {
		if !s.ExpiresAt.After(time.Now()) {
			delete(r.sessions, tok)
			n++
		}
	}
	return n, nil
}

type fakeMQ struct {
	mu     sync.Mutex
	events []mq.Event
}

func (f *fakeMQ) Connect(context.Context, string) error { return nil }
func (f *fakeMQ) Init() error                           { return nil }
func (f *fakeMQ) PublisherWorker(context.Context)       {}
func (f *fakeMQ) GetConn() *amqp091.Connection          { return nil }

func (f *fakeMQ) TryPublish(e mq.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeMQ) published() []mq.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mq.Event, len(f.events))
	copy(out, f.events)
	return out
}
