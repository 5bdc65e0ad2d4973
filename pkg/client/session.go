package client

import (
	"context"
	"errors"
	"sync"
)

var ErrNotSignedIn = errors.New("not signed in")

// SessionCache is the client-side authentication state. A persisted
// token is only trusted after the server re-verifies it.
type SessionCache struct {
	mu     sync.Mutex
	api    API
	tokens TokenStore

	user            *User
	token           string
	isAuthenticated bool
	isLoading       bool
}

func NewSessionCache(api API, tokens TokenStore) *SessionCache {
	return &SessionCache{
		api:    api,
		tokens: tokens,
	}
}

// Rehydrate restores the session on application start. Any failure,
// whether a missing token, an expired session or a network error, resets
// to signed-out and clears the persisted token; it is not an error to
// start signed out.
func (s *SessionCache) Rehydrate(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isLoading = false
		s.mu.Unlock()
	}()

	tok, err := s.tokens.Load()
	if err != nil || tok == "" {
		s.reset()
		return
	}

	u, err := s.api.Verify(ctx, tok)
	if err != nil {
		_ = s.tokens.Clear()
		s.reset()
		return
	}

	s.mu.Lock()
	s.user = u
	s.token = tok
	s.isAuthenticated = true
	s.mu.Unlock()
}

func (s *SessionCache) Login(ctx context.Context, email, password string) error {
	auth, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.adopt(auth)
	return nil
}

func (s *SessionCache) Signup(ctx context.Context, email, password, name string) error {
	auth, err := s.api.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}
	s.adopt(auth)
	return nil
}

// Logout revokes server-side best-effort; local sign-out always happens,
// a dead network must not trap the user in a session.
func (s *SessionCache) Logout(ctx context.Context) {
	s.mu.Lock()
	tok := s.token
	s.mu.Unlock()

	if tok != "" {
		_ = s.api.Logout(ctx, tok)
	}

	_ = s.tokens.Clear()
	s.reset()
}

func (s *SessionCache) adopt(auth *Auth) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &auth.User
	s.token = auth.Token
	s.isAuthenticated = true
	_ = s.tokens.Save(auth.Token)
}

func (s *SessionCache) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.isAuthenticated = false
}

func (s *SessionCache) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *SessionCache) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionCache) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

func (s *SessionCache) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}
