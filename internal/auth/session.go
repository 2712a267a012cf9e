package auth

import (
	"sync"

	"github.com/fennwald/tracker-api/internal/entities"
)

// Session is the in-process mirror of the authenticated identity and
// its token pair. It holds no persistence of its own; the refresh token
// is stored separately by the gateway.
type Session struct {
	mu     sync.RWMutex
	user   *entities.User
	tokens *entities.TokenPair
}

// NewSession creates an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Set replaces the user and token pair in one step.
func (s *Session) Set(user *entities.User, tokens *entities.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = copyUser(user)
	s.tokens = copyTokens(tokens)
}

// SetTokens replaces only the token pair, keeping the user.
func (s *Session) SetTokens(tokens *entities.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = copyTokens(tokens)
}

// User returns a copy of the current user, or nil.
func (s *Session) User() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

// Tokens returns a copy of the current token pair, or nil.
func (s *Session) Tokens() *entities.TokenPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTokens(s.tokens)
}

// Authenticated reports whether a user and token pair are present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.tokens != nil
}

// Clear resets the session to the unauthenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.tokens = nil
}

func copyUser(u *entities.User) *entities.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func copyTokens(t *entities.TokenPair) *entities.TokenPair {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
