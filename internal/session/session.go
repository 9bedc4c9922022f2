package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/partitura/partitura_admin/internal/model"
	"github.com/rs/zerolog/log"
)

// Session owns the token pair and user record for the running process.
// Login writes it, the refresh protocol rewrites the access token, logout
// clears it; every outgoing request reads it. Mutations are persisted
// through the store so the session survives restarts.
type Session struct {
	mu         sync.Mutex
	access     string
	refresh    string
	user       *model.User
	generation uint64

	// saveMu serializes store writes: each persist snapshots the state
	// at its turn, so the last write always carries the newest tokens.
	saveMu sync.Mutex
	store  *Store
}

func New(store *Store) *Session {
	return &Session{store: store}
}

// Restore loads any persisted credentials into the session. A missing or
// unreadable file leaves the session unauthenticated.
func (s *Session) Restore() error {
	creds, err := s.store.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = creds.Access
	s.refresh = creds.Refresh
	s.user = creds.User
	s.generation++
	return nil
}

// SetTokens stores a fresh token pair and user record, as returned by login.
func (s *Session) SetTokens(access, refresh string, user *model.User) {
	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.user = user
	s.generation++
	s.mu.Unlock()

	s.persist()
}

// SetAccess replaces only the access token, as the refresh protocol does.
func (s *Session) SetAccess(access string) {
	s.mu.Lock()
	s.access = access
	s.generation++
	s.mu.Unlock()

	s.persist()
}

// Clear wipes all session state. Idempotent, never fails: a persistence
// error is logged, not returned, because logout must always succeed.
func (s *Session) Clear() {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	s.generation++
	s.mu.Unlock()

	if s.store != nil {
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if err := s.store.Clear(); err != nil {
			log.Warn().Err(err).Msg("Failed to clear stored credentials")
		}
	}
}

// IsAuthenticated reports whether an access token is currently stored.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access != ""
}

// AccessToken returns the current access token together with its
// generation. The generation lets a request that got a 401 tell whether
// another request already replaced the token it used.
func (s *Session) AccessToken() (string, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.generation
}

func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

func (s *Session) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) persist() {
	if s.store == nil {
		return
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	creds := &credentials{Access: s.access, Refresh: s.refresh, User: s.user}
	s.mu.Unlock()

	if err := s.store.Save(creds); err != nil {
		log.Warn().Err(err).Msg("Failed to persist credentials")
	}
}

// Claims is the subset of access-token claims the console cares about.
type Claims struct {
	Username  string
	ExpiresAt time.Time
}

// AccessClaims decodes the stored access token without verifying it. The
// remote API is the verifier; the client only inspects expiry and identity
// for display and proactive refresh.
func (s *Session) AccessClaims() (*Claims, error) {
	access, _ := s.AccessToken()
	if access == "" {
		return nil, ErrNotAuthenticated
	}

	var claims jwt.MapClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(access, &claims); err != nil {
		return nil, err
	}

	out := &Claims{}
	if username, ok := claims["username"].(string); ok {
		out.Username = username
	} else if sub, ok := claims["sub"].(string); ok {
		out.Username = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the access token's exp claim has passed. Tokens
// without a parseable exp claim are treated as live; the server decides.
func (s *Session) Expired(now time.Time) bool {
	claims, err := s.AccessClaims()
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}
	return now.After(claims.ExpiresAt)
}
