package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sitrack/internal/client/routes"
	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/dmitrijs2005/sitrack/internal/logging"
)

// Authenticator is the part of the backend client the session needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Navigator receives navigation signals after login and logout.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// View is the read-only face of a Session handed to stores and the UI.
type View interface {
	Token() string
	Username() string
	Role() string
	IsAuthenticated() bool
}

// Session is the single owner of the bearer token.
type Session struct {
	mu       sync.RWMutex
	token    string
	username string
	role     string
	inFlight int
	lastErr  error

	auth    Authenticator
	storage Storage
	nav     Navigator
	log     logging.Logger
}

var _ View = (*Session)(nil)

// New returns an empty session. Call Init to restore a persisted one.
// A nil nav or log is replaced by a no-op.
func New(auth Authenticator, storage Storage, nav Navigator, log logging.Logger) *Session {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		auth:    auth,
		storage: storage,
		nav:     nav,
		log:     log.With("component", "session"),
	}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Loading reports whether a login, logout or init is in progress.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// Err returns the failure of the last session operation, if any.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Session) begin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *Session) end(err error) {
	s.mu.Lock()
	s.inFlight--
	s.lastErr = err
	s.mu.Unlock()
}

// Login exchanges credentials for a token. On failure the previous session
// is left exactly as it was. A token whose claims cannot be decoded is
// accepted with DefaultIdentity.
func (s *Session) Login(ctx context.Context, username, password string) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "username", username, "error", err)
		return err
	}

	id, derr := IdentityFromToken(token)
	if derr != nil {
		s.log.Warn(ctx, "token claims unreadable, using default identity", "error", derr)
		id = DefaultIdentity()
	}

	if err := s.storage.Save(ctx, Persisted{Token: token, Username: id.Username, Role: id.Role}); err != nil {
		s.log.Error(ctx, "persist session", "error", err)
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.token, s.username, s.role = token, id.Username, id.Role
	s.mu.Unlock()

	s.log.Info(ctx, "login ok", "username", id.Username, "role", id.Role)
	s.nav.Navigate(routes.PathHome)
	return nil
}

// Logout notifies the backend when a token is held, then clears memory and
// storage regardless of the outcome. Calling it while logged out is safe.
func (s *Session) Logout(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	if token := s.Token(); token != "" {
		if lerr := s.auth.Logout(ctx, token); lerr != nil {
			s.log.Warn(ctx, "backend logout failed", "error", lerr)
		}
	}

	s.mu.Lock()
	s.token, s.username, s.role = "", "", ""
	s.mu.Unlock()

	err = s.storage.Clear(ctx)
	if err != nil {
		s.log.Error(ctx, "clear stored session", "error", err)
		err = fmt.Errorf("clear session: %w", err)
	}

	s.nav.Navigate(routes.PathLanding)
	return err
}

// Init restores a persisted session. A stored token that no longer decodes
// is treated as corrupt: the session is logged out and an error wrapping
// common.ErrDecode is returned.
func (s *Session) Init(ctx context.Context) error {
	p, err := s.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrDecode) {
			s.log.Warn(ctx, "stored session unreadable, logging out", "error", err)
			_ = s.Logout(ctx)
		}
		return fmt.Errorf("restore session: %w", err)
	}
	if p.Token == "" {
		return nil
	}

	id, err := IdentityFromToken(p.Token)
	if err != nil {
		s.log.Warn(ctx, "stored token malformed, logging out", "error", err)
		s.mu.Lock()
		s.token = p.Token
		s.mu.Unlock()
		_ = s.Logout(ctx)
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.token, s.username, s.role = p.Token, id.Username, id.Role
	s.mu.Unlock()

	s.log.Debug(ctx, "session restored", "username", id.Username, "role", id.Role)
	return nil
}
