// Package users keeps the accounts of the development backend in memory.
package users

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sitrack/internal/cryptox"
)

var (
	ErrInvalidLogin  = errors.New("invalid username or password")
	ErrAlreadyExists = errors.New("username already exists")
	ErrValidation    = errors.New("validation error")
)

// Roles accepted for new accounts.
var Roles = []string{"Admin", "Supervisor", "Manager", "Operasional", "Mekanik"}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	salt []byte
	hash []byte
}

type Service struct {
	mu     sync.RWMutex
	nextID int64
	users  []*User
}

func NewService() *Service {
	return &Service{nextID: 1}
}

// Seed creates one account per role, named after the lower-cased role
// with the same password.
func (s *Service) Seed() error {
	for _, role := range Roles {
		name := strings.ToLower(role)
		if _, err := s.Create(name, name, role); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Create(username, password, role string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if !slices.Contains(Roles, role) {
		return User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return User{}, err
	}
	hash := cryptox.DeriveKey([]byte(password), salt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(username) != nil {
		return User{}, ErrAlreadyExists
	}
	u := &User{ID: s.nextID, Username: username, Role: role, salt: salt, hash: hash}
	s.nextID++
	s.users = append(s.users, u)
	return *u, nil
}

// Authenticate checks the password in constant time. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(username, password string) (User, error) {
	s.mu.RLock()
	u := s.find(username)
	s.mu.RUnlock()
	if u == nil {
		return User{}, ErrInvalidLogin
	}

	got := cryptox.DeriveKey([]byte(password), u.salt)
	if subtle.ConstantTimeCompare(got, u.hash) != 1 {
		return User{}, ErrInvalidLogin
	}
	return *u, nil
}

func (s *Service) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	for i, u := range s.users {
		out[i] = *u
	}
	return out
}

func (s *Service) find(username string) *User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}
