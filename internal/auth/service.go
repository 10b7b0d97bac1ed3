package auth

import (
	"bookkeeping_system/internal/domain"  // Importing domain models
	"bookkeeping_system/internal/session" // Session bindings
	"bookkeeping_system/internal/utils"   // Cookie signing
	"context"                             // Request scoped operations
	"errors"                              // Error matching
	"fmt"                                 // Error wrapping
	"time"                                // Session lifetime

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// UserFinder is the subset of the user store the gate needs
type UserFinder interface {
	GetByID(ctx context.Context, id uint) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// Service authenticates credentials and resolves session cookies to users
type Service struct {
	users    UserFinder
	sessions session.Store
	secret   string
	ttl      time.Duration
}

// NewService creates the auth gate
func NewService(users UserFinder, sessions session.Store, secret string, ttl time.Duration) *Service {
	return &Service{users: users, sessions: sessions, secret: secret, ttl: ttl}
}

// TTL is the fixed lifetime of a session
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login checks the credentials and opens a session. An unknown username and a
// wrong password both yield domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	} else if err != nil {
		return domain.User{}, "", err
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}
	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	token, err := utils.SignSessionID(sessionID, s.secret, s.ttl)
	if err != nil {
		_ = s.sessions.Destroy(ctx, sessionID) // Do not leave an unreachable session behind
		return domain.User{}, "", fmt.Errorf("sign session: %w", err)
	}
	return user, token, nil
}

// Logout destroys the session behind a cookie value. Missing or unverifiable
// cookies have nothing to destroy and succeed.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := utils.ParseSessionID(token, s.secret)
	if err != nil {
		return nil
	}
	return s.sessions.Destroy(ctx, sessionID)
}

// Resolve returns the user bound to a cookie value. Every way a cookie can fail
// to name a live user maps to domain.ErrUnauthenticated; store failures are returned as is.
func (s *Service) Resolve(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}
	sessionID, err := utils.ParseSessionID(token, s.secret)
	if err != nil {
		return domain.User{}, domain.ErrUnauthenticated
	}
	data, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return domain.User{}, domain.ErrUnauthenticated
	} else if err != nil {
		return domain.User{}, err
	}
	user, err := s.users.GetByID(ctx, data.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrUnauthenticated // Bound user no longer exists
	} else if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
