package service

import (
	"context"
	"errors"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/api/metrics"
	"github.com/claranceatgalvanize/embridge/internal/auth/password"
	"github.com/claranceatgalvanize/embridge/internal/auth/token"
	"github.com/claranceatgalvanize/embridge/internal/core/domain"
	"github.com/claranceatgalvanize/embridge/internal/core/ports"
)

// AuthService implements registration, login and profile reads.
type AuthService struct {
	repo   ports.AuthRepository
	issuer *token.Issuer
}

func NewAuthService(repo ports.AuthRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Register creates a credential record and returns a session token for the
// new user. Name, email and password must be non-empty; the store enforces
// uniqueness of name and email.
func (s *AuthService) Register(ctx context.Context, name, email, pass string) (string, error) {
	if name == "" || email == "" || pass == "" {
		return "", domain.ErrInvalidInput
	}

	salt, hash, err := password.Hash(pass)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordSalt: salt,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	metrics.RegistrationsTotal.Inc()
	return s.issuer.Issue(created)
}

// Login verifies credentials and mints a fresh token. Unknown email and
// wrong password both yield ErrInvalidCredentials so a caller cannot tell
// which of the two was wrong.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, error) {
	if email == "" || pass == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(pass, user.PasswordSalt, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return s.issuer.Issue(user)
}

// Profile returns the user behind a verified token subject.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, userID)
}
