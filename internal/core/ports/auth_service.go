package ports

import (
	"context"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// AuthService orchestrates registration and login. Register and Login
// return a signed session token on success.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
