package ports

import (
	"context"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Uniqueness of name and email is enforced by the store itself; Create
// surfaces a constraint violation as domain.ErrUserExists.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
