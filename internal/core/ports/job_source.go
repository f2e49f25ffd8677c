package ports

import (
	"context"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// JobSource fetches raw postings from the third-party jobs API.
type JobSource interface {
	Positions(ctx context.Context, location string) ([]domain.Job, error)
	Position(ctx context.Context, id string) (*domain.Job, error)
}
