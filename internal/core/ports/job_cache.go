package ports

import (
	"context"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// JobCache is a TTL-bounded read-through cache for upstream postings.
// A miss is a nil result with a nil error; cache errors are returned so
// callers can treat them as misses.
type JobCache interface {
	GetList(ctx context.Context, location string) ([]domain.Job, error)
	SetList(ctx context.Context, location string, jobs []domain.Job) error
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	SetJob(ctx context.Context, job *domain.Job) error
}
