package ports

import (
	"context"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// JobService serves normalized job postings to the API layer.
type JobService interface {
	// ListJobs returns postings for a location. An upstream failure
	// degrades to an empty list, never an error.
	ListJobs(ctx context.Context, location string) ([]domain.Job, error)
	// GetJob returns a single posting by id, domain.ErrJobNotFound when the
	// upstream knows no such id, or domain.ErrUpstream on upstream failure.
	GetJob(ctx context.Context, id string) (*domain.Job, error)
}
