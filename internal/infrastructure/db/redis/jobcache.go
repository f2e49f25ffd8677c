package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

const defaultCacheTTL = 10 * time.Minute

// JobCache stores normalized upstream postings in Redis with a bounded TTL.
// Key format: jobs:list:<location> for listings, jobs:id:<id> for details.
type JobCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewJobCache creates a JobCache wrapping the given Redis client.
func NewJobCache(client *redis.Client, ttl time.Duration) *JobCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &JobCache{client: client, ttl: ttl}
}

// GetList returns the cached listing for a location, or (nil, nil) on miss.
func (c *JobCache) GetList(ctx context.Context, location string) ([]domain.Job, error) {
	raw, err := c.client.Get(ctx, c.listKey(location)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("job cache get list: %w", err)
	}

	var jobs []domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("job cache decode list: %w", err)
	}
	return jobs, nil
}

// SetList caches a listing for a location.
func (c *JobCache) SetList(ctx context.Context, location string, jobs []domain.Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("job cache encode list: %w", err)
	}
	return c.client.Set(ctx, c.listKey(location), raw, c.ttl).Err()
}

// GetJob returns a cached posting by id, or (nil, nil) on miss.
func (c *JobCache) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	raw, err := c.client.Get(ctx, c.jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("job cache get: %w", err)
	}

	var job domain.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("job cache decode: %w", err)
	}
	return &job, nil
}

// SetJob caches a single posting.
func (c *JobCache) SetJob(ctx context.Context, job *domain.Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("job cache encode: %w", err)
	}
	return c.client.Set(ctx, c.jobKey(job.ID), raw, c.ttl).Err()
}

func (c *JobCache) listKey(location string) string {
	return "jobs:list:" + location
}

func (c *JobCache) jobKey(id string) string {
	return "jobs:id:" + id
}
