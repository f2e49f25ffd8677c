package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

type stubJobSource struct {
	positions []domain.Job
	position  *domain.Job
	err       error
	calls     int
}

func (s *stubJobSource) Positions(_ context.Context, _ string) ([]domain.Job, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.positions, nil
}

func (s *stubJobSource) Position(_ context.Context, _ string) (*domain.Job, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.position == nil {
		return nil, domain.ErrJobNotFound
	}
	clone := *s.position
	return &clone, nil
}

type stubJobCache struct {
	lists map[string][]domain.Job
	jobs  map[string]*domain.Job
	err   error
}

func newStubJobCache() *stubJobCache {
	return &stubJobCache{lists: make(map[string][]domain.Job), jobs: make(map[string]*domain.Job)}
}

func (c *stubJobCache) GetList(_ context.Context, location string) ([]domain.Job, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.lists[location], nil
}

func (c *stubJobCache) SetList(_ context.Context, location string, jobs []domain.Job) error {
	if c.err != nil {
		return c.err
	}
	c.lists[location] = jobs
	return nil
}

func (c *stubJobCache) GetJob(_ context.Context, id string) (*domain.Job, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.jobs[id], nil
}

func (c *stubJobCache) SetJob(_ context.Context, job *domain.Job) error {
	if c.err != nil {
		return c.err
	}
	c.jobs[job.ID] = job
	return nil
}

func TestJobService_ListJobs_NormalizesAndCaches(t *testing.T) {
	source := &stubJobSource{positions: []domain.Job{{
		ID:          "j1",
		Title:       "Go Engineer",
		Description: "# Heading\n\nSome **bold** text.",
		HowToApply:  "Send a mail via [this page](https://example.com/apply) please.",
	}}}
	cache := newStubJobCache()
	svc := NewJobService(source, cache, zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background(), "usa")
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	job := jobs[0]
	if job.ApplyURL != "https://example.com/apply" {
		t.Fatalf("apply url not extracted: %q", job.ApplyURL)
	}
	if !strings.Contains(job.Description, "<h1") || !strings.Contains(job.Description, "<strong>bold</strong>") {
		t.Fatalf("description not rendered: %q", job.Description)
	}

	if cache.lists["usa"] == nil {
		t.Fatalf("expected list to be cached")
	}
}

func TestJobService_ListJobs_CacheHitSkipsUpstream(t *testing.T) {
	source := &stubJobSource{}
	cache := newStubJobCache()
	cache.lists["usa"] = []domain.Job{{ID: "cached"}}
	svc := NewJobService(source, cache, zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background(), "usa")
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "cached" {
		t.Fatalf("expected cached list, got %+v", jobs)
	}
	if source.calls != 0 {
		t.Fatalf("upstream called despite cache hit")
	}
}

func TestJobService_ListJobs_UpstreamFailureDegradesToEmpty(t *testing.T) {
	source := &stubJobSource{err: domain.ErrUpstream}
	svc := NewJobService(source, newStubJobCache(), zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background(), "usa")
	if err != nil {
		t.Fatalf("expected degraded empty list, got error: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Fatalf("expected empty slice, got %+v", jobs)
	}
}

func TestJobService_ListJobs_CacheErrorTreatedAsMiss(t *testing.T) {
	source := &stubJobSource{positions: []domain.Job{{ID: "j1"}}}
	cache := newStubJobCache()
	cache.err = domain.ErrUpstream // any error will do
	svc := NewJobService(source, cache, zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background(), "usa")
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "j1" {
		t.Fatalf("expected upstream result, got %+v", jobs)
	}
}

func TestJobService_GetJob_Success(t *testing.T) {
	source := &stubJobSource{position: &domain.Job{
		ID:         "j2",
		Title:      "Backend Engineer",
		HowToApply: "Apply at https://jobs.example.com/j2.",
	}}
	cache := newStubJobCache()
	svc := NewJobService(source, cache, zerolog.Nop())

	job, err := svc.GetJob(context.Background(), "j2")
	if err != nil {
		t.Fatalf("GetJob returned error: %v", err)
	}
	if job.ApplyURL != "https://jobs.example.com/j2" {
		t.Fatalf("apply url not extracted: %q", job.ApplyURL)
	}
	if cache.jobs["j2"] == nil {
		t.Fatalf("expected job to be cached")
	}
}

func TestJobService_GetJob_NotFound(t *testing.T) {
	svc := NewJobService(&stubJobSource{}, newStubJobCache(), zerolog.Nop())
	if _, err := svc.GetJob(context.Background(), "missing"); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_GetJob_UpstreamError(t *testing.T) {
	svc := NewJobService(&stubJobSource{err: domain.ErrUpstream}, newStubJobCache(), zerolog.Nop())
	if _, err := svc.GetJob(context.Background(), "j1"); err != domain.ErrUpstream {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
