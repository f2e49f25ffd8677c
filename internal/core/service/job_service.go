package service

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"

	"github.com/claranceatgalvanize/embridge/internal/api/metrics"
	"github.com/claranceatgalvanize/embridge/internal/core/domain"
	"github.com/claranceatgalvanize/embridge/internal/core/ports"
)

// urlPattern matches the first http(s) URL in the free-text how_to_apply
// field. The upstream puts the application link anywhere inside markdown.
var urlPattern = regexp.MustCompile(`https?://[^\s<>()"']+`)

// JobService fetches postings from the upstream jobs API through a
// read-through cache and normalizes them for display.
type JobService struct {
	source ports.JobSource
	cache  ports.JobCache
	md     goldmark.Markdown
	log    zerolog.Logger
}

func NewJobService(source ports.JobSource, cache ports.JobCache, log zerolog.Logger) *JobService {
	return &JobService{
		source: source,
		cache:  cache,
		md:     goldmark.New(),
		log:    log,
	}
}

// ListJobs returns postings for the given location. Cache errors count as
// misses; an upstream failure degrades to an empty list with a logged
// warning so the listing view never breaks.
func (s *JobService) ListJobs(ctx context.Context, location string) ([]domain.Job, error) {
	if cached, err := s.cache.GetList(ctx, location); err != nil {
		s.log.Warn().Err(err).Str("location", location).Msg("job cache read failed")
	} else if cached != nil {
		metrics.JobCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.JobCacheTotal.WithLabelValues("miss").Inc()
	}

	jobs, err := s.source.Positions(ctx, location)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("location", location).Msg("upstream jobs api failed, serving empty list")
		return []domain.Job{}, nil
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("success").Inc()

	for i := range jobs {
		s.normalize(&jobs[i])
	}

	if err := s.cache.SetList(ctx, location, jobs); err != nil {
		s.log.Warn().Err(err).Str("location", location).Msg("job cache write failed")
	}
	return jobs, nil
}

// GetJob returns a single normalized posting. Unlike ListJobs, an upstream
// failure here is an error: a detail view has nothing to degrade to.
func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	if id == "" {
		return nil, domain.ErrJobNotFound
	}

	if cached, err := s.cache.GetJob(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("job_id", id).Msg("job cache read failed")
	} else if cached != nil {
		metrics.JobCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.JobCacheTotal.WithLabelValues("miss").Inc()
	}

	job, err := s.source.Position(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, domain.ErrJobNotFound
		}
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("success").Inc()

	s.normalize(job)
	if err := s.cache.SetJob(ctx, job); err != nil {
		s.log.Warn().Err(err).Str("job_id", id).Msg("job cache write failed")
	}
	return job, nil
}

// normalize applies display-time transformations: the markdown description
// is rendered to HTML and the application link is pulled out of the
// free-text how_to_apply field.
func (s *JobService) normalize(job *domain.Job) {
	job.ApplyURL = strings.TrimRight(urlPattern.FindString(job.HowToApply), ".,;")

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(job.Description), &buf); err != nil {
		s.log.Warn().Err(err).Str("job_id", job.ID).Msg("markdown render failed, keeping raw description")
		return
	}
	job.Description = buf.String()
}
