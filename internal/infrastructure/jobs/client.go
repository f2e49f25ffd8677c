// Package jobs is the HTTP client for the third-party job postings API.
// The API is read-only: an ordered listing endpoint plus single-job lookup
// by identifier.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// upstreamJob is the wire shape returned by the positions API.
type upstreamJob struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	CreatedAt   string `json:"created_at"`
	Company     string `json:"company"`
	CompanyURL  string `json:"company_url"`
	Location    string `json:"location"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HowToApply  string `json:"how_to_apply"`
	CompanyLogo string `json:"company_logo"`
}

// Client talks to the upstream positions API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Positions fetches the listing for a location.
func (c *Client) Positions(ctx context.Context, location string) ([]domain.Job, error) {
	endpoint := c.baseURL + "/positions.json"
	if location != "" {
		endpoint += "?location=" + url.QueryEscape(location)
	}

	var raw []upstreamJob
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, len(raw))
	for i, u := range raw {
		jobs[i] = toDomain(u)
	}
	return jobs, nil
}

// Position fetches a single posting by id. A 404 from the upstream maps to
// domain.ErrJobNotFound.
func (c *Client) Position(ctx context.Context, id string) (*domain.Job, error) {
	endpoint := c.baseURL + "/positions/" + url.PathEscape(id) + ".json"

	var raw upstreamJob
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" {
		return nil, domain.ErrJobNotFound
	}

	job := toDomain(raw)
	return &job, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrJobNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	return nil
}

func toDomain(u upstreamJob) domain.Job {
	return domain.Job{
		ID:          u.ID,
		Type:        u.Type,
		URL:         u.URL,
		Title:       u.Title,
		Company:     u.Company,
		CompanyURL:  u.CompanyURL,
		CompanyLogo: u.CompanyLogo,
		Location:    u.Location,
		Description: u.Description,
		HowToApply:  u.HowToApply,
		CreatedAt:   parseCreatedAt(u.CreatedAt),
	}
}

// parseCreatedAt handles both RFC3339 and the legacy "Mon Jan 2 15:04:05
// UTC 2006" format the positions API historically used.
func parseCreatedAt(s string) time.Time {
	for _, layout := range []string{time.RFC3339, time.UnixDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
