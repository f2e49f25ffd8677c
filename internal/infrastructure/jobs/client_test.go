package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

const listingFixture = `[
  {
    "id": "abc123",
    "type": "Full Time",
    "url": "https://jobs.example.com/positions/abc123",
    "created_at": "Fri Aug 28 20:04:56 UTC 2026",
    "company": "Acme",
    "company_url": "https://acme.example.com",
    "location": "usa",
    "title": "Go Engineer",
    "description": "Build things.",
    "how_to_apply": "Apply at https://acme.example.com/careers",
    "company_logo": ""
  }
]`

func TestClient_Positions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/positions.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("location") != "usa" {
			t.Fatalf("unexpected location: %s", r.URL.Query().Get("location"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingFixture))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	jobs, err := client.Positions(context.Background(), "usa")
	if err != nil {
		t.Fatalf("Positions returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	job := jobs[0]
	if job.ID != "abc123" || job.Title != "Go Engineer" || job.Company != "Acme" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.CreatedAt.IsZero() {
		t.Fatalf("created_at not parsed")
	}
}

func TestClient_Position_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.Position(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestClient_Positions_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.Positions(context.Background(), ""); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_Positions_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.Positions(context.Background(), ""); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
