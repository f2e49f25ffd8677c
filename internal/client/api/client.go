// Package api is the HTTP client for the embridge backend. It plays the
// role the browser app does in production: register/login persist the
// returned token into the session manager, and every protected call
// attaches it as a bearer credential.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/client/session"
	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// ErrUnauthorized is returned when the server rejects the request with 401.
var ErrUnauthorized = errors.New("unauthorized")

const defaultTimeout = 15 * time.Second

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Profile is the server's view of the authenticated user.
type Profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client wraps the backend API. All methods are single-shot: a failure
// surfaces to the caller without retry.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *session.Manager
}

func NewClient(baseURL string, sess *session.Manager) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
		session: sess,
	}
}

// Session exposes the underlying session manager for login-state checks.
func (c *Client) Session() *session.Manager {
	return c.session
}

// Register creates an account and saves the returned session token.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.authRequest(ctx, "/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

// Login authenticates and saves the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.authRequest(ctx, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) authRequest(ctx context.Context, path string, payload map[string]string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, path, payload, false, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("server returned no token")
	}
	return c.session.Save(resp.Token)
}

// Logout drops the stored token. Purely client-side: the server keeps no
// session state.
func (c *Client) Logout() error {
	return c.session.Logout()
}

// GetProfile fetches the authenticated user's profile. Requires a stored
// token; the server answers 401 otherwise.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Jobs lists postings, optionally filtered by location.
func (c *Client) Jobs(ctx context.Context, location string) ([]domain.Job, error) {
	path := "/api/jobs"
	if location != "" {
		path += "?location=" + url.QueryEscape(location)
	}
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, path, nil, false, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job fetches a single posting by id.
func (c *Client) Job(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, false, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// do performs one request. When authed is true the cached token is attached
// as a bearer credential; logged-out requests carry no Authorization header
// at all.
func (c *Client) do(ctx context.Context, method, path string, payload any, authed bool, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if tok := c.session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, envelope.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
