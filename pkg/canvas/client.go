package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 15 * time.Second
	pageSize       = 100
	// maxPages bounds pagination in case a server keeps returning a next link.
	maxPages = 50
)

// Client is the HTTP wrapper for the Canvas LMS REST API (v1).
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequestsPerMinute paces outbound requests. Zero or negative disables pacing.
func WithRequestsPerMinute(n int) Option {
	return func(c *Client) {
		if n <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(float64(n)/60.0), max(1, n/10))
	}
}

// NewClient creates a Canvas client. baseURL is the instance root, for example
// https://school.instructure.com; the /api/v1 prefix is added per request.
func NewClient(baseURL, accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAssignmentGroups fetches GET /api/v1/courses/:id/assignment_groups.
func (c *Client) ListAssignmentGroups(ctx context.Context, courseID string) ([]AssignmentGroup, error) {
	var groups []AssignmentGroup
	endpoint := fmt.Sprintf("%s/api/v1/courses/%s/assignment_groups", c.baseURL, url.PathEscape(courseID))
	if err := c.getAll(ctx, endpoint, func(body io.Reader) error {
		var page []AssignmentGroup
		if err := json.NewDecoder(body).Decode(&page); err != nil {
			return fmt.Errorf("failed to decode canvas assignment groups: %w", err)
		}
		groups = append(groups, page...)
		return nil
	}); err != nil {
		return nil, err
	}
	return groups, nil
}

// ListAssignments fetches GET /api/v1/courses/:id/assignments.
func (c *Client) ListAssignments(ctx context.Context, courseID string) ([]Assignment, error) {
	var assignments []Assignment
	endpoint := fmt.Sprintf("%s/api/v1/courses/%s/assignments", c.baseURL, url.PathEscape(courseID))
	if err := c.getAll(ctx, endpoint, func(body io.Reader) error {
		var page []Assignment
		if err := json.NewDecoder(body).Decode(&page); err != nil {
			return fmt.Errorf("failed to decode canvas assignments: %w", err)
		}
		assignments = append(assignments, page...)
		return nil
	}); err != nil {
		return nil, err
	}
	return assignments, nil
}

// getAll walks Link-header pagination starting at endpoint, handing each page body to decode.
func (c *Client) getAll(ctx context.Context, endpoint string, decode func(io.Reader) error) error {
	next := endpoint + "?per_page=" + fmt.Sprint(pageSize)
	for page := 0; next != "" && page < maxPages; page++ {
		link, err := c.get(ctx, next, decode)
		if err != nil {
			return err
		}
		next = nextLink(link)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string, decode func(io.Reader) error) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("canvas rate limiter: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build canvas request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call canvas API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := decode(resp.Body); err != nil {
		return "", err
	}
	return resp.Header.Get("Link"), nil
}

// nextLink extracts the rel="next" target from an RFC 8288 Link header.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}
		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		for _, param := range segments[1:] {
			param = strings.TrimSpace(param)
			if strings.EqualFold(param, `rel="next"`) || strings.EqualFold(param, "rel=next") {
				return target[1 : len(target)-1]
			}
		}
	}
	return ""
}

// APIError is a non-200 answer from Canvas.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("canvas API error %d: %s", e.StatusCode, e.Body)
}
