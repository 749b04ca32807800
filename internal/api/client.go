// Package api is the read-only HTTP client for the SmartPlanning backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Error kinds. Every failed fetch is normalized into one of these; the
// panels never see a raw transport error.
const (
	KindHTTPStatus = "http_status"
	KindTransport  = "transport"
)

const defaultTimeout = 30 * time.Second

// Error is the single failure type returned by Client. Status is set only
// for KindHTTPStatus.
type Error struct {
	Kind   string
	Status int
	Detail string
	err    error
}

func (e *Error) Error() string {
	if e.Kind == KindHTTPStatus {
		if e.Detail != "" {
			return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
		}
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return "backend unreachable: " + e.Detail
}

func (e *Error) Unwrap() error { return e.err }

func transportErr(err error) *Error {
	return &Error{Kind: KindTransport, Detail: err.Error(), err: err}
}

// Client issues single-attempt GETs against the backend. The zero value is
// unusable; build one with New so every panel shares the same base URL and
// timeout instead of hardcoding its own.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New builds a client for baseURL. timeout <= 0 falls back to 30s.
func New(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c Client) endpointFor(path string) (string, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return "", fmt.Errorf("missing api base url")
	}
	u, err := url.Parse(strings.TrimRight(c.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid api url: %w", err)
	}
	p := strings.TrimPrefix(strings.TrimSpace(path), "/")
	u.Path = strings.TrimRight(u.Path, "/") + "/" + p
	return u.String(), nil
}

// getJSON performs exactly one GET and decodes the body into out.
// Non-2xx statuses and any transport/decode failure come back as *Error.
func (c Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint, err := c.endpointFor(path)
	if err != nil {
		return transportErr(err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpc := c.HTTP
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return transportErr(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return transportErr(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErr(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:   KindHTTPStatus,
			Status: resp.StatusCode,
			Detail: statusDetail(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return transportErr(fmt.Errorf("invalid json response: %w", err))
	}
	return nil
}

// statusDetail pulls the FastAPI-style {"detail": "..."} message out of an
// error body, falling back to a short raw snippet.
func statusDetail(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "…"
	}
	return s
}

// HealthCheck calls GET /health.
func (c Client) HealthCheck(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.getJSON(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary calls GET /dashboard/summary.
func (c Client) Summary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	if err := c.getJSON(ctx, "/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Insights calls GET /dashboard/insights.
func (c Client) Insights(ctx context.Context) (*InsightsResponse, error) {
	var out InsightsResponse
	if err := c.getJSON(ctx, "/dashboard/insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CapacityIA calls GET /dashboard/capacity/ia.
func (c Client) CapacityIA(ctx context.Context) (*CapacityIA, error) {
	var out CapacityIA
	if err := c.getJSON(ctx, "/dashboard/capacity/ia", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Board calls GET /planning/board/{material}. weeks <= 0 leaves the
// horizon to the backend default (8); the backend clamps it to 1..12.
func (c Client) Board(ctx context.Context, material string, weeks int) (*PlanningBoard, error) {
	var q url.Values
	if weeks > 0 {
		q = url.Values{"horizonte_semanas": []string{strconv.Itoa(weeks)}}
	}
	var out PlanningBoard
	if err := c.getJSON(ctx, "/planning/board/"+url.PathEscape(material), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pegging calls GET /pegging/ia-lite?material={code}.
func (c Client) Pegging(ctx context.Context, material string) (*PeggingLite, error) {
	q := url.Values{"material": []string{material}}
	var out PeggingLite
	if err := c.getJSON(ctx, "/pegging/ia-lite", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
