// Package profileapi is the client for the learning-profile endpoint of the
// learnlab backend.
package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/abhisek/learnlab/internal/assessment"
	"github.com/abhisek/learnlab/internal/logging"
	"github.com/google/uuid"
)

const (
	// ProfilePath is the endpoint for the learner's profile.
	ProfilePath = "/assessment/profile"

	// DefaultBaseURL is used when no base URL option is given.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds each request.
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

// Client talks to the profile endpoint. It is safe for concurrent use, but
// only one Store may be in flight at a time.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	log     *logging.Logger
	now     func() time.Time

	storing atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the service root, e.g. "https://api.example.com".
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout bounds each request. Zero disables the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		log:     logging.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store saves the learner's profile. The profile is validated locally
// first. The existing profile is replaced with PUT; when the service has no
// profile yet, it is created with POST.
func (c *Client) Store(ctx context.Context, creds Credentials, profile assessment.LearningProfile) (*assessment.LearningProfile, error) {
	if err := creds.Check(c.now()); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, &ValidationError{Detail: err.Error(), Err: err}
	}

	if !c.storing.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer c.storing.Store(false)

	var out assessment.LearningProfile
	err := c.do(ctx, http.MethodPut, creds, profile, &out)
	if errors.Is(err, ErrProfileNotFound) {
		c.log.Debug("no stored profile, creating")
		err = c.do(ctx, http.MethodPost, creds, profile, &out)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the learner's stored profile.
func (c *Client) Fetch(ctx context.Context, creds Credentials) (*assessment.LearningProfile, error) {
	if err := creds.Check(c.now()); err != nil {
		return nil, err
	}

	var out assessment.LearningProfile
	if err := c.do(ctx, http.MethodGet, creds, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the learner's stored profile.
func (c *Client) Delete(ctx context.Context, creds Credentials) error {
	if err := creds.Check(c.now()); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, creds, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, creds Credentials, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+ProfilePath, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(creds.Token))
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("method", method, "path", ProfilePath, "request_id", requestID)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("profile request failed", "error", err)
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	log.Debug("profile request", "status", resp.StatusCode, "latency", time.Since(start))

	return decodeResponse(resp.StatusCode, data, out)
}

// decodeResponse maps an HTTP status and body onto the client's error kinds,
// decoding successful bodies into out.
func decodeResponse(status int, data []byte, out any) error {
	switch {
	case status >= 200 && status < 300:
		if out == nil || len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &ValidationError{
			Detail: parseDetail(data),
			Err:    fmt.Errorf("HTTP %d", status),
		}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (HTTP %d)", ErrUnauthorized, status)
	case status == http.StatusNotFound:
		return ErrProfileNotFound
	case status >= 500:
		msg := parseDetail(data)
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &NetworkError{StatusCode: status, Err: errors.New(msg)}
	default:
		return fmt.Errorf("unexpected HTTP %d from profile service", status)
	}
}

// parseDetail extracts the service's error message. The detail field is
// either a string or a list of {msg} objects for field errors.
func parseDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
