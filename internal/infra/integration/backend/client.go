package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const healthPath = "/health"

// Session is what the client needs from the session store: the current
// bearer token and the de-authentication path to run on a 401.
type Session interface {
	Token() string
	Invalidate(ctx context.Context)
}

// Observer receives one call per finished request. status is 0 when the
// request never got an answer.
type Observer func(method, path string, status int, elapsed time.Duration)

type Client struct {
	baseURL string
	http    *http.Client
	session Session
	observe Observer
}

// NewClient builds a fire-once client. timeout 0 leaves the transport
// defaults in charge.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Bind attaches the session store. Until then requests go out without a
// token and 401s only fail the call.
func (c *Client) Bind(s Session) {
	c.session = s
}

func (c *Client) ObserveWith(o Observer) {
	c.observe = o
}

// Get issues a GET with the given query parameters. Empty values are dropped.
func (c *Client) Get(ctx context.Context, path string, params map[string]string, out any) error {
	query := url.Values{}
	for k, v := range params {
		if v != "" {
			query.Set(k, v)
		}
	}
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON; a nil body is sent as an empty object.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	c.setHeaders(req, path != healthPath)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.report(method, path, 0, start)
		return newTransportError(err)
	}
	defer resp.Body.Close()
	c.report(method, path, resp.StatusCode, start)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Invalidate(ctx)
		}
		return &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: MsgSessionExpired}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, readDetail(resp.Body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newTransportError(fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, withAuth bool) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if !withAuth || c.session == nil {
		return
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}

func (c *Client) report(method, path string, status int, start time.Time) {
	if c.observe != nil {
		c.observe(method, path, status, time.Since(start))
	}
}

// readDetail pulls the FastAPI style {"detail": "..."} out of an error body.
// Validation errors carry a list there; those fall back to the status text.
func readDetail(body io.Reader) string {
	var payload errorPayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	detail, ok := payload.Detail.(string)
	if !ok {
		return ""
	}
	return detail
}
