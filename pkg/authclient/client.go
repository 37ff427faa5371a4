package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

// maxBodySize caps how much of a response body is read. Tokens and error
// messages are small; anything larger is not a login response.
const maxBodySize = 1 << 20

// Credentials is the transient input to Login. It is never persisted and
// exists only for the duration of the call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client sends login requests to a remote authentication endpoint.
type Client struct {
	loginURL   string
	httpClient *http.Client
	timeout    time.Duration
	headers    http.Header
}

// New creates a credential transport for the given login endpoint.
func New(loginURL string, opts ...Option) (*Client, error) {
	if loginURL == "" {
		return nil, ErrMissingLoginURL
	}

	c := &Client{
		loginURL:   loginURL,
		httpClient: cleanhttp.DefaultPooledClient(),
		timeout:    15 * time.Second,
		headers:    make(http.Header),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Login posts the credentials and returns the raw token string from a 2xx
// response. Non-2xx responses and network failures surface as
// ErrAuthenticationFailed; the server-provided detail is attached
// uninterpreted. One attempt only, no retries.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if creds.Username == "" {
		return "", ErrMissingCredentials
	}

	body, err := json.Marshal(creds)
	if err != nil {
		return "", errors.Join(ErrAuthenticationFailed, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Join(ErrAuthenticationFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	for name, values := range c.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Join(ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", errors.Join(ErrAuthenticationFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := strings.TrimSpace(string(payload))
		if detail == "" {
			detail = resp.Status
		}
		return "", errors.Join(ErrAuthenticationFailed, fmt.Errorf("%s", detail))
	}

	token := strings.TrimSpace(string(payload))
	if token == "" {
		return "", ErrEmptyResponse
	}

	return token, nil
}
