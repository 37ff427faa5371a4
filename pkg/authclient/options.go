package authclient

import (
	"net/http"
	"time"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds a single login round-trip (0 disables the bound).
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeader adds a static header to every login request.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if name != "" {
			c.headers.Add(name, value)
		}
	}
}
