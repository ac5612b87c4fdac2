package cmapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the cluster manager REST API.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient Doer
	logger     zerolog.Logger
}

func NewClient(baseURL, username, password string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "cmapi").Logger(),
	}
}

// Resource returns a handle on the API path relpath.
func (c *Client) Resource(relpath string) *Resource {
	return newResource(c, relpath)
}

// execute sends one request and returns the unread response. The caller closes
// the body.
func (c *Client) execute(ctx context.Context, method, path string, params url.Values, data []byte, headers map[string]string) (*http.Response, error) {
	target := c.BaseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug().Str("method", method).Str("url", target).Msg("cluster manager request")
	return c.HTTPClient.Do(req)
}
