package cmapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	DefaultRetries    = 3
	DefaultRetrySleep = 3 * time.Second
)

// Response is the outcome of one API call. JSON is set only when the server
// answered with a non-empty application/json body.
type Response struct {
	StatusCode int
	Body       []byte
	JSON       map[string]any
}

// Resource is an API path on which methods can be invoked.
type Resource struct {
	client     *Client
	path       string
	Retries    uint64
	RetrySleep time.Duration
}

func newResource(c *Client, relpath string) *Resource {
	return &Resource{
		client:     c,
		path:       strings.Trim(relpath, "/"),
		Retries:    DefaultRetries,
		RetrySleep: DefaultRetrySleep,
	}
}

func (r *Resource) joinURI(relpath string) string {
	if relpath == "" {
		return r.path
	}
	return r.path + path.Clean("/"+relpath)
}

// Invoke sends method to relpath below the resource.
func (r *Resource) Invoke(ctx context.Context, method, relpath string, params url.Values, data []byte, headers map[string]string) (*Response, error) {
	p := r.joinURI(relpath)
	resp, err := r.client.execute(ctx, method, p, params, data, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Method: method, Path: p, Err: err}
	}
	r.client.logger.Debug().Str("method", method).Str("body", preview(body)).Msg("cluster manager response")

	out := &Response{StatusCode: resp.StatusCode, Body: body}
	if resp.StatusCode >= 400 {
		return out, &APIError{Method: method, Path: p, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if len(body) > 0 && isJSON(resp.Header.Get("Content-Type")) {
		if err := json.Unmarshal(body, &out.JSON); err != nil {
			r.client.logger.Error().Err(err).Str("body", string(body)).Msg("JSON decode error")
			return out, err
		}
	}
	return out, nil
}

// Get invokes GET, retrying transport timeouts up to Retries times with
// RetrySleep between attempts.
func (r *Resource) Get(ctx context.Context, relpath string, params url.Values) (*Response, error) {
	p := r.joinURI(relpath)
	b := retry.WithMaxRetries(r.Retries, retry.NewConstant(r.sleep()))

	attempt := uint64(0)
	var out *Response
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		resp, err := r.Invoke(ctx, http.MethodGet, relpath, params, nil, nil)
		if err == nil {
			out = resp
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) || !isTimeout(err) {
			out = resp
			return err
		}
		if attempt < r.Retries {
			r.client.logger.Warn().Str("path", p).Msg("timeout issuing GET request, will retry")
		} else {
			r.client.logger.Warn().Str("path", p).Msg("timeout issuing GET request, no retries left")
		}
		attempt++
		return retry.RetryableError(err)
	})
	if err == nil || ctx.Err() != nil {
		return out, err
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) && isTimeout(err) {
		return nil, &APIError{Method: http.MethodGet, Path: p, Message: "get retry max time reached", Err: err}
	}
	return out, err
}

func (r *Resource) Delete(ctx context.Context, relpath string, params url.Values) (*Response, error) {
	return r.Invoke(ctx, http.MethodDelete, relpath, params, nil, nil)
}

func (r *Resource) Post(ctx context.Context, relpath string, params url.Values, data []byte, contentType string) (*Response, error) {
	return r.Invoke(ctx, http.MethodPost, relpath, params, data, contentHeaders(contentType))
}

func (r *Resource) Put(ctx context.Context, relpath string, params url.Values, data []byte, contentType string) (*Response, error) {
	return r.Invoke(ctx, http.MethodPut, relpath, params, data, contentHeaders(contentType))
}

func (r *Resource) sleep() time.Duration {
	if r.RetrySleep <= 0 {
		return time.Nanosecond
	}
	return r.RetrySleep
}

func contentHeaders(contentType string) map[string]string {
	if contentType == "" {
		return nil
	}
	return map[string]string{"Content-Type": contentType}
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

func preview(body []byte) string {
	if len(body) > 32 {
		return string(body[:32])
	}
	return string(body)
}
