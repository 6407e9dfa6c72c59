package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

// ErrEmptyURL is returned when the client has nowhere to submit to.
var ErrEmptyURL = errors.New("upstream url is empty")

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) {
		c.httpClient = hc
	}
}

// NewClient creates a client for url. Submissions are single attempts with
// no client-side timeout.
func NewClient(url string, opts ...Option) *APIClient {
	c := &APIClient{
		httpClient: &http.Client{},
		URL:        url,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit POSTs payload verbatim as JSON and returns the upstream status and
// body, whatever the status. Only transport failures are errors.
func (c *APIClient) Submit(ctx context.Context, payload []byte) (*Response, error) {
	if c.URL == "" {
		return nil, ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("Submitting evaluation upstream", "url", c.URL, "bytes", len(payload))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error submitting to upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading upstream response: %w", err)
	}
	log.Info("Upstream responded", "status", resp.StatusCode)
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
