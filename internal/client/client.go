package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/settings"
)

var _ evaluation.Recorder = (*Client)(nil)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCacheDir keeps GET replies on disk under dir, so they survive between
// processes for as long as the server's Cache-Control allows.
func WithCacheDir(dir string) Option {
	return func(c *Client) {
		c.httpClient = httpcache.NewTransport(diskcache.New(dir)).Client()
	}
}

// New creates a client for the server at host. GET replies are kept in an
// in-memory cache and honour the server's Cache-Control headers.
func New(host string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpcache.NewMemoryCacheTransport().Client(),
		host:       strings.TrimRight(host, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches endpoint and returns the reply whatever its status.
func (c *Client) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// Players searches the directory. An empty query lists everyone.
func (c *Client) Players(ctx context.Context, query string) (player.SearchResult, error) {
	endpoint := "/players"
	if query != "" {
		endpoint += "?" + url.Values{"q": {query}}.Encode()
	}
	var result player.SearchResult
	err := c.getJSON(ctx, endpoint, &result)
	return result, err
}

// Player fetches a single player. Unknown ids wrap player.ErrNotFound.
func (c *Client) Player(ctx context.Context, id string) (player.Player, error) {
	var p player.Player
	err := c.getJSON(ctx, "/players/"+url.PathEscape(id), &p)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return player.Player{}, fmt.Errorf("%w: %s", player.ErrNotFound, id)
	}
	return p, err
}

// Settings fetches the settings page.
func (c *Client) Settings(ctx context.Context) (settings.Page, error) {
	var page settings.Page
	err := c.getJSON(ctx, "/settings", &page)
	return page, err
}

// Record submits e to the server's evaluation forwarder.
func (c *Client) Record(ctx context.Context, e evaluation.Evaluation) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode evaluation: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/evaluation", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: "/evaluation", StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	log.Info("Evaluation submitted", "playerID", e.PlayerID, "status", resp.StatusCode)
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(resp.Body))}
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.host+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("Making request", "method", method, "url", req.URL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Cached:     resp.Header.Get(httpcache.XFromCache) == "1",
	}, nil
}
