package client

import (
	"fmt"
	"net/http"
)

// Client talks to the directory server on behalf of the CLI.
type Client struct {
	httpClient *http.Client
	host       string
}

// Option configures a Client.
type Option func(*Client)

// Response is a raw server reply.
type Response struct {
	StatusCode int
	Body       []byte
	// Cached is set when the reply was served from the local HTTP cache.
	Cached bool
}

// StatusError reports a non-2xx reply.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
