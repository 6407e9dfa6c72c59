package upstream

import "net/http"

// Response is what the upstream API answered.
type Response struct {
	StatusCode int
	Body       []byte
}

// APIClient posts evaluation payloads to a fixed upstream URL.
type APIClient struct {
	httpClient *http.Client
	URL        string
}

// Option configures an APIClient.
type Option func(*APIClient)
