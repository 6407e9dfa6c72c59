package upstream

import "context"

// Client defines the interface for submitting evaluations to the upstream API.
// This allows for mock implementations to be used in tests.
type Client interface {
	Submit(ctx context.Context, payload []byte) (*Response, error)
}
