// Package forwarder relays evaluation submissions to the upstream API.
//
// The forwarder is a stateless boundary: it checks that the body is JSON,
// posts it upstream once, and hands the upstream status and body back with
// permissive CORS headers. It never retries.
package forwarder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/upstream"
)

// FailureMessage is the body of every 500 the forwarder produces.
const FailureMessage = "Failed to submit evaluation"

var errInvalidJSON = errors.New("body is not valid JSON")

// Observer is told about every response relayed from upstream, after it has
// been written to the caller.
type Observer interface {
	Relayed(ctx context.Context, payload []byte, status int)
}

// Forwarder is an http.Handler for /evaluation.
type Forwarder struct {
	client    upstream.Client
	metrics   metrics.Metrics
	observers []Observer
}

// New creates a Forwarder that submits through client.
func New(client upstream.Client, m metrics.Metrics, observers ...Observer) *Forwarder {
	return &Forwarder{
		client:    client,
		metrics:   m,
		observers: observers,
	}
}

func (f *Forwarder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w.Header())

	switch r.Method {
	case http.MethodOptions:
		f.metrics.IncForwardOutcome(metrics.OutcomePreflight)
		w.WriteHeader(http.StatusOK)
	case http.MethodPost:
		f.forward(w, r)
	default:
		f.metrics.IncForwardOutcome(metrics.OutcomeRejected)
		w.Header().Set("Allow", "POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	}
}

func (f *Forwarder) forward(w http.ResponseWriter, r *http.Request) {
	payload, err := readJSON(r.Body)
	if err != nil {
		f.metrics.IncForwardOutcome(metrics.OutcomeBadInput)
		f.fail(w, r, err)
		return
	}

	// The outbound call is not cancelled when the caller goes away.
	ctx := context.WithoutCancel(r.Context())

	start := time.Now()
	resp, err := f.client.Submit(ctx, payload)
	f.metrics.ObserveForwardDuration(time.Since(start).Seconds())
	if err != nil {
		f.metrics.IncForwardOutcome(metrics.OutcomeFailed)
		f.fail(w, r, err)
		return
	}
	if !json.Valid(resp.Body) {
		f.metrics.IncForwardOutcome(metrics.OutcomeFailed)
		f.fail(w, r, fmt.Errorf("upstream status %d: %w", resp.StatusCode, errInvalidJSON))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		log.FromContext(ctx).Error("Failed to write relayed response", "error", err)
	}
	f.metrics.IncForwardOutcome(metrics.OutcomeRelayed)
	log.FromContext(ctx).Info("Relayed evaluation", "status", resp.StatusCode)

	for _, o := range f.observers {
		o.Relayed(ctx, payload, resp.StatusCode)
	}
}

func (f *Forwarder) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.FromContext(r.Context()).Error("API Error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": FailureMessage})
}

func readJSON(body io.Reader) ([]byte, error) {
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if !json.Valid(payload) {
		return nil, errInvalidJSON
	}
	return payload, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
