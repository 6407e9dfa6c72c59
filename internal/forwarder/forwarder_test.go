package forwarder

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayedCall struct {
	Payload string
	Status  int
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []relayedCall
}

func (o *recordingObserver) Relayed(_ context.Context, payload []byte, status int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, relayedCall{string(payload), status})
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", h.Get("Access-Control-Allow-Headers"))
}

func serve(f *Forwarder, method, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/evaluation", r)
	rr := httptest.NewRecorder()
	f.ServeHTTP(rr, req)
	return rr
}

func TestForwarder_Preflight(t *testing.T) {
	client := upstream.NewMockClient()
	m := metrics.NewMock()

	rr := serve(New(client, m), http.MethodOptions, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assertCORS(t, rr.Header())
	assert.Empty(t, client.SubmitCalls, "preflight must not reach upstream")
	assert.Equal(t, 1, m.ForwardOutcomes(metrics.OutcomePreflight))
}

func TestForwarder_RelaysUpstreamResponse(t *testing.T) {
	client := upstream.NewMockClient()
	client.SubmitFunc = func(ctx context.Context, payload []byte) (*upstream.Response, error) {
		return &upstream.Response{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)}, nil
	}
	obs := &recordingObserver{}
	m := metrics.NewMock()

	rr := serve(New(client, m, obs), http.MethodPost, `{"a":1}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assertCORS(t, rr.Header())

	require.Len(t, client.SubmitCalls, 1)
	assert.Equal(t, `{"a":1}`, string(client.SubmitCalls[0]))
	assert.Equal(t, []relayedCall{{`{"a":1}`, http.StatusOK}}, obs.calls)
	assert.Equal(t, 1, m.ForwardOutcomes(metrics.OutcomeRelayed))
	assert.Len(t, m.ForwardDurations(), 1)
}

func TestForwarder_RelaysUpstreamErrorsAsIs(t *testing.T) {
	client := upstream.NewMockClient()
	client.SubmitFunc = func(ctx context.Context, payload []byte) (*upstream.Response, error) {
		return &upstream.Response{StatusCode: http.StatusUnprocessableEntity, Body: []byte(`{"message":"invalid"}`)}, nil
	}
	obs := &recordingObserver{}

	rr := serve(New(client, metrics.NewMock(), obs), http.MethodPost, `{"playerId":"1"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"message":"invalid"}`, rr.Body.String())
	assertCORS(t, rr.Header())
	require.Len(t, obs.calls, 1)
	assert.Equal(t, http.StatusUnprocessableEntity, obs.calls[0].Status)
}

func TestForwarder_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		submit      func(ctx context.Context, payload []byte) (*upstream.Response, error)
		wantSubmits int
		wantOutcome string
	}{
		{
			name:        "malformed payload",
			body:        `{"a":`,
			wantOutcome: metrics.OutcomeBadInput,
		},
		{
			name:        "empty payload",
			body:        "",
			wantOutcome: metrics.OutcomeBadInput,
		},
		{
			name: "transport error",
			body: `{"a":1}`,
			submit: func(ctx context.Context, payload []byte) (*upstream.Response, error) {
				return nil, errors.New("connection refused")
			},
			wantSubmits: 1,
			wantOutcome: metrics.OutcomeFailed,
		},
		{
			name: "upstream body is not json",
			body: `{"a":1}`,
			submit: func(ctx context.Context, payload []byte) (*upstream.Response, error) {
				return &upstream.Response{StatusCode: http.StatusBadGateway, Body: []byte("<html>502</html>")}, nil
			},
			wantSubmits: 1,
			wantOutcome: metrics.OutcomeFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := upstream.NewMockClient()
			client.SubmitFunc = tt.submit
			obs := &recordingObserver{}
			m := metrics.NewMock()

			rr := serve(New(client, m, obs), http.MethodPost, tt.body)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"error":"Failed to submit evaluation"}`, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assertCORS(t, rr.Header())
			assert.Len(t, client.SubmitCalls, tt.wantSubmits)
			assert.Empty(t, obs.calls)
			assert.Equal(t, 1, m.ForwardOutcomes(tt.wantOutcome))
		})
	}
}

func TestForwarder_RejectsOtherMethods(t *testing.T) {
	client := upstream.NewMockClient()

	rr := serve(New(client, metrics.NewMock()), http.MethodGet, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "POST, OPTIONS", rr.Header().Get("Allow"))
	assertCORS(t, rr.Header())
	assert.Empty(t, client.SubmitCalls)
}

func TestForwarder_UpstreamCallSurvivesCallerCancellation(t *testing.T) {
	client := upstream.NewMockClient()
	client.SubmitFunc = func(ctx context.Context, payload []byte) (*upstream.Response, error) {
		assert.NoError(t, ctx.Err(), "upstream context must not inherit the caller's cancellation")
		return &upstream.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/evaluation", strings.NewReader(`{}`)).WithContext(ctx)
	rr := httptest.NewRecorder()
	New(client, metrics.NewMock()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestForwarder_EndToEndWithUpstreamServer(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"playerId":"1","tennisScore":7,"fitnessScore":6}`, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"eval-1"}`))
	}))
	defer upstreamSrv.Close()

	f := New(upstream.NewClient(upstreamSrv.URL), metrics.NewMock())
	srv := httptest.NewServer(f)
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(`{"playerId":"1","tennisScore":7,"fitnessScore":6}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"eval-1"}`, string(body))
	assertCORS(t, resp.Header)
}
