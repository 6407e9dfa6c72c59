package evaluation

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
)

// RelayObserver hands evaluations that the upstream API accepted to a
// Recorder. Payloads are opaque to the forwarder, so anything that does not
// decode as an Evaluation is skipped.
type RelayObserver struct {
	Recorder Recorder
}

func NewRelayObserver(rec Recorder) *RelayObserver {
	return &RelayObserver{Recorder: rec}
}

// Relayed is called by the forwarder after a response has been relayed.
func (o *RelayObserver) Relayed(ctx context.Context, payload []byte, status int) {
	if status < 200 || status > 299 {
		log.FromContext(ctx).Debug("Upstream did not accept evaluation, skipping observers", "status", status)
		return
	}
	var e Evaluation
	if err := json.Unmarshal(payload, &e); err != nil {
		log.FromContext(ctx).Debug("Relayed payload is not an evaluation", "error", err)
		return
	}
	if err := o.Recorder.Record(ctx, e); err != nil {
		log.FromContext(ctx).Error("Failed to record relayed evaluation", "playerID", e.PlayerID, "error", err)
	}
}
