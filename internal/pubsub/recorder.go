package pubsub

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/metrics"
)

type recorder struct {
	client  PubSubClient
	topic   string
	metrics metrics.Metrics
	now     func() time.Time
}

// NewRecorder publishes every recorded evaluation as an EvaluationEvent on topic.
func NewRecorder(c PubSubClient, topic string, m metrics.Metrics) evaluation.Recorder {
	if topic == "" {
		topic = string(EventEvaluationSaved)
	}
	return &recorder{client: c, topic: topic, metrics: m, now: time.Now}
}

func (r *recorder) Record(ctx context.Context, e evaluation.Evaluation) error {
	event := EvaluationEvent{
		ID:           uuid.NewString(),
		Type:         EventEvaluationSaved,
		PlayerID:     e.PlayerID,
		TennisScore:  e.TennisScore.Int(),
		FitnessScore: e.FitnessScore.Int(),
		RecordedAt:   r.now().UTC(),
	}
	if err := r.client.SendMessage(ctx, r.topic, event); err != nil {
		r.metrics.IncPubSubFailed()
		return err
	}
	r.metrics.IncPubSubPublished()
	return nil
}
