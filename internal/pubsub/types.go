package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func() error
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventEvaluationSaved EventType = "evaluation-saved"
)

// EvaluationEvent is the message published for every saved evaluation.
type EvaluationEvent struct {
	ID           string    `msgpack:"id"`
	Type         EventType `msgpack:"type"`
	PlayerID     string    `msgpack:"playerId"`
	TennisScore  int       `msgpack:"tennisScore"`
	FitnessScore int       `msgpack:"fitnessScore"`
	RecordedAt   time.Time `msgpack:"recordedAt"`
}
