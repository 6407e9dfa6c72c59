package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/score"
)

// Evaluation is the pair of scores a user assigned to one player. It is a
// value object handed to recorders; nothing here persists it.
type Evaluation struct {
	PlayerID     string      `json:"playerId"`
	TennisScore  score.Score `json:"tennisScore"`
	FitnessScore score.Score `json:"fitnessScore"`
}

var (
	ErrMissingPlayer = errors.New("evaluation has no player id")
	ErrMissingScore  = errors.New("evaluation is missing a score")
)

// UnmarshalJSON requires every field, so an absent score is never mistaken
// for the default.
func (e *Evaluation) UnmarshalJSON(data []byte) error {
	var raw struct {
		PlayerID     string       `json:"playerId"`
		TennisScore  *score.Score `json:"tennisScore"`
		FitnessScore *score.Score `json:"fitnessScore"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.PlayerID == "" {
		return ErrMissingPlayer
	}
	if raw.TennisScore == nil || raw.FitnessScore == nil {
		return ErrMissingScore
	}
	*e = Evaluation{
		PlayerID:     raw.PlayerID,
		TennisScore:  *raw.TennisScore,
		FitnessScore: *raw.FitnessScore,
	}
	return nil
}

func (e Evaluation) String() string {
	return fmt.Sprintf("player=%s tennis=%d fitness=%d", e.PlayerID, e.TennisScore.Int(), e.FitnessScore.Int())
}

// SaveFunc receives the scores when a session is saved.
type SaveFunc func(playerID string, tennisScore, fitnessScore score.Score)

// Recorder is the collaborator that does something with a saved evaluation:
// log it, submit it, publish it, notify about it.
type Recorder interface {
	Record(ctx context.Context, e Evaluation) error
}

// RecorderFunc adapts a plain function to Recorder.
type RecorderFunc func(ctx context.Context, e Evaluation) error

func (f RecorderFunc) Record(ctx context.Context, e Evaluation) error {
	return f(ctx, e)
}

// State is the lifecycle of a Session.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// View is what an open session renders.
type View struct {
	Player       player.Player
	TennisScore  score.Score
	FitnessScore score.Score
}

// Session is the transient state behind the evaluation screen. It models a
// single UI event loop and is not safe for concurrent use.
type Session struct {
	state   State
	player  *player.Player
	tennis  score.Score
	fitness score.Score
	onSave  SaveFunc
	onClose func()
}
