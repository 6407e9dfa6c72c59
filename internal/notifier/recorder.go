package notifier

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/player"
)

// PlayerLookup resolves a player id for display.
type PlayerLookup func(id string) (player.Player, error)

type recorder struct {
	notifier Notifier
	lookup   PlayerLookup
}

// NewRecorder returns an evaluation.Recorder that sends every evaluation
// through n, enriched with the player's details when lookup knows them.
func NewRecorder(n Notifier, lookup PlayerLookup) evaluation.Recorder {
	return &recorder{notifier: n, lookup: lookup}
}

func (r *recorder) Record(ctx context.Context, e evaluation.Evaluation) error {
	var p *player.Player
	if r.lookup != nil {
		found, err := r.lookup(e.PlayerID)
		switch {
		case err == nil:
			p = &found
		case errors.Is(err, player.ErrNotFound):
			log.FromContext(ctx).Warn("Evaluated player is not in the directory", "playerID", e.PlayerID)
		default:
			return err
		}
	}
	return r.notifier.SendEvaluation(e, p, IsDryRun(ctx))
}
