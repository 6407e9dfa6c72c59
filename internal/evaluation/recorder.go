package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/score"
	"golang.org/x/sync/errgroup"
)

// LogRecorder only logs the evaluation. It is the behaviour the directory
// shipped with before submissions were wired up.
type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, e Evaluation) error {
	log.Info("Saving evaluation for player",
		"playerID", e.PlayerID,
		"tennisScore", e.TennisScore.Int(),
		"fitnessScore", e.FitnessScore.Int(),
	)
	return nil
}

// Sink names a recorder for metrics and logs.
type Sink struct {
	Name     string
	Recorder Recorder
}

type multi struct {
	sinks   []Sink
	metrics metrics.Metrics
}

// Multi fans an evaluation out to every sink concurrently. All sinks are
// attempted; their errors are joined.
func Multi(m metrics.Metrics, sinks ...Sink) Recorder {
	return &multi{sinks: sinks, metrics: m}
}

func (r *multi) Record(ctx context.Context, e Evaluation) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, sink := range r.sinks {
		g.Go(func() error {
			if err := sink.Recorder.Record(ctx, e); err != nil {
				r.metrics.IncEvaluationsFailed(sink.Name)
				log.FromContext(ctx).Error("Evaluation sink failed", "sink", sink.Name, "playerID", e.PlayerID, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", sink.Name, err))
				mu.Unlock()
				return err
			}
			r.metrics.IncEvaluationsRecorded(sink.Name)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// SaveTo adapts a Recorder to the session's save callback. The callback has
// no way to report failure, so errors are logged.
func SaveTo(ctx context.Context, rec Recorder) SaveFunc {
	return func(playerID string, tennisScore, fitnessScore score.Score) {
		e := Evaluation{PlayerID: playerID, TennisScore: tennisScore, FitnessScore: fitnessScore}
		if err := rec.Record(ctx, e); err != nil {
			log.Error("Failed to record evaluation", "playerID", playerID, "error", err)
		}
	}
}
