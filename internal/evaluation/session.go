package evaluation

import (
	"errors"

	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/score"
)

// ErrClosed is returned when a closed session is asked for a selector.
var ErrClosed = errors.New("evaluation session is closed")

// NewSession returns a closed session. Either callback may be nil.
func NewSession(onSave SaveFunc, onClose func()) *Session {
	return &Session{
		state:   Closed,
		onSave:  onSave,
		onClose: onClose,
	}
}

// Open binds the session to a snapshot of p and resets both scores to the
// default, whatever an earlier session left behind. A nil player is ignored.
func (s *Session) Open(p *player.Player) {
	if p == nil {
		return
	}
	snapshot := *p
	s.player = &snapshot
	s.tennis = score.MustNew(score.Default)
	s.fitness = score.MustNew(score.Default)
	s.state = Open
}

func (s *Session) State() State {
	return s.state
}

// View returns the player and current scores. The second result is false
// when no player is bound, in which case there is nothing to render.
func (s *Session) View() (View, bool) {
	if s.player == nil {
		return View{}, false
	}
	return View{
		Player:       *s.player,
		TennisScore:  s.tennis,
		FitnessScore: s.fitness,
	}, true
}

// SetTennis updates only the tennis score.
func (s *Session) SetTennis(v score.Score) {
	if s.state == Open {
		s.tennis = v
	}
}

// SetFitness updates only the fitness score.
func (s *Session) SetFitness(v score.Score) {
	if s.state == Open {
		s.fitness = v
	}
}

// TennisSelector returns a selector showing the tennis score that writes
// selections back to this session.
func (s *Session) TennisSelector() (*score.Selector, error) {
	return s.selector(s.tennis, s.SetTennis)
}

// FitnessSelector is TennisSelector for the fitness score.
func (s *Session) FitnessSelector() (*score.Selector, error) {
	return s.selector(s.fitness, s.SetFitness)
}

func (s *Session) selector(current score.Score, set func(score.Score)) (*score.Selector, error) {
	if s.state != Open {
		return nil, ErrClosed
	}
	return score.NewSelector(current.Int(), func(v int) {
		// The selector only reports values inside its range.
		if sc, err := score.New(v); err == nil {
			set(sc)
		}
	})
}

// Save hands the bound player's id and both scores to the save callback
// exactly once, then closes the session as Cancel does. Saving a closed
// session does nothing.
func (s *Session) Save() {
	if s.state != Open {
		return
	}
	if s.onSave != nil {
		s.onSave(s.player.ID, s.tennis, s.fitness)
	}
	s.close()
}

// Cancel discards the scores and closes the session without saving.
func (s *Session) Cancel() {
	if s.state != Open {
		return
	}
	s.close()
}

func (s *Session) close() {
	s.player = nil
	s.tennis = score.MustNew(score.Default)
	s.fitness = score.MustNew(score.Default)
	s.state = Closed
	if s.onClose != nil {
		s.onClose()
	}
}
