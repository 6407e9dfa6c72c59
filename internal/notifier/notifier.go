package notifier

import (
	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/player"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendEvaluation announces a saved evaluation. p is nil when the player
	// is not in the directory.
	SendEvaluation(e evaluation.Evaluation, p *player.Player, dryRun bool) error
}
