package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/notifier"
	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendEvaluation posts a summary of a saved evaluation to the configured channel.
func (s *Notifier) SendEvaluation(e evaluation.Evaluation, p *player.Player, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatEvaluation(e, p), dryRun)
	return err
}

func (s *Notifier) formatEvaluation(e evaluation.Evaluation, p *player.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	name := e.PlayerID
	if p != nil {
		name = p.Name
	}
	headerText := fmt.Sprintf("🎾 New evaluation for %s", name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	var accessory *slack.Accessory
	if p != nil {
		playerText := fmt.Sprintf("*%s* (#%d)\n📍 %s · %s member", p.Name, p.Ranking, p.Location, p.MembershipType)
		if p.ProfileImage != "" {
			accessory = slack.NewAccessory(slack.NewImageBlockElement(p.ProfileImage, p.Name))
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, accessory))
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Tennis Skills*\n%s", e.TennisScore), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Fitness Level*\n%s", e.FitnessScore), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Player ID: `%s`", e.PlayerID), false, false),
	))

	return slack.NewBlockMessage(blocks...)
}
