package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-tracker/internal/metrics"
	"github.com/mauv0809/pickle-tracker/internal/notifier"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
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
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
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

func (s *Notifier) SendGameWon(state scoring.MatchState, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatGameWon(state), dryRun)
	return err
}

func (s *Notifier) SendSideSwitch(state scoring.MatchState, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatSideSwitch(state), dryRun)
	return err
}

// formatGameWon creates the Slack message for a decided game using Block Kit.
func (s *Notifier) formatGameWon(state scoring.MatchState) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏓 Team %s wins! 🏓", state.GameWinner), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("*Final score:* %d-%d\n*Format:* %s, %s scoring to %d",
		state.ScoreA, state.ScoreB, state.Format, state.ScoringMode, state.TargetScore)
	if state.WinByTwo {
		detailsText += " (win by 2)"
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", detailsText, false, false), nil, nil))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Team A:* %s", teamNames(state, scoring.TeamA)), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Team B:* %s", teamNames(state, scoring.TeamB)), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	contextText := fmt.Sprintf("%d rallies played", len(state.History))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, false, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatSideSwitch creates the reminder sent when the score reaches a side-switch checkpoint.
func (s *Notifier) formatSideSwitch(state scoring.MatchState) slack.Message {
	text := fmt.Sprintf("🔄 Switch sides! Score is %s, %s to serve.", scoring.Announcement(state), scoring.ServerDisplayName(state))
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil),
	)
}

func teamNames(state scoring.MatchState, team scoring.Team) string {
	var names []string
	for _, p := range state.TeamPlayers(team) {
		names = append(names, p.Name)
	}
	if len(names) == 0 {
		return fmt.Sprintf("Team %s", team)
	}
	return strings.Join(names, " & ")
}
