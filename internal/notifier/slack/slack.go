package slack

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bnr-rates/internal/config"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/mauv0809/bnr-rates/internal/notifier"
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

// NewNotifier creates a new Notifier. Missing credentials are reported as *config.ConfigError.
func NewNotifier(cfg config.SlackConfig, metrics metrics.Metrics) (*Notifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewNotifierWithAPI(slack.New(cfg.Token), cfg.ChannelID, metrics), nil
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

func (s *Notifier) Name() string {
	return "slack"
}

// Send posts the bulletin text as a single section block.
func (s *Notifier) Send(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	message := s.formatMessage(text)
	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionText(toPlainText(text), false),
	)
	if err != nil {
		s.metrics.IncNotificationsFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotificationsSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) formatMessage(text string) slack.Message {
	section := slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, toPlainText(text), false, false), nil, nil)
	return slack.NewBlockMessage(section)
}

var htmlTag = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// toPlainText drops the HTML markup that is meant for Telegram.
func toPlainText(text string) string {
	return html.UnescapeString(htmlTag.ReplaceAllString(text, ""))
}
