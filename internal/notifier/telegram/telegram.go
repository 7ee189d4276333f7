package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mauv0809/bnr-rates/internal/config"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/mauv0809/bnr-rates/internal/notifier"
)

// botAPI is an interface that contains the methods from tgbotapi.BotAPI that we use.
// This allows for easy mocking in tests.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts messages to a Telegram channel.
type Notifier struct {
	api       botAPI
	channelID string
	metrics   metrics.Metrics
}

// Option customises how NewNotifier builds the bot client.
type Option func(*options)

type options struct {
	endpoint   string
	httpClient *http.Client
}

// WithAPIEndpoint overrides the Bot API endpoint format, e.g. for a local Bot API server.
func WithAPIEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// NewNotifier creates a Telegram notifier. Missing credentials are reported as
// *config.ConfigError before any request is made.
func NewNotifier(cfg config.TelegramConfig, metrics metrics.Metrics, opts ...Option) (*Notifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		endpoint:   tgbotapi.APIEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, o.endpoint, o.httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	log.Debug("Authorized Telegram bot", "username", api.Self.UserName)

	return NewNotifierWithAPI(api, cfg.ChannelID, metrics), nil
}

// NewNotifierWithAPI creates a Notifier with a specific bot client.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api botAPI, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (n *Notifier) Name() string {
	return "telegram"
}

// Send posts text to the channel using HTML parse mode.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := n.newMessage(text)
	msg.ParseMode = tgbotapi.ModeHTML

	log.Debug("Sending message to Telegram", "channel", n.channelID)
	sent, err := n.api.Send(msg)
	if err != nil {
		n.metrics.IncNotificationsFailed()
		log.Error("Failed to send Telegram message", "error", err, "channel", n.channelID)
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	n.metrics.IncNotificationsSent()
	log.Info("Successfully sent Telegram message", "channel", n.channelID, "message_id", sent.MessageID)
	return nil
}

// newMessage addresses numeric chat ids directly and everything else as a channel username.
func (n *Notifier) newMessage(text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(n.channelID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	username := n.channelID
	if !strings.HasPrefix(username, "@") {
		username = "@" + username
	}
	return tgbotapi.NewMessageToChannel(username, text)
}
