package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mauv0809/bnr-rates/internal/config"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBotAPI is a mock implementation of the parts of tgbotapi.BotAPI that we use.
type mockBotAPI struct {
	sendFunc func(c tgbotapi.Chattable) (tgbotapi.Message, error)
	sent     []tgbotapi.Chattable
}

func (m *mockBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.sent = append(m.sent, c)
	if m.sendFunc != nil {
		return m.sendFunc(c)
	}
	return tgbotapi.Message{MessageID: 42}, nil
}

func TestSend_ChannelUsername(t *testing.T) {
	api := &mockBotAPI{}
	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "bnr_rates", metrics)

	err := n.Send(context.Background(), "USD: 4.5000 RON")
	require.NoError(t, err)

	require.Len(t, api.sent, 1)
	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok, "expected a MessageConfig")
	assert.Equal(t, "@bnr_rates", msg.ChannelUsername)
	assert.Equal(t, "USD: 4.5000 RON", msg.Text)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Equal(t, 1, metrics.NotificationsSent())
}

func TestSend_NumericChatID(t *testing.T) {
	api := &mockBotAPI{}
	n := NewNotifierWithAPI(api, "-1001234567890", metrics.NewMock())

	require.NoError(t, n.Send(context.Background(), "hello"))

	msg := api.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(-1001234567890), msg.ChatID)
	assert.Empty(t, msg.ChannelUsername)
}

func TestSend_Failure(t *testing.T) {
	expectedErr := errors.New("Forbidden: bot is not a member of the channel chat")
	api := &mockBotAPI{
		sendFunc: func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			return tgbotapi.Message{}, expectedErr
		},
	}
	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "@bnr_rates", metrics)

	err := n.Send(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.NotificationsSent())
	assert.Equal(t, 1, metrics.NotificationsFailed())
}

func TestSend_CanceledContext(t *testing.T) {
	api := &mockBotAPI{}
	n := NewNotifierWithAPI(api, "@bnr_rates", metrics.NewMock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, n.Send(ctx, "hello"), context.Canceled)
	assert.Empty(t, api.sent)
}

func TestNewNotifier_MissingCredentials(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	for _, cfg := range []config.TelegramConfig{
		{},
		{BotToken: "123:abc"},
		{ChannelID: "@bnr_rates"},
	} {
		n, err := NewNotifier(cfg, metrics.NewMock(), WithAPIEndpoint(srv.URL+"/bot%s/%s"))
		require.Error(t, err)
		assert.Nil(t, n)

		var cfgErr *config.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
	assert.Equal(t, int32(0), hits.Load(), "no request may reach Telegram without credentials")
}

func TestNewNotifier_SendsOverBotAPI(t *testing.T) {
	var gotChatID, gotParseMode, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"BNR","username":"bnr_rates_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
			gotChatID = r.FormValue("chat_id")
			gotParseMode = r.FormValue("parse_mode")
			gotText = r.FormValue("text")
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":7,"date":1705327200,"chat":{"id":-100,"type":"channel"}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	metrics := metrics.NewMock()
	n, err := NewNotifier(
		config.TelegramConfig{BotToken: "123:abc", ChannelID: "@bnr_rates"},
		metrics,
		WithAPIEndpoint(srv.URL+"/bot%s/%s"),
	)
	require.NoError(t, err)

	require.NoError(t, n.Send(context.Background(), "EUR: 4.9764 RON"))
	assert.Equal(t, "@bnr_rates", gotChatID)
	assert.Equal(t, "HTML", gotParseMode)
	assert.Equal(t, "EUR: 4.9764 RON", gotText)
	assert.Equal(t, 1, metrics.NotificationsSent())
}
