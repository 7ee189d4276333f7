package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EXCHANGE_RATES_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHANNEL_ID", "")
	t.Setenv("NOTIFY_PROVIDER", "")
	t.Setenv("PUBSUB_TOPIC", "")

	cfg := Load()

	assert.Equal(t, DefaultExchangeRatesURL, cfg.ExchangeRatesURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "telegram", cfg.NotifyProvider)
	assert.False(t, cfg.PubSub.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("EXCHANGE_RATES_URL", " http://localhost:9999/rates.xml ")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHANNEL_ID", "@rates")
	t.Setenv("GCP_PROJECT", "proj")
	t.Setenv("PUBSUB_TOPIC", "bnr-bulletins")

	cfg := Load()

	assert.Equal(t, "http://localhost:9999/rates.xml", cfg.ExchangeRatesURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, TelegramConfig{BotToken: "123:abc", ChannelID: "@rates"}, cfg.Telegram)
	assert.True(t, cfg.PubSub.Enabled())
	require.NoError(t, cfg.Telegram.Validate())
}

func TestTelegramConfig_Validate(t *testing.T) {
	err := TelegramConfig{ChannelID: "@rates"}.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"TELEGRAM_BOT_TOKEN"}, cfgErr.Missing)

	err = TelegramConfig{}.Validate()
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "TELEGRAM_BOT_TOKEN and TELEGRAM_CHANNEL_ID environment variables must be set", err.Error())
}

func TestSlackConfig_Validate(t *testing.T) {
	assert.NoError(t, SlackConfig{Token: "xoxb", ChannelID: "C1"}.Validate())

	var cfgErr *ConfigError
	require.True(t, errors.As(SlackConfig{Token: "xoxb"}.Validate(), &cfgErr))
	assert.Equal(t, []string{"SLACK_CHANNEL_ID"}, cfgErr.Missing)
}
