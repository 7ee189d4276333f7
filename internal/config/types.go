package config

import (
	"fmt"
	"strings"
)

// DefaultExchangeRatesURL is the BNR daily bulletin feed.
const DefaultExchangeRatesURL = "https://www.bnr.ro/nbrfxrates.xml"

// Config holds all configuration for the application.
type Config struct {
	ExchangeRatesURL string
	LogLevel         string
	LogFormat        string
	NotifyProvider   string
	Telegram         TelegramConfig
	Slack            SlackConfig
	PubSub           PubSubConfig
}

type TelegramConfig struct {
	BotToken  string
	ChannelID string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type PubSubConfig struct {
	ProjectID string
	Topic     string
}

// Enabled reports whether bulletin events should be published.
func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != "" && c.Topic != ""
}

// Validate returns a *ConfigError naming every missing credential.
func (c TelegramConfig) Validate() error {
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.ChannelID == "" {
		missing = append(missing, "TELEGRAM_CHANNEL_ID")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func (c SlackConfig) Validate() error {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if c.ChannelID == "" {
		missing = append(missing, "SLACK_CHANNEL_ID")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// ConfigError is returned when a required setting is absent.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variables must be set", strings.Join(e.Missing, " and "))
}
