package notifier

import "context"

// Notifier delivers a rendered bulletin message to a messaging channel.
// This decouples the rest of the application from the specific provider (e.g., Telegram).
type Notifier interface {
	Send(ctx context.Context, text string) error
	Name() string
}

// Factory builds a Notifier on demand, so that credentials are only
// validated when a delivery is actually attempted.
type Factory func() (Notifier, error)
