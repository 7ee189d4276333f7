package pubsub

import "context"

// Publisher sends bulletin events to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, data any, attrs map[string]string) error
}
