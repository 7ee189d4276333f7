package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var _ Publisher = (*client)(nil)

// New creates a Pub/Sub publisher for the given project.
// The returned func releases the underlying client.
func New(ctx context.Context, projectID string) (Publisher, func(), error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	teardown := func() {
		if err := pubSubC.Close(); err != nil {
			log.Warn("Failed to close pubsub client", "error", err)
		}
	}

	return &client{client: pubSubC}, teardown, nil
}

func (c *client) Publish(ctx context.Context, topic string, data any, attrs map[string]string) error {
	msgpackData, err := Encode(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data:       msgpackData,
		Attributes: attrs,
	}
	t := c.client.Topic(topic)
	defer t.Stop()

	serverID, err := t.Publish(ctx, message).Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	log.Info("Published bulletin event", "topic", topic, "serverID", serverID)
	return nil
}

// Encode marshals an event the way Publish puts it on the wire.
func Encode(data any) ([]byte, error) {
	b, err := msgpack.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("msgpack marshal: %w", err)
	}
	return b, nil
}

// Decode unmarshals a message payload into returnValue.
func Decode(data []byte, returnValue any) error {
	if err := msgpack.Unmarshal(data, returnValue); err != nil {
		return fmt.Errorf("msgpack unmarshal: %w", err)
	}
	return nil
}
