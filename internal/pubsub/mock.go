package pubsub

import (
	"context"
	"sync"
)

// Mock is a mock implementation of Publisher for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	PublishFunc func(ctx context.Context, topic string, data any, attrs map[string]string) error

	PublishCalls []PublishCall
}

// PublishCall holds the arguments for a call to Publish.
type PublishCall struct {
	Topic string
	Data  any
	Attrs map[string]string
}

var _ Publisher = (*Mock)(nil)

// NewMock creates a new mock Publisher.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = nil
}

func (m *Mock) Publish(ctx context.Context, topic string, data any, attrs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, PublishCall{Topic: topic, Data: data, Attrs: attrs})
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, data, attrs)
	}
	return nil
}
