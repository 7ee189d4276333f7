package bnr

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Fetcher interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	FetchBulletinFunc func(ctx context.Context) (*Bulletin, error)

	FetchBulletinCalls int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) FetchBulletin(ctx context.Context) (*Bulletin, error) {
	m.mu.Lock()
	m.FetchBulletinCalls++
	fn := m.FetchBulletinFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return &Bulletin{}, nil
}

// Calls returns the number of times FetchBulletin was called.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchBulletinCalls
}
