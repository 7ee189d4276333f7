package bnr

import "context"

// Fetcher retrieves the current bulletin.
// This allows for mock implementations to be used in tests.
type Fetcher interface {
	FetchBulletin(ctx context.Context) (*Bulletin, error)
}
