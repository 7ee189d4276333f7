package processor

import "context"

// Runner is implemented by Processor; the CLI depends on it so runs can be faked.
type Runner interface {
	Run(ctx context.Context, opts Options) error
}
