package processor

import (
	"io"

	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/mauv0809/bnr-rates/internal/notifier"
	"github.com/mauv0809/bnr-rates/internal/pubsub"
)

// Processor runs the fetch, format and deliver workflow for rate notifications.
type Processor struct {
	fetcher     bnr.Fetcher
	newNotifier notifier.Factory
	publisher   pubsub.Publisher
	topic       string
	metrics     metrics.Metrics
	out         io.Writer
}

// Options controls a single run.
type Options struct {
	DryRun     bool
	Currencies notifier.CurrencyFilter
}
