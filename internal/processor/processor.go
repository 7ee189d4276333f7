package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/mauv0809/bnr-rates/internal/notifier"
	"github.com/mauv0809/bnr-rates/internal/pubsub"
)

// ErrNoMatchingCurrencies is returned when the currency filter leaves nothing to send.
var ErrNoMatchingCurrencies = errors.New("no matching currencies found")

var _ Runner = (*Processor)(nil)

// New creates a new Processor. The notifier is built through newNotifier only
// when a real delivery is needed.
func New(fetcher bnr.Fetcher, newNotifier notifier.Factory, metrics metrics.Metrics) *Processor {
	return &Processor{
		fetcher:     fetcher,
		newNotifier: newNotifier,
		metrics:     metrics,
		out:         os.Stdout,
	}
}

// WithPublisher enables publishing every delivered bulletin to topic.
func (p *Processor) WithPublisher(publisher pubsub.Publisher, topic string) *Processor {
	p.publisher = publisher
	p.topic = topic
	return p
}

// WithOutput sets where dry-run messages are printed.
func (p *Processor) WithOutput(w io.Writer) *Processor {
	p.out = w
	return p
}

// Run performs one notification cycle. Every failure is logged here and
// returned; nothing is delivered unless fetch and format both succeed.
func (p *Processor) Run(ctx context.Context, opts Options) error {
	runID := uuid.NewString()
	logger := log.With("run_id", runID)
	if opts.Currencies != nil {
		logger.Debug("Filtering currencies", "currencies", strings.Join(opts.Currencies.Codes(), ", "))
	}

	start := time.Now()
	bulletin, err := p.fetcher.FetchBulletin(ctx)
	p.metrics.ObserveFetchDuration(time.Since(start).Seconds())
	if err != nil {
		p.metrics.IncFetchFailures()
		logger.Error("Error fetching data", "error", err)
		return fmt.Errorf("fetch bulletin: %w", err)
	}
	logger.Debug("Processing rates", "date", bulletin.Date.String())

	msg, ok := notifier.FormatMessage(bulletin, opts.Currencies)
	if !ok {
		logger.Warn("No matching currencies found")
		logger.Info("Available currencies: " + strings.Join(bulletin.Currencies(), " "))
		return ErrNoMatchingCurrencies
	}

	if opts.DryRun {
		logger.Info("Dry run - message not sent", "date", bulletin.Date.String())
		fmt.Fprint(p.out, msg)
	} else {
		n, err := p.newNotifier()
		if err != nil {
			logger.Error("Cannot deliver notification", "error", err)
			return err
		}
		if err := n.Send(ctx, msg); err != nil {
			logger.Error("Failed to deliver notification", "provider", n.Name(), "error", err)
			return err
		}
		logger.Info("Exchange rates sent successfully", "provider", n.Name(), "date", bulletin.Date.String())
	}

	if p.publisher == nil || p.topic == "" {
		return nil
	}
	attrs := map[string]string{
		"run_id":  runID,
		"date":    bulletin.Date.String(),
		"dry_run": fmt.Sprint(opts.DryRun),
	}
	if err := p.publisher.Publish(ctx, p.topic, pubsub.NewEvent(bulletin), attrs); err != nil {
		logger.Error("Failed to publish bulletin event", "topic", p.topic, "error", err)
		return fmt.Errorf("publish bulletin event: %w", err)
	}
	return nil
}
