package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/mauv0809/bnr-rates/internal/config"
	server "github.com/mauv0809/bnr-rates/internal/http"
	"github.com/mauv0809/bnr-rates/internal/logging"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/mauv0809/bnr-rates/internal/notifier"
	"github.com/mauv0809/bnr-rates/internal/notifier/slack"
	"github.com/mauv0809/bnr-rates/internal/notifier/telegram"
	"github.com/mauv0809/bnr-rates/internal/processor"
	"github.com/mauv0809/bnr-rates/internal/pubsub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	applyProviderFlag(&cfg, provider)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)

	proc := processor.New(bnr.NewClient(cfg.ExchangeRatesURL), notifierFactory(cfg, metricsSvc), metricsSvc)
	if cfg.PubSub.Enabled() {
		publisher, teardown, err := pubsub.New(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			log.Error("Bulletin events disabled", "error", err)
		} else {
			defer teardown()
			proc.WithPublisher(publisher, cfg.PubSub.Topic)
		}
	}

	opts := processor.Options{DryRun: dryRun, Currencies: notifier.ParseCurrencies(currencies)}
	if schedule == "" {
		runOnce(ctx, proc, opts)
		return nil
	}
	return runScheduled(ctx, proc, opts, reg)
}

// applyProviderFlag lets --provider override NOTIFY_PROVIDER, matched case-insensitively like the env value.
func applyProviderFlag(cfg *config.Config, flag string) {
	if p := strings.ToLower(strings.TrimSpace(flag)); p != "" {
		cfg.NotifyProvider = p
	}
}

// notifierFactory picks the delivery provider; credentials are checked when it is called.
func notifierFactory(cfg config.Config, m metrics.Metrics) notifier.Factory {
	return func() (notifier.Notifier, error) {
		switch cfg.NotifyProvider {
		case "telegram":
			n, err := telegram.NewNotifier(cfg.Telegram, m)
			if err != nil {
				return nil, err
			}
			return n, nil
		case "slack":
			n, err := slack.NewNotifier(cfg.Slack, m)
			if err != nil {
				return nil, err
			}
			return n, nil
		default:
			return nil, fmt.Errorf("unknown notify provider %q", cfg.NotifyProvider)
		}
	}
}

// runOnce never propagates a failure; Run has already logged it with its run id.
func runOnce(ctx context.Context, runner processor.Runner, opts processor.Options) {
	if err := runner.Run(ctx, opts); err != nil {
		log.Debug("Notification run finished with errors")
		return
	}
	log.Debug("Notification run finished")
}

func runScheduled(ctx context.Context, runner processor.Runner, opts processor.Options, reg *prometheus.Registry) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(schedule, func() { runOnce(ctx, runner, opts) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	var srv *http.Server
	if metricsPort > 0 {
		srv = &http.Server{
			Addr:    ":" + strconv.Itoa(metricsPort),
			Handler: server.NewServer(metrics.NewMetricsHandler(reg)),
		}
		go func() {
			log.Info("Metrics server started", "port", metricsPort)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Metrics server error", "error", err)
			}
		}()
	}

	c.Start()
	log.Info("Scheduler started", "schedule", schedule, "timezone", loc.String())

	<-ctx.Done()
	log.Info("Shutdown signal received")

	// Wait for a run in progress to finish.
	<-c.Stop().Done()
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Metrics server shutdown failed", "error", err)
		}
	}
	log.Info("Scheduler stopped")
	return nil
}

// cronLogger adapts the global logger to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
