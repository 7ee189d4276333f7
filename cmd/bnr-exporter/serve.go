package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/mauv0809/bnr-rates/internal/config"
	server "github.com/mauv0809/bnr-rates/internal/http"
	"github.com/mauv0809/bnr-rates/internal/logging"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// newRegistry wires the bulletin collector and self metrics into a dedicated registry.
func newRegistry(fetcher bnr.Fetcher) (*prometheus.Registry, *metrics.Service) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsSvc := metrics.NewService(reg)
	reg.MustRegister(metrics.NewCollector(fetcher, metricsSvc))
	return reg, metricsSvc
}

func serve(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	reg, metricsSvc := newRegistry(bnr.NewClient(cfg.ExchangeRatesURL))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           server.NewServer(metrics.NewMetricsHandler(reg)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Prometheus metrics server started", "port", port, "source", cfg.ExchangeRatesURL)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
	return nil
}
