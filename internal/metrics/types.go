package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the self-instrumentation metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	FetchDuration       prometheus.Histogram
	FetchFailures       prometheus.Counter
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}

// ScrapedRate is one currency as exposed by the collector.
type ScrapedRate struct {
	Value      float64
	Multiplier float64
}

// ScrapeResult is the self-consistent outcome of one scrape.
type ScrapeResult struct {
	Rates           map[string]ScrapedRate
	Success         bool
	ScrapeTimestamp float64
	UpdateTimestamp float64
}
