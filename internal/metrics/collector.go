package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes the current BNR bulletin on every scrape.
// Scrapes are serialised so that at most one upstream fetch is in flight.
type Collector struct {
	fetcher bnr.Fetcher
	metrics Metrics
	now     func() time.Time
	timeout time.Duration

	mu sync.Mutex

	rate       *prometheus.Desc
	multiplier *prometheus.Desc
	success    *prometheus.Desc
	scrapedAt  *prometheus.Desc
	updatedAt  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector that fetches through fetcher on each scrape.
// svc records fetch duration and failures; pass a Mock when that is not wanted.
func NewCollector(fetcher bnr.Fetcher, svc Metrics) *Collector {
	return &Collector{
		fetcher: fetcher,
		metrics: svc,
		now:     time.Now,
		timeout: 20 * time.Second,
		rate: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "exchange_rate"),
			"Exchange rate from BNR",
			[]string{"currency"}, nil,
		),
		multiplier: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "exchange_rate_multiplier"),
			"Exchange rate multiplier from BNR",
			[]string{"currency"}, nil,
		),
		success: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "scrape_success"),
			"Whether the last scrape was successful",
			nil, nil,
		),
		scrapedAt: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "last_scrape_timestamp"),
			"Last scrape timestamp",
			nil, nil,
		),
		updatedAt: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "last_update_timestamp"),
			"Last BNR update date as unix timestamp",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rate
	ch <- c.multiplier
	ch <- c.success
	ch <- c.scrapedAt
	ch <- c.updatedAt
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	res := c.Scrape(context.Background())

	log.Debug("Creating metrics from fetched data", "rates", len(res.Rates), "success", res.Success)
	for currency, r := range res.Rates {
		ch <- prometheus.MustNewConstMetric(c.rate, prometheus.GaugeValue, r.Value, currency)
		ch <- prometheus.MustNewConstMetric(c.multiplier, prometheus.GaugeValue, r.Multiplier, currency)
	}
	success := 0.0
	if res.Success {
		success = 1
	}
	ch <- prometheus.MustNewConstMetric(c.success, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(c.scrapedAt, prometheus.GaugeValue, res.ScrapeTimestamp)
	ch <- prometheus.MustNewConstMetric(c.updatedAt, prometheus.GaugeValue, res.UpdateTimestamp)
}

// Scrape fetches the bulletin and builds a ScrapeResult. A failed fetch yields
// an empty rate set with Success false and a zero update timestamp.
// The fetch deadline starts once the lock is held.
func (c *Collector) Scrape(ctx context.Context) ScrapeResult {
	c.mu.Lock()
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	scrapedAt := c.now()
	bulletin, err := c.fetcher.FetchBulletin(fetchCtx)
	cancel()
	c.metrics.ObserveFetchDuration(time.Since(scrapedAt).Seconds())
	c.mu.Unlock()

	res := ScrapeResult{
		Rates:           map[string]ScrapedRate{},
		ScrapeTimestamp: float64(scrapedAt.UnixNano()) / 1e9,
	}
	if err != nil {
		c.metrics.IncFetchFailures()
		log.Error("Error fetching data", "error", err)
		return res
	}

	for _, r := range bulletin.Rates {
		res.Rates[r.Currency] = ScrapedRate{
			Value:      r.Normalized().InexactFloat64(),
			Multiplier: float64(r.Units()),
		}
	}
	res.Success = true
	res.UpdateTimestamp = float64(bulletin.UpdateTimestamp())
	log.Debug("Successfully updated rates", "date", bulletin.Date.String())
	return res
}
