package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/mauv0809/bnr-rates/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, fetcher bnr.Fetcher) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc := metrics.NewService(reg)
	reg.MustRegister(metrics.NewCollector(fetcher, svc))
	return NewServer(metrics.NewMetricsHandler(reg))
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t, bnr.NewMock())

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestIndexHandler(t *testing.T) {
	server := setupTestServer(t, bnr.NewMock())

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `href="/metrics"`)

	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsHandler(t *testing.T) {
	b, err := bnr.ParseBulletin([]byte(`<Cube date="2024-01-15"><Rate currency="USD">4.5000</Rate><Rate currency="JPY" multiplier="100">3.2000</Rate></Cube>`))
	require.NoError(t, err)
	fetcher := bnr.NewMock()
	fetcher.FetchBulletinFunc = func(ctx context.Context) (*bnr.Bulletin, error) { return b, nil }
	server := setupTestServer(t, fetcher)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `bnr_exchange_rate{currency="JPY"} 320`)
	assert.Contains(t, body, `bnr_exchange_rate{currency="USD"} 4.5`)
	assert.Contains(t, body, `bnr_exchange_rate_multiplier{currency="JPY"} 100`)
	assert.Contains(t, body, "bnr_scrape_success 1")
	assert.Equal(t, 1, fetcher.Calls())
}
