package bnr

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const maxBodyBytes = 1 << 20

// Client fetches the BNR bulletin over HTTP.
type Client struct {
	httpClient *http.Client
	URL        string
	now        func() time.Time
}

// Ensure Client implements the Fetcher interface.
var _ Fetcher = (*Client)(nil)

// NewClient creates a bulletin client for the given feed URL.
func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		URL:        url,
		now:        time.Now,
	}
}

// FetchBulletin downloads and parses the bulletin.
// Transport failures and non-2xx responses are reported as KindNetwork,
// anything wrong with the document as KindParse.
func (c *Client) FetchBulletin(ctx context.Context) (*Bulletin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, networkError("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")
	req.Header.Set("User-Agent", "bnr-rates/1.0")

	log.Debug("Fetching rates from BNR", "url", c.URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error("Received non-OK HTTP status from BNR", "status", resp.StatusCode, "body", string(body))
		return nil, networkError("received non-OK HTTP status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, networkError("failed to read response body: %w", err)
	}

	bulletin, err := ParseBulletin(body)
	if err != nil {
		return nil, err
	}
	bulletin.FetchedAt = c.now()

	log.Info("Fetched BNR bulletin", "date", bulletin.Date.String(), "rates", len(bulletin.Rates))
	return bulletin, nil
}

