package noaa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/metar-etl/internal/domain"
	"github.com/couchcryptid/metar-etl/internal/observability"
)

// Client implements domain.StationFetcher against the NOAA station feed,
// which serves the latest report of each station as <base>/<ICAO>.TXT.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a NOAA station feed client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch returns the status code and body of the station file.
func (c *Client) Fetch(ctx context.Context, station string) (int, string, error) {
	u := fmt.Sprintf("%s/%s.TXT", c.baseURL, url.PathEscape(strings.ToUpper(station)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.NOAAFetchDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return 0, "", fmt.Errorf("station %s request: %w", station, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read station %s: %w", station, err)
	}
	return resp.StatusCode, string(body), nil
}

// Latest fetches and parses the latest report for station.
func (c *Client) Latest(ctx context.Context, station string) (domain.Bulletin, error) {
	status, body, err := c.Fetch(ctx, station)
	if err != nil {
		c.record("error")
		return domain.Bulletin{}, err
	}

	switch {
	case status == http.StatusNotFound:
		c.record("not_found")
		return domain.Bulletin{}, fmt.Errorf("%s: %w", station, domain.ErrStationNotFound)
	case status != http.StatusOK:
		c.record("error")
		return domain.Bulletin{}, fmt.Errorf("noaa error: status %d: %s", status, firstLine(body))
	}

	b, err := domain.ParseBulletin(body)
	if err != nil {
		c.record("error")
		return domain.Bulletin{}, fmt.Errorf("%s: %w", station, err)
	}

	c.record("success")
	c.logger.Debug("station report fetched", "station", station, "issued_at", b.IssuedAt)
	return b, nil
}

func (c *Client) record(outcome string) {
	if c.metrics != nil {
		c.metrics.NOAAFetches.WithLabelValues(outcome).Inc()
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
