package collector

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"MarketMonitor/internal/model"
)

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	// FetchHistory returns the daily closes of symbol between start and end.
	// An empty series with a nil error means the provider had no data.
	FetchHistory(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error)
	Name() string
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}
