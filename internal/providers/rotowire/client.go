package rotowire

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
)

const sourceName = "rotowire"

var errNoRows = errors.New("no table rows found in document")

// Config controls how the client reaches the lineup page.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client scrapes the lineup page and extracts observed starters. Every
// failure mode surfaces as a SourceUnavailableError so callers can degrade to
// an empty lineup set instead of aborting the run.
type Client struct {
	url        string
	httpClient httpDoer
}

// NewClient constructs a rotowire client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        resolveURL(cfg.URL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchLineups retrieves and extracts the current lineup observations.
func (c *Client) FetchLineups(ctx context.Context) (providers.LineupData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return providers.Empty(), &providers.SourceUnavailableError{Source: sourceName, Err: err}
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Empty(), &providers.SourceUnavailableError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return providers.Empty(), &providers.SourceUnavailableError{Source: sourceName, StatusCode: resp.StatusCode}
	}

	rows, err := ParseRows(resp.Body)
	if err != nil {
		return providers.Empty(), &providers.SourceUnavailableError{Source: sourceName, Err: err}
	}

	return Extract(rows), nil
}

func resolveURL(raw string) string {
	if raw == "" {
		return defaultURL
	}
	return raw
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
