package tabular

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fetcher opens tabular sources from local files or http(s) URLs
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher whose HTTP requests time out after timeout (0 = no timeout)
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Open returns a reader for source. The caller closes it.
func (f *Fetcher) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("empty source")
	}

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, source)
	}
	return resp.Body, nil
}

// Load opens and parses one table
func (f *Fetcher) Load(ctx context.Context, table, source string) ([]Record, error) {
	rc, err := f.Open(ctx, source)
	if err != nil {
		return nil, &LoadError{Table: table, Source: source, Err: err}
	}
	defer func() { _ = rc.Close() }()

	recs, err := Parse(rc)
	if err != nil {
		return nil, &LoadError{Table: table, Source: source, Err: err}
	}
	return recs, nil
}
