// Package text implements the browser-side text loader.
package text

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultTimeout = 30 * time.Second

var _ ports.TextLoader = (*Loader)(nil)

// Loader fetches http(s) locations over the network and reads every other
// location from the local file system.
type Loader struct {
	client *http.Client
}

// New creates a Loader using client. A nil client gets a default one.
func New(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Loader{client: client}
}

// Load returns the text at url.
func (l *Loader) Load(ctx context.Context, url string) (string, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return l.fetch(ctx, url)
	}

	data, err := os.ReadFile(strings.TrimPrefix(url, "file://")) //nolint:gosec // Location comes from configuration
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read text"), "url", url)
	}
	return string(data), nil
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to fetch text"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(zerr.New("unexpected status"), "status", resp.StatusCode)
		return "", zerr.With(err, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	return string(body), nil
}
