package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/lingokit/lingo"
)

// maxBundleSize bounds how much of a remote response is read.
const maxBundleSize = 8 << 20

// HTTP fetches bundles from a remote endpoint. The URL pattern must contain
// one %s verb that receives the locale, e.g.
// "https://cdn.example.com/i18n/%s.json".
type HTTP struct {
	client     *http.Client
	urlPattern string
}

// NewHTTP creates an HTTP-backed bundle loader. A nil client uses
// http.DefaultClient.
func NewHTTP(client *http.Client, urlPattern string) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{client: client, urlPattern: urlPattern}
}

// Load fetches and parses the bundle for a locale.
func (l *HTTP) Load(ctx context.Context, locale string) (lingo.Bundle, error) {
	url := fmt.Sprintf(l.urlPattern, locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: locale %q", ErrBundleNotFound, locale)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loader: unexpected status %d fetching %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBundleSize))
	if err != nil {
		return nil, err
	}

	return decodeBundle(url, data)
}

var _ lingo.Loader = (*HTTP)(nil)
