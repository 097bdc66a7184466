package fetch

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/rotisserie/eris"
)

// maxBodyBytes bounds how much HTML the plain fetcher will read.
const maxBodyBytes = 2 * 1024 * 1024

// HTTP is a plain net/http fetcher for environments without a
// Chromium binary. It cannot render JavaScript; readability extraction
// recovers the title and main text from static HTML.
type HTTP struct {
	client *http.Client
}

// NewHTTP creates the plain-HTTP fetcher.
func NewHTTP() *HTTP {
	return &HTTP{
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 20,
			},
		},
	}
}

func (h *HTTP) Name() string { return "http" }

// Fetch downloads the URL and extracts title and readable text.
func (h *HTTP) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: create request %s", rawURL)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: get %s", rawURL)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return &Page{URL: rawURL, StatusCode: resp.StatusCode}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: read body %s", rawURL)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: parse url %s", rawURL)
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: readability %s", rawURL)
	}

	return &Page{
		URL:        rawURL,
		Title:      article.Title,
		Text:       article.TextContent,
		StatusCode: resp.StatusCode,
	}, nil
}
