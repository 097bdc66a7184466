package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Acme Corp - About</title></head>
<body>
<article>
<h1>Acme Corp</h1>
<p>Acme builds rocket-powered devices for discerning coyotes. The company
was founded in 2019 and has raised significant funding from notable
investors across several rounds of financing and growth.</p>
<p>Our mission is to deliver dependable gadgets anywhere in the desert,
on time and under budget, with a money-back guarantee for every single
customer order placed through our online storefront.</p>
</article>
</body>
</html>`

func TestHTTP_FetchExtractsTitleAndText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	page, err := NewHTTP().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp - About", page.Title)
	assert.Contains(t, page.Text, "rocket-powered devices")
	assert.Equal(t, http.StatusOK, page.StatusCode)
}

func TestHTTP_ErrorStatusReturnsEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	page, err := NewHTTP().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Empty(t, page.Title)
}

func TestHTTP_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTP().Fetch(ctx, srv.URL)
	assert.Error(t, err)
}

type countingFetcher struct {
	calls atomic.Int64
}

func (c *countingFetcher) Name() string { return "counting" }

func (c *countingFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	c.calls.Add(1)
	return &Page{URL: url, Title: "t"}, nil
}

func TestRateLimited_Delegates(t *testing.T) {
	inner := &countingFetcher{}
	f := NewRateLimited(inner, 100, 10)

	page, err := f.Fetch(context.Background(), "https://acme.example")
	require.NoError(t, err)
	assert.Equal(t, "t", page.Title)
	assert.Equal(t, int64(1), inner.calls.Load())
}

func TestRateLimited_DisabledPassthrough(t *testing.T) {
	inner := &countingFetcher{}
	f := NewRateLimited(inner, 0, 0)
	assert.Same(t, Fetcher(inner), f)
}

func TestRateLimited_PacesRequests(t *testing.T) {
	inner := &countingFetcher{}
	f := NewRateLimited(inner, 20, 1)

	start := time.Now()
	for i := 0; i < 4; i++ {
		_, err := f.Fetch(context.Background(), "https://acme.example")
		require.NoError(t, err)
	}
	// 4 requests at 20 rps with burst 1 needs ~150ms.
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}
