package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// bodyTextJS strips scripts and styles before reading visible text, so
// extractors only see what a human would.
const bodyTextJS = `() => {
	document.querySelectorAll('script, style, noscript').forEach(el => el.remove());
	const body = document.querySelector('body');
	return body ? body.innerText : '';
}`

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Browser fetches pages through a shared headless Chromium instance.
// The browser launches lazily on the first Fetch and is safe for
// concurrent use; each Fetch gets its own page/tab.
type Browser struct {
	mu       sync.Mutex
	browser  *rod.Browser
	cleanup  func()
	settle   time.Duration
	bin      string
	headless bool
}

// BrowserOption configures the Browser fetcher.
type BrowserOption func(*Browser)

// WithSettleDelay sets the wait after load for dynamic content.
func WithSettleDelay(d time.Duration) BrowserOption {
	return func(b *Browser) { b.settle = d }
}

// WithBin sets an explicit Chromium binary path.
func WithBin(path string) BrowserOption {
	return func(b *Browser) { b.bin = path }
}

// WithHeadless toggles headless mode (on by default).
func WithHeadless(headless bool) BrowserOption {
	return func(b *Browser) { b.headless = headless }
}

// NewBrowser creates a Browser fetcher. Call Close when done.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{
		settle:   2 * time.Second,
		headless: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Browser) Name() string { return "browser" }

// ensureStarted launches Chromium once, on first use.
func (b *Browser) ensureStarted() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.browser != nil {
		return nil
	}

	l := launcher.New().Headless(b.headless)
	if b.bin != "" {
		l = l.Bin(b.bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return eris.Wrap(err, "fetch: launch chromium")
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return eris.Wrap(err, "fetch: connect to chromium")
	}

	b.browser = browser
	b.cleanup = l.Cleanup
	zap.L().Info("fetch: browser started")
	return nil
}

// Fetch navigates to the URL in a fresh tab, waits for load plus the
// settle delay, and returns the title and visible body text. The
// caller's context bounds the whole operation.
func (b *Browser) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := b.ensureStarted(); err != nil {
		return nil, err
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, eris.Wrap(err, "fetch: create page")
	}
	defer page.Close() //nolint:errcheck
	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: defaultUserAgent}); err != nil {
		return nil, eris.Wrap(err, "fetch: set user agent")
	}

	if err := page.Navigate(url); err != nil {
		return nil, eris.Wrapf(err, "fetch: navigate %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, eris.Wrapf(err, "fetch: wait load %s", url)
	}

	// Let dynamic content render.
	select {
	case <-ctx.Done():
		return nil, eris.Wrap(ctx.Err(), "fetch: settle")
	case <-time.After(b.settle):
	}

	info, err := page.Info()
	if err != nil {
		return nil, eris.Wrap(err, "fetch: page info")
	}

	res, err := page.Eval(bodyTextJS)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: read body text")
	}

	return &Page{
		URL:        url,
		Title:      info.Title,
		Text:       res.Value.Str(),
		StatusCode: 200,
	}, nil
}

// Close shuts the shared browser down.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.browser == nil {
		return nil
	}
	err := b.browser.Close()
	if b.cleanup != nil {
		b.cleanup()
	}
	b.browser = nil
	return err
}
