// Package webfetch implements the DocumentFetcher port over HTTP.
package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

const (
	// maxBodyBytes caps how much of a page is read.
	maxBodyBytes = 2 << 20

	userAgent = "Mozilla/5.0 (compatible; formfill/1.0)"
	accept    = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// DefaultCacheEntries is how many responses a Fetcher keeps by default.
const DefaultCacheEntries = 128

// Fetcher retrieves page markup. Up to a fixed number of responses are cached
// in memory and revalidated with ETag / Last-Modified, so repeated login-form
// checks of the same page are cheap.
type Fetcher struct {
	client *http.Client
	cache  *lruCache
}

type settings struct {
	timeout      time.Duration
	transport    http.RoundTripper
	cacheEntries int
}

// Option configures a Fetcher.
type Option func(*settings)

// WithTimeout bounds each fetch, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithTransport replaces the base transport underneath the cache.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) {
		s.transport = rt
	}
}

// WithCacheEntries bounds the response cache to n entries. Zero or a
// negative n disables caching.
func WithCacheEntries(n int) Option {
	return func(s *settings) {
		s.cacheEntries = n
	}
}

// NewFetcher creates a Fetcher with a 5s timeout and an LRU response cache
// of DefaultCacheEntries entries.
func NewFetcher(opts ...Option) *Fetcher {
	s := settings{
		timeout:      5 * time.Second,
		transport:    http.DefaultTransport,
		cacheEntries: DefaultCacheEntries,
	}
	for _, opt := range opts {
		opt(&s)
	}

	f := &Fetcher{client: &http.Client{Transport: s.transport, Timeout: s.timeout}}
	if s.cacheEntries > 0 {
		// lru.New only fails for a non-positive size.
		cache, _ := newLRUCache(s.cacheEntries)
		ct := httpcache.NewTransport(cache)
		ct.Transport = s.transport
		f.client.Transport = ct
		f.cache = cache
	}
	return f
}

// Fetch downloads pageURL. Transport failures, non-2xx responses and read
// errors are returned wrapping driven.ErrFetch. No retries are attempted.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (model.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("%w %q: %w", driven.ErrFetch, pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("%w %q: %w", driven.ErrFetch, pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.RawDocument{}, fmt.Errorf("%w %q: HTTP %d", driven.ErrFetch, pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("%w %q: read body: %w", driven.ErrFetch, pageURL, err)
	}

	return model.RawDocument{
		URL:         pageURL,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
