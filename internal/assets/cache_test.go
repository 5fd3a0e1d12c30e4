package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

// fakeFetcher serves canned responses per URL and counts fetches.
type fakeFetcher struct {
	responses map[string]*Resource
	failing   map[string]bool
	fetches   map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: make(map[string]*Resource),
		failing:   make(map[string]bool),
		fetches:   make(map[string]int),
	}
}

func (f *fakeFetcher) serve(url, contentType, body string) {
	f.responses[url] = &Resource{ContentType: contentType, Body: []byte(body)}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*Resource, error) {
	f.fetches[url]++
	if f.failing[url] {
		return nil, errors.New("network down")
	}
	res, ok := f.responses[url]
	if !ok {
		return nil, &FetchError{URL: url, Status: http.StatusNotFound}
	}
	return res, nil
}

func newTestCache(t *testing.T) (*Cache, *fakeFetcher) {
	t.Helper()
	fetcher := newFakeFetcher()
	c, err := Open(filepath.Join(t.TempDir(), "assets.db"), "http://localhost:8460", fetcher)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, fetcher
}

// ==================== Precache Tests ====================

func TestCache_Precache(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("http://localhost:8460/index.html", "text/html", "<html>")
	fetcher.serve("http://localhost:8460/index.css", "text/css", "body{}")

	err := c.Precache(context.Background(), []CoreAsset{
		{URL: "/index.html", Revision: "1"},
		{URL: "/index.css", Revision: "1"},
	})
	require.NoError(t, err)

	res, ok := c.get(c.coreBucket(), "/index.html?rev=1")
	require.True(t, ok)
	assert.Equal(t, "text/html", res.ContentType)
}

func TestCache_PrecacheFailsAtomically(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("http://localhost:8460/index.html", "text/html", "<html>")
	// /index.css not served: the install must fail

	err := c.Precache(context.Background(), []CoreAsset{
		{URL: "/index.html", Revision: "1"},
		{URL: "/index.css", Revision: "1"},
	})
	assert.Error(t, err)
}

// ==================== Strategy Tests ====================

func TestCache_NonGetNotIntercepted(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), Request{Method: http.MethodPost, URL: "/api"})
	assert.ErrorIs(t, err, ErrNotIntercepted)
}

func TestCache_NavigationNetworkFirst(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("http://localhost:8460/page", "text/html", "fresh")

	res, err := c.Get(context.Background(), Request{
		Method: http.MethodGet, URL: "/page", Navigation: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(res.Body))
	assert.Equal(t, 1, fetcher.fetches["http://localhost:8460/page"])
}

func TestCache_NavigationFallsBackToCachedRoot(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("http://localhost:8460/index.html", "text/html", "cached root")
	require.NoError(t, c.Precache(context.Background(), []CoreAsset{
		{URL: "/index.html", Revision: "1"},
	}))
	fetcher.failing["http://localhost:8460/page"] = true

	res, err := c.Get(context.Background(), Request{
		Method: http.MethodGet, URL: "/page", Navigation: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "cached root", string(res.Body))
}

func TestCache_NavigationFailsWithEmptyCache(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.failing["http://localhost:8460/page"] = true

	_, err := c.Get(context.Background(), Request{
		Method: http.MethodGet, URL: "/page", Navigation: true,
	})
	assert.Error(t, err)
}

func TestCache_StaticCacheFirst(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("http://localhost:8460/app.js", "text/javascript", "code")

	req := Request{Method: http.MethodGet, URL: "/app.js", Destination: DestScript}

	// First request fills the cache from the network
	res, err := c.Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "code", string(res.Body))
	assert.Equal(t, 1, fetcher.fetches["http://localhost:8460/app.js"])

	// Second request is served from cache, no refetch
	res, err = c.Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "code", string(res.Body))
	assert.Equal(t, 1, fetcher.fetches["http://localhost:8460/app.js"])
}

func TestCache_NetworkFirstFallsBackToRuntimeCache(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("http://localhost:8460/data.json", "application/json", "{}")

	req := Request{Method: http.MethodGet, URL: "/data.json"}

	// Populate the runtime cache, then kill the network
	_, err := c.Get(context.Background(), req)
	require.NoError(t, err)
	fetcher.failing["http://localhost:8460/data.json"] = true

	res, err := c.Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(res.Body))
}

func TestCache_CrossOriginNotCached(t *testing.T) {
	c, fetcher := newTestCache(t)
	fetcher.serve("https://cdn.example.com/font.woff2", "font/woff2", "glyphs")

	req := Request{
		Method: http.MethodGet, URL: "https://cdn.example.com/font.woff2",
		Destination: DestFont,
	}

	_, err := c.Get(context.Background(), req)
	require.NoError(t, err)

	// Cross-origin responses are never written to the cache
	_, ok := c.get(c.runtimeBucket(), "https://cdn.example.com/font.woff2")
	assert.False(t, ok)
}

func TestCache_SameOrigin(t *testing.T) {
	c, _ := newTestCache(t)

	assert.True(t, c.sameOrigin("/relative/path"))
	assert.True(t, c.sameOrigin("http://localhost:8460/abs"))
	assert.False(t, c.sameOrigin("https://other.example.com/x"))
}

func TestCache_ResolvesRelativeURLsAgainstOrigin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/app.js" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/javascript")
		w.Write([]byte("code"))
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client(), &RetryConfig{
		MaxRetries:     0,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	})
	c, err := Open(filepath.Join(t.TempDir(), "assets.db"), srv.URL, fetcher)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	// A bare request path reaches the real origin
	req := Request{Method: http.MethodGet, URL: "/app.js", Destination: DestScript}
	res, err := c.Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "code", string(res.Body))

	// The runtime cache fills under the request path and serves offline
	srv.Close()
	res, err = c.Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "code", string(res.Body))
}

// ==================== Version Tests ====================

func TestCache_ActivateVersionSweepsStaleBuckets(t *testing.T) {
	c, _ := newTestCache(t)

	// Plant a stale bucket from an older version
	require.NoError(t, c.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("core-v0"))
		return err
	}))

	require.NoError(t, c.ActivateVersion())

	c.db.View(func(tx *bolt.Tx) error {
		assert.Nil(t, tx.Bucket([]byte("core-v0")))
		assert.NotNil(t, tx.Bucket(c.coreBucket()))
		assert.NotNil(t, tx.Bucket(c.runtimeBucket()))
		return nil
	})
}
