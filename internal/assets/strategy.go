package assets

import (
	"context"
	"errors"
	"net/http"
)

// Destination classifies what a request is for, mirroring the browser's
// Request.destination.
type Destination string

const (
	DestDocument Destination = "document"
	DestStyle    Destination = "style"
	DestScript   Destination = "script"
	DestImage    Destination = "image"
	DestFont     Destination = "font"
	DestWorker   Destination = "worker"
	DestOther    Destination = ""
)

// Request describes one asset request routed through the cache.
type Request struct {
	Method      string
	URL         string
	Destination Destination
	Navigation  bool
}

// ErrNotIntercepted is returned for requests the cache never handles
// (anything that is not a GET); the caller should go straight to the network.
var ErrNotIntercepted = errors.New("request not intercepted")

// rootFallbackKey is the precached root document served when a navigation
// request fails with nothing cached for it.
const rootFallbackKey = "/index.html?rev=1"

// isStaticDestination reports whether a request targets an immutable asset
// class served cache-first.
func isStaticDestination(d Destination) bool {
	switch d {
	case DestStyle, DestScript, DestImage, DestFont, DestWorker:
		return true
	}
	return false
}

// Get serves a request according to the strategy table:
//
//	non-GET                -> never intercepted
//	navigation             -> network-first, falling back to the cached root
//	static destinations    -> cache-first with network fill-in
//	everything else (GET)  -> network-first
func (c *Cache) Get(ctx context.Context, req Request) (*Resource, error) {
	if req.Method != http.MethodGet {
		return nil, ErrNotIntercepted
	}

	if req.Navigation {
		res, err := c.networkFirst(ctx, req)
		if err == nil {
			return res, nil
		}
		if fallback, ok := c.get(c.coreBucket(), rootFallbackKey); ok {
			return fallback, nil
		}
		return nil, err
	}

	if isStaticDestination(req.Destination) {
		return c.cacheFirst(ctx, req)
	}

	return c.networkFirst(ctx, req)
}

// networkFirst tries the network, caching successful same-origin responses,
// and falls back to the runtime cache on failure.
func (c *Cache) networkFirst(ctx context.Context, req Request) (*Resource, error) {
	res, err := c.fetcher.Fetch(ctx, c.resolve(req.URL))
	if err == nil {
		if c.sameOrigin(req.URL) {
			if perr := c.put(c.runtimeBucket(), req.URL, res); perr != nil {
				// A full cache must not break serving.
				return res, nil
			}
		}
		return res, nil
	}

	if cached, ok := c.get(c.runtimeBucket(), req.URL); ok {
		return cached, nil
	}
	return nil, err
}

// cacheFirst serves from the runtime cache, filling it from the network on
// a miss.
func (c *Cache) cacheFirst(ctx context.Context, req Request) (*Resource, error) {
	if cached, ok := c.get(c.runtimeBucket(), req.URL); ok {
		return cached, nil
	}

	res, err := c.fetcher.Fetch(ctx, c.resolve(req.URL))
	if err != nil {
		return nil, err
	}
	if c.sameOrigin(req.URL) {
		if perr := c.put(c.runtimeBucket(), req.URL, res); perr != nil {
			return res, nil
		}
	}
	return res, nil
}
