// Package assets implements the offline asset cache backing the presenter.
// It mirrors the service-worker contract of the browser build: a fixed list
// of core assets pre-cached at install time, navigation requests served
// network-first with a cached-root fallback, static assets cache-first with
// network fill-in, and everything else network-first. Only same-origin GET
// responses are ever cached.
package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// CacheVersion tags the bucket names; bumping it invalidates every cached
// entry on activation.
const CacheVersion = "v1"

// Bucket name prefixes. The version is appended so stale generations can be
// swept by ActivateVersion.
const (
	coreBucketPrefix    = "core-"
	runtimeBucketPrefix = "runtime-"
)

// CoreAsset is one entry of the install-time precache list. The revision is
// folded into the cache key so a revision bump forces a refetch.
type CoreAsset struct {
	URL      string `json:"url"`
	Revision string `json:"revision"`
}

// DefaultCoreAssets lists the assets pre-cached at install time.
var DefaultCoreAssets = []CoreAsset{
	{URL: "/", Revision: "1"},
	{URL: "/index.html", Revision: "1"},
	{URL: "/manifest.json", Revision: "1"},
	{URL: "/index.css", Revision: "1"},
}

// entry is the stored form of a cached response.
type entry struct {
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"body"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Cache is the bbolt-backed asset cache.
type Cache struct {
	db      *bolt.DB
	fetcher Fetcher
	origin  string // scheme://host of the deck origin
}

// Open opens or creates the asset cache database.
func Open(path, origin string, fetcher Fetcher) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open asset cache: %w", err)
	}

	c := &Cache{db: db, fetcher: fetcher, origin: strings.TrimSuffix(origin, "/")}
	if err := c.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(c.coreBucket()); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(c.runtimeBucket())
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache buckets: %w", err)
	}
	return c, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) coreBucket() []byte    { return []byte(coreBucketPrefix + CacheVersion) }
func (c *Cache) runtimeBucket() []byte { return []byte(runtimeBucketPrefix + CacheVersion) }

// Precache fetches and stores the core asset list. A failed core asset fails
// the install, matching cache.addAll semantics.
func (c *Cache) Precache(ctx context.Context, assets []CoreAsset) error {
	for _, asset := range assets {
		key := asset.URL + "?rev=" + asset.Revision
		res, err := c.fetcher.Fetch(ctx, c.origin+asset.URL)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset.URL, err)
		}
		if err := c.put(c.coreBucket(), key, res); err != nil {
			return err
		}
	}
	return nil
}

// ActivateVersion deletes buckets belonging to older cache versions.
func (c *Cache) ActivateVersion() error {
	keep := map[string]bool{
		string(c.coreBucket()):    true,
		string(c.runtimeBucket()): true,
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		var stale [][]byte
		err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if !keep[string(name)] {
				stale = append(stale, append([]byte(nil), name...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, name := range stale {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Cache) put(bucket []byte, key string, res *Resource) error {
	data, err := json.Marshal(entry{
		ContentType: res.ContentType,
		Body:        res.Body,
		FetchedAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (c *Cache) get(bucket []byte, key string) (*Resource, bool) {
	var res *Resource
	c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil
		}
		res = &Resource{ContentType: e.ContentType, Body: e.Body}
		return nil
	})
	return res, res != nil
}

// resolve joins a relative request URL to the deck origin so the fetcher
// receives an absolute URL. Cache keys keep the request's original form.
func (c *Cache) resolve(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != "" {
		return rawURL
	}
	return c.origin + rawURL
}

// sameOrigin reports whether a URL belongs to the deck origin. Relative URLs
// are same-origin by construction.
func (c *Cache) sameOrigin(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return true
	}
	return u.Scheme+"://"+u.Host == c.origin
}
