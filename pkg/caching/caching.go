// Package caching is a file-based TTL cache for raw page HTML. Batch runs
// over the same URL list should not re-download pages that were fetched
// recently.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a cache rooted at path, creating the directory if
// needed. Entries older than ttl are treated as misses.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// MaxAge returns the configured TTL.
func (c *Cache) MaxAge() time.Duration {
	return c.ttl
}

// entryPath hashes the URL into a stable filename. The .html extension is
// for humans poking around the cache directory.
func (c *Cache) entryPath(url string) string {
	hash := sha256.Sum256([]byte(url))
	return filepath.Join(c.path, fmt.Sprintf("%x.html", hash))
}

// Get returns the cached HTML for url and true on a fresh hit. Expired or
// unreadable entries are misses.
func (c *Cache) Get(url string) ([]byte, bool) {
	filePath := c.entryPath(url)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false
	}
	if err != nil || time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the HTML for url, overwriting any previous entry.
func (c *Cache) Set(url string, data []byte) error {
	if err := os.WriteFile(c.entryPath(url), data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
