// Package assets fetches raw asset bytes from URLs or local files.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/logger"
)

// ErrNotFound is returned when a source does not exist.
var ErrNotFound = errors.New("asset not found")

// Manager loads assets by source string: http(s) URLs, file:// URLs or
// plain filesystem paths. Successful loads are cached in memory.
type Manager struct {
	client *http.Client
	cache  *Cache
}

// NewManager creates a new asset manager. A zero timeout waits forever.
func NewManager(timeout time.Duration) *Manager {
	return &Manager{
		client: &http.Client{Timeout: timeout},
		cache:  NewCache(),
	}
}

// Load returns the bytes behind source.
func (m *Manager) Load(ctx context.Context, source string) ([]byte, error) {
	if data, ok := m.cache.Get(source); ok {
		return data, nil
	}

	start := time.Now()
	var data []byte
	var err error
	if isRemote(source) {
		data, err = m.fetch(ctx, source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("asset loaded",
		zap.String("source", source),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)

	m.cache.Set(source, data)
	return data, nil
}

// Cache returns the manager's cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

func (m *Manager) fetch(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", source, err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", source, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetching %s: unexpected status %s", source, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

func readFile(source string) ([]byte, error) {
	path := source
	if strings.HasPrefix(source, "file://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}
		path = u.Path
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", source, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
