// Package assets handles game asset loading and caching.
package assets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no root holds the requested asset.
	ErrNotFound = errors.New("asset not found")
	// ErrBadStatus is returned when an HTTP root answers with a non-2xx status.
	ErrBadStatus = errors.New("bad status")
)

// Options configures a Manager.
type Options struct {
	CacheDir    string        // parsed-mesh cache directory, empty disables it
	HTTPTimeout time.Duration // per-request timeout for http(s) roots
	Concurrency int           // parallel loads in LoadMeshes
	Logger      *zap.Logger
}

// Manager handles asset loading from search roots.
type Manager struct {
	roots       []Root
	cache       *Cache
	meshes      *MeshCache
	client      *http.Client
	concurrency int
	log         *zap.Logger
	mu          deadlock.RWMutex
}

// NewManager creates a new asset manager.
// A mesh cache directory that cannot be created is logged and skipped.
func NewManager(opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	timeout := opts.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	m := &Manager{
		cache:       NewCache(),
		client:      &http.Client{Timeout: timeout},
		concurrency: concurrency,
		log:         log,
	}

	if opts.CacheDir != "" {
		meshes, err := NewMeshCache(opts.CacheDir)
		if err != nil {
			log.Warn("mesh cache disabled", zap.String("dir", opts.CacheDir), zap.Error(err))
		} else {
			m.meshes = meshes
		}
	}
	return m
}

// AddRoot adds a search root: a directory or an http(s) base URL.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(target string) error {
	var root Root
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		root = newHTTPRoot(m.client, target)
	} else {
		dir, err := newDirRoot(target)
		if err != nil {
			return fmt.Errorf("adding root %s: %w", target, err)
		}
		root = dir
	}

	m.mu.Lock()
	m.roots = append(m.roots, root)
	m.mu.Unlock()

	m.log.Debug("asset root added", zap.Stringer("root", root))
	return nil
}

// AddRoots adds every target and reports all failures together.
func (m *Manager) AddRoots(targets []string) error {
	var err error
	for _, target := range targets {
		err = multierr.Append(err, m.AddRoot(target))
	}
	return err
}

// Roots returns the number of registered roots.
func (m *Manager) Roots() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.roots)
}

// Load loads a file from the roots.
func (m *Manager) Load(ctx context.Context, name string) ([]byte, error) {
	// Check cache first
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	roots := append([]Root(nil), m.roots...)
	m.mu.RUnlock()

	var failures error
	for i := len(roots) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := roots[i].ReadFile(ctx, name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, ErrNotFound) {
			failures = multierr.Append(failures, err)
		}
	}

	if failures != nil {
		return nil, fmt.Errorf("loading %s: %w", name, failures)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Stats returns in-memory cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all roots and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roots = nil
	m.cache.Clear()
	m.client.CloseIdleConnections()
}
