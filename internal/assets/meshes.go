package assets

import (
	"context"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/neonmaze/pkg/formats"
)

// LoadOBJ loads and parses an OBJ mesh, consulting the disk mesh cache.
func (m *Manager) LoadOBJ(ctx context.Context, name string) (*formats.OBJ, error) {
	data, err := m.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	var key string
	if m.meshes != nil {
		key = MeshKey(data)
		if mesh, ok := m.meshes.Get(key); ok {
			m.log.Debug("mesh cache hit", zap.String("name", name), zap.String("key", key))
			return mesh, nil
		}
	}

	mesh := formats.ParseOBJ(data)
	if mesh.Empty() {
		m.log.Warn("mesh has no triangles", zap.String("name", name))
	}

	if m.meshes != nil {
		if err := m.meshes.Put(key, mesh); err != nil {
			m.log.Warn("mesh cache write failed", zap.String("name", name), zap.Error(err))
		}
	}
	return mesh, nil
}

// LoadMeshes loads every named mesh in parallel.
// It returns the meshes that loaded plus the combined failures of the rest.
func (m *Manager) LoadMeshes(ctx context.Context, names []string) (map[string]*formats.OBJ, error) {
	var (
		mu       deadlock.Mutex
		out      = make(map[string]*formats.OBJ, len(names))
		failures error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		g.Go(func() error {
			mesh, err := m.LoadOBJ(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = multierr.Append(failures, err)
				return nil
			}
			out[name] = mesh
			return nil
		})
	}
	_ = g.Wait()

	if failures != nil {
		m.log.Warn("some meshes failed to load",
			zap.Int("loaded", len(out)),
			zap.Int("failed", len(multierr.Errors(failures))),
			zap.Error(failures))
	}
	return out, failures
}
