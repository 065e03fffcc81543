package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/sasha-s/go-deadlock"

	"github.com/Faultbox/neonmaze/pkg/formats"
)

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   deadlock.Mutex

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

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// meshCacheVersion invalidates entries written by an older layout.
const meshCacheVersion = 1

type meshRecord struct {
	Version   int              `cbor:"1,keyasint"`
	Positions []float32        `cbor:"2,keyasint"`
	Normals   []float32        `cbor:"3,keyasint"`
	Texcoords []float32        `cbor:"4,keyasint"`
	Stats     formats.OBJStats `cbor:"5,keyasint"`
}

// MeshCache stores parsed meshes on disk, keyed by the hash of the source bytes.
type MeshCache struct {
	dir string
	mu  deadlock.Mutex
}

// NewMeshCache creates the cache directory if needed.
func NewMeshCache(dir string) (*MeshCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &MeshCache{dir: dir}, nil
}

// MeshKey returns the cache key for raw mesh bytes.
func MeshKey(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func (c *MeshCache) path(key string) string {
	return filepath.Join(c.dir, key+".cbor")
}

// Get returns the cached mesh for key. Unreadable or stale entries are misses.
func (c *MeshCache) Get(key string) (*formats.OBJ, bool) {
	c.mu.Lock()
	data, err := os.ReadFile(c.path(key))
	c.mu.Unlock()
	if err != nil {
		return nil, false
	}

	var rec meshRecord
	if err := cbor.Unmarshal(data, &rec); err != nil || rec.Version != meshCacheVersion {
		return nil, false
	}
	return &formats.OBJ{
		VertexData: formats.VertexData{Positions: rec.Positions, Normals: rec.Normals},
		Texcoords:  rec.Texcoords,
		Stats:      rec.Stats,
	}, true
}

// Put writes mesh under key.
func (c *MeshCache) Put(key string, mesh *formats.OBJ) error {
	data, err := cbor.Marshal(meshRecord{
		Version:   meshCacheVersion,
		Positions: mesh.Positions,
		Normals:   mesh.Normals,
		Texcoords: mesh.Texcoords,
		Stats:     mesh.Stats,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path(key))
}
