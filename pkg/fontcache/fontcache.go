package fontcache

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/glyphbind/sdlttf-go/pkg/ttf"
)

// ErrNotFound indicates that a font name could not be resolved in the
// platform font directories.
var ErrNotFound = errors.New("fontcache: font not found")

// fallbackName keys the embedded fallback face in the cache.
const fallbackName = "goregular"

// Cache keeps fonts keyed by normalized name and point size, so repeated
// lookups share one native handle. Cached handles are owned by the cache;
// callers must not Close them individually.
type Cache struct {
	mu    sync.Mutex
	fonts map[cacheKey]*ttf.Font
}

type cacheKey struct {
	name   string
	ptsize int
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{fonts: make(map[cacheKey]*ttf.Font)}
}

var (
	defaultCache    *Cache
	defaultCreation sync.Once
)

// Default returns the process-wide cache.
func Default() *Cache {
	defaultCreation.Do(func() {
		defaultCache = New()
	})
	return defaultCache
}

// Normalize canonicalizes a font name for cache lookup: trimmed, spaces
// replaced, extension stripped, lowercased. "DejaVu Sans.ttf" and
// "dejavu_sans" hit the same entry.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	return strings.ToLower(name)
}

// Load returns the cached handle for (name, ptsize), resolving name through
// the platform font directories on first use. Unresolvable names fail with
// ErrNotFound.
func (c *Cache) Load(name string, ptsize int) (*ttf.Font, error) {
	key := cacheKey{name: Normalize(name), ptsize: ptsize}

	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fonts[key]; ok {
		return f, nil
	}

	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNotFound, name, err)
	}

	f, err := ttf.OpenFont(path, ptsize)
	if err != nil {
		return nil, err
	}
	c.fonts[key] = f
	return f, nil
}

// Fallback returns the embedded Go Regular face at ptsize. It is always
// available, independent of the fonts installed on the system.
func (c *Cache) Fallback(ptsize int) (*ttf.Font, error) {
	key := cacheKey{name: fallbackName, ptsize: ptsize}

	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fonts[key]; ok {
		return f, nil
	}

	f, err := ttf.OpenFontMem(goregular.TTF, ptsize)
	if err != nil {
		return nil, err
	}
	c.fonts[key] = f
	return f, nil
}

// LoadOrFallback resolves name like Load but falls back to the embedded face
// when the lookup or the load fails.
func (c *Cache) LoadOrFallback(name string, ptsize int) (*ttf.Font, error) {
	if f, err := c.Load(name, ptsize); err == nil {
		return f, nil
	}
	return c.Fallback(ptsize)
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fonts)
}

// Close releases every cached handle. The cache stays usable; subsequent
// loads reopen fonts.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for key, f := range c.fonts {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.fonts, key)
	}
	return firstErr
}
