// Package fontcache resolves font names to open ttf handles and caches them
// by name and point size.
//
// Names are matched against the platform font directories; when a name
// cannot be resolved, callers can fall back to the embedded Go Regular face,
// which keeps text rendering available on systems with no fonts installed at
// all. The cache owns the handles it hands out: close the cache, not the
// individual fonts.
//
//	cache := fontcache.New()
//	defer cache.Close()
//
//	font, err := cache.LoadOrFallback("DejaVu Sans", 18)
//
// The ttf subsystem must be initialized before fonts are loaded.
package fontcache
