package fontcache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphbind/sdlttf-go/pkg/fontcache"
	"github.com/glyphbind/sdlttf-go/pkg/ttf"
)

func initTTF(t *testing.T) {
	t.Helper()

	err := ttf.Init()
	if errors.Is(err, ttf.ErrNotBuilt) {
		t.Skip("native bindings not built")
	}
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(ttf.Quit)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DejaVu Sans.ttf", "dejavu_sans"},
		{"dejavu_sans", "dejavu_sans"},
		{"  Roboto Mono  ", "roboto_mono"},
		{"Arial.TTF", "arial"},
		{"Noto Sans CJK.otf", "noto_sans_cjk"},
		{"a.b.c", "a.b"},
		{".hidden", ".hidden"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, fontcache.Normalize(tc.in))
		})
	}
}

func TestFallbackIsCached(t *testing.T) {
	initTTF(t)

	cache := fontcache.New()
	t.Cleanup(func() { _ = cache.Close() })

	first, err := cache.Fallback(18)
	require.NoError(t, err)
	second, err := cache.Fallback(18)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	// A different size is a different entry.
	other, err := cache.Fallback(24)
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, cache.Len())
}

func TestLoadUnknownName(t *testing.T) {
	initTTF(t)

	cache := fontcache.New()
	t.Cleanup(func() { _ = cache.Close() })

	_, err := cache.Load("no-such-font-name-zzz", 14)
	assert.ErrorIs(t, err, fontcache.ErrNotFound)
	assert.Equal(t, 0, cache.Len())
}

func TestLoadOrFallback(t *testing.T) {
	initTTF(t)

	cache := fontcache.New()
	t.Cleanup(func() { _ = cache.Close() })

	font, err := cache.LoadOrFallback("no-such-font-name-zzz", 14)
	require.NoError(t, err)

	fallback, err := cache.Fallback(14)
	require.NoError(t, err)
	assert.Same(t, fallback, font)
}

func TestLoadSystemFont(t *testing.T) {
	initTTF(t)

	cache := fontcache.New()
	t.Cleanup(func() { _ = cache.Close() })

	// Try a few faces commonly installed across platforms; skip when the
	// host has none of them.
	candidates := []string{
		"DejaVuSans.ttf",
		"LiberationSans-Regular.ttf",
		"FreeSans.ttf",
		"Arial.ttf",
		"Helvetica.ttc",
	}
	var font *ttf.Font
	var name string
	for _, c := range candidates {
		f, err := cache.Load(c, 16)
		if err == nil {
			font, name = f, c
			break
		}
	}
	if font == nil {
		t.Skip("no known system font installed")
	}

	again, err := cache.Load(name, 16)
	require.NoError(t, err)
	assert.Same(t, font, again)

	family, err := font.FamilyName()
	require.NoError(t, err)
	assert.NotEmpty(t, family)
}

func TestCloseReleasesHandles(t *testing.T) {
	initTTF(t)

	cache := fontcache.New()

	_, err := cache.Fallback(12)
	require.NoError(t, err)
	_, err = cache.Fallback(20)
	require.NoError(t, err)
	require.Equal(t, 2, ttf.OpenFonts())

	require.NoError(t, cache.Close())
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, ttf.OpenFonts())

	// The cache stays usable after Close.
	_, err = cache.Fallback(12)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
	require.NoError(t, cache.Close())
}
