package ttf

import (
	"fmt"

	"github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"
)

// MemorySource is the Source value of fonts opened from a byte buffer.
const MemorySource = "<memory>"

// Font is an exclusive handle to one loaded, sized face. Handles are created
// by the Open* constructors and released by Close; after Close (or after
// Quit closes a leaked handle) every operation fails with ErrFontClosed
// instead of touching freed native memory.
//
// All methods serialize on the package mutex, so a *Font may be shared
// across goroutines without extra locking.
type Font struct {
	h      backend.Font
	mem    backend.Mem
	source string
	ptsize int
	index  int
}

// OpenFont loads the first face of the font file at path, sized in points.
func OpenFont(path string, ptsize int) (*Font, error) {
	return OpenFontIndex(path, ptsize, 0)
}

// OpenFontIndex loads the face at index from the font file at path. Indexes
// other than 0 address faces inside collection files.
func OpenFontIndex(path string, ptsize, index int) (*Font, error) {
	mu.Lock()
	defer mu.Unlock()

	if !inited {
		return nil, ErrNotInitialized
	}
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrFontLoad)
	}
	if err := checkOpenArgs(ptsize, index); err != nil {
		return nil, err
	}

	h, err := backend.OpenFont(path, ptsize, index)
	if err != nil {
		return nil, remapNative(ErrFontLoad, err)
	}

	f := &Font{h: h, source: path, ptsize: ptsize, index: index}
	fonts[f] = struct{}{}
	return f, nil
}

// OpenFontMem loads the first face of an in-memory font image. The bytes are
// copied before the native loader sees them, so the caller may reuse data
// immediately.
func OpenFontMem(data []byte, ptsize int) (*Font, error) {
	return OpenFontMemIndex(data, ptsize, 0)
}

// OpenFontMemIndex loads the face at index from an in-memory font image.
func OpenFontMemIndex(data []byte, ptsize, index int) (*Font, error) {
	mu.Lock()
	defer mu.Unlock()

	if !inited {
		return nil, ErrNotInitialized
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: font data is empty", ErrFontLoad)
	}
	if err := checkOpenArgs(ptsize, index); err != nil {
		return nil, err
	}

	h, m, err := backend.OpenFontMem(data, ptsize, index)
	if err != nil {
		return nil, remapNative(ErrFontLoad, err)
	}

	f := &Font{h: h, mem: m, source: MemorySource, ptsize: ptsize, index: index}
	fonts[f] = struct{}{}
	return f, nil
}

func checkOpenArgs(ptsize, index int) error {
	if ptsize <= 0 {
		return fmt.Errorf("%w: point size %d is not positive", ErrFontLoad, ptsize)
	}
	if index < 0 {
		return fmt.Errorf("%w: face index %d is negative", ErrFontLoad, index)
	}
	return nil
}

// Close releases the native font and, for memory-loaded fonts, the buffer
// copy backing it. Closing an already-closed font is a no-op, never an
// error, so deferred cleanup composes with explicit cleanup.
func (f *Font) Close() error {
	if f == nil {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return nil
	}
	f.closeLocked()
	return nil
}

// closeLocked releases the native resources and drops the handle from the
// live set. Caller holds mu.
func (f *Font) closeLocked() {
	backend.CloseFont(f.h, f.mem)
	f.h = nil
	f.mem = nil
	delete(fonts, f)
}

// Source returns the font file path, or MemorySource for fonts opened from a
// byte buffer.
func (f *Font) Source() string { return f.source }

// PointSize returns the size the face was opened at.
func (f *Font) PointSize() int { return f.ptsize }

// Index returns the face index the font was opened with.
func (f *Font) Index() int { return f.index }

// Style returns the current style bitmask.
func (f *Font) Style() (Style, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return StyleNormal, ErrFontClosed
	}
	return Style(backend.FontStyle(f.h)), nil
}

// SetStyle replaces the style bitmask. Style changes flush the native glyph
// cache, so toggling styles between renders has a rasterization cost.
func (f *Font) SetStyle(s Style) error {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return ErrFontClosed
	}
	backend.SetFontStyle(f.h, int(s))
	return nil
}

// Outline returns the outline width in pixels, 0 when disabled.
func (f *Font) Outline() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, ErrFontClosed
	}
	return backend.FontOutline(f.h), nil
}

// SetOutline sets the outline width in pixels; 0 disables outlining.
func (f *Font) SetOutline(px int) error {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return ErrFontClosed
	}
	backend.SetFontOutline(f.h, px)
	return nil
}

// Hinting returns the rasterizer hinting mode.
func (f *Font) Hinting() (Hinting, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return HintingNormal, ErrFontClosed
	}
	return Hinting(backend.FontHinting(f.h)), nil
}

// SetHinting selects the rasterizer hinting mode.
func (f *Font) SetHinting(h Hinting) error {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return ErrFontClosed
	}
	backend.SetFontHinting(f.h, int(h))
	return nil
}

// Kerning reports whether kerning adjustments are applied between glyphs.
func (f *Font) Kerning() (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return false, ErrFontClosed
	}
	return backend.FontKerning(f.h), nil
}

// SetKerning toggles kerning adjustments.
func (f *Font) SetKerning(enabled bool) error {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return ErrFontClosed
	}
	backend.SetFontKerning(f.h, enabled)
	return nil
}

// Height returns the maximum pixel height over all glyphs. It does not
// include the line gap; use LineSkip for line spacing.
func (f *Font) Height() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, ErrFontClosed
	}
	return backend.FontHeight(f.h), nil
}

// Ascent returns the maximum pixel rise above the baseline.
func (f *Font) Ascent() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, ErrFontClosed
	}
	return backend.FontAscent(f.h), nil
}

// Descent returns the maximum pixel drop below the baseline, as a
// non-positive value.
func (f *Font) Descent() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, ErrFontClosed
	}
	return backend.FontDescent(f.h), nil
}

// LineSkip returns the recommended baseline-to-baseline spacing, which
// includes the face's line gap.
func (f *Font) LineSkip() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, ErrFontClosed
	}
	return backend.FontLineSkip(f.h), nil
}

// Faces returns the number of faces in the underlying font file.
func (f *Font) Faces() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, ErrFontClosed
	}
	return backend.FontFaces(f.h), nil
}

// FixedWidth reports whether the face is monospaced.
func (f *Font) FixedWidth() (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return false, ErrFontClosed
	}
	return backend.FontFixedWidth(f.h), nil
}

// FamilyName returns the face's family name, or "" when the face has no
// name table entry.
func (f *Font) FamilyName() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return "", ErrFontClosed
	}
	return backend.FontFamilyName(f.h), nil
}

// StyleName returns the face's style name, or "" when absent.
func (f *Font) StyleName() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return "", ErrFontClosed
	}
	return backend.FontStyleName(f.h), nil
}

// GlyphIsProvided reports whether the face supplies a glyph for r. The
// native entry point addresses the Basic Multilingual Plane only, so runes
// above U+FFFF fail with ErrInvalidEncoding.
func (f *Font) GlyphIsProvided(r rune) (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return false, ErrFontClosed
	}
	cp, err := bmpCodePoint(r)
	if err != nil {
		return false, err
	}
	return backend.GlyphIsProvided(f.h, cp), nil
}

// GlyphMetrics returns the bounding box and advance of the glyph for r,
// subject to the same Basic Multilingual Plane limit as GlyphIsProvided.
func (f *Font) GlyphMetrics(r rune) (GlyphMetrics, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return GlyphMetrics{}, ErrFontClosed
	}
	cp, err := bmpCodePoint(r)
	if err != nil {
		return GlyphMetrics{}, err
	}

	minX, maxX, minY, maxY, advance, err := backend.GlyphMetrics(f.h, cp)
	if err != nil {
		return GlyphMetrics{}, remapNative(ErrRenderFailed, err)
	}
	return GlyphMetrics{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, Advance: advance}, nil
}

// SizeText measures the rendered extent of text without producing pixels.
// Empty text measures (0, 0) without a native call; the native entry points
// disagree about empty strings, so the wrapper defines the answer.
func (f *Font) SizeText(text string) (w, h int, err error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return 0, 0, ErrFontClosed
	}
	if text == "" {
		return 0, 0, nil
	}
	if err := validateText(text); err != nil {
		return 0, 0, err
	}

	w, h, err = backend.SizeUTF8(f.h, text)
	if err != nil {
		return 0, 0, remapNative(ErrRenderFailed, err)
	}
	return w, h, nil
}
