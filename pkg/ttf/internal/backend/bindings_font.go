//go:build cgo

package backend

/*
#include <stdlib.h>

#ifdef SDLTTF_FRAMEWORK
#include <SDL2_ttf/SDL_ttf.h>
#else
#include <SDL2/SDL_ttf.h>
#endif
*/
import "C"

import "unsafe"

// Font is the native font handle. Nil means closed or never opened.
type Font = *C.TTF_Font

// Mem is a C allocation backing a font opened from Go memory. The native
// rasterizer streams from the buffer for the font's whole life, so the
// allocation must outlive the font and be freed only in CloseFont.
type Mem = unsafe.Pointer

// OpenFont loads the face at index from a font file.
//
// Implements:
//
//	TTF_Font *TTF_OpenFontIndex(const char *file, int ptsize, long index)
func OpenFont(path string, ptsize, index int) (Font, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	f := C.TTF_OpenFontIndex(cpath, C.int(ptsize), C.long(index))
	if f == nil {
		return nil, lastError("TTF_OpenFontIndex")
	}
	return f, nil
}

// OpenFontMem loads the face at index from an in-memory font image. The bytes
// are copied into C memory first; the returned Mem must be passed back to
// CloseFont together with the font.
//
// Implements:
//
//	TTF_Font *TTF_OpenFontIndexRW(SDL_RWops *src, int freesrc, int ptsize, long index)
func OpenFontMem(data []byte, ptsize, index int) (Font, Mem, error) {
	buf := C.CBytes(data)
	rw := C.SDL_RWFromConstMem(buf, C.int(len(data)))
	if rw == nil {
		C.free(buf)
		return nil, nil, lastError("SDL_RWFromConstMem")
	}

	// freesrc=1: the native side closes the RWops on failure and ties it to
	// the font on success. The raw buffer stays ours either way.
	f := C.TTF_OpenFontIndexRW(rw, 1, C.int(ptsize), C.long(index))
	if f == nil {
		C.free(buf)
		return nil, nil, lastError("TTF_OpenFontIndexRW")
	}
	return f, Mem(buf), nil
}

// CloseFont releases the native font and, for memory-loaded fonts, the C
// copy of the source bytes. Safe on a nil font.
//
// Implements:
//
//	void TTF_CloseFont(TTF_Font *font)
func CloseFont(f Font, m Mem) {
	if f != nil {
		C.TTF_CloseFont(f)
	}
	if m != nil {
		C.free(m)
	}
}

// FontStyle returns the current style bitmask.
func FontStyle(f Font) int {
	return styleFromC(C.TTF_GetFontStyle(f))
}

// SetFontStyle replaces the style bitmask.
func SetFontStyle(f Font, style int) {
	C.TTF_SetFontStyle(f, styleToC(style))
}

// FontOutline returns the outline width in pixels, 0 when disabled.
func FontOutline(f Font) int {
	return int(C.TTF_GetFontOutline(f))
}

// SetFontOutline sets the outline width in pixels; 0 disables outlining.
func SetFontOutline(f Font, px int) {
	C.TTF_SetFontOutline(f, C.int(px))
}

// FontHinting returns the current hinting mode.
func FontHinting(f Font) int {
	return hintingFromC(C.TTF_GetFontHinting(f))
}

// SetFontHinting selects the rasterizer hinting mode. The glyph cache is
// flushed natively when the mode changes.
func SetFontHinting(f Font, hinting int) {
	C.TTF_SetFontHinting(f, hintingToC(hinting))
}

// FontKerning reports whether kerning adjustments are applied.
func FontKerning(f Font) bool {
	return C.TTF_GetFontKerning(f) != 0
}

// SetFontKerning toggles kerning adjustments.
func SetFontKerning(f Font, enabled bool) {
	v := C.int(0)
	if enabled {
		v = 1
	}
	C.TTF_SetFontKerning(f, v)
}

// FontHeight returns the maximum pixel height over all glyphs.
//
// Implements:
//
//	int TTF_FontHeight(const TTF_Font *font)
func FontHeight(f Font) int {
	return int(C.TTF_FontHeight(f))
}

// FontAscent returns the maximum pixel ascent over all glyphs.
func FontAscent(f Font) int {
	return int(C.TTF_FontAscent(f))
}

// FontDescent returns the maximum pixel descent over all glyphs, reported as
// a non-positive value.
func FontDescent(f Font) int {
	return int(C.TTF_FontDescent(f))
}

// FontLineSkip returns the recommended baseline-to-baseline spacing.
func FontLineSkip(f Font) int {
	return int(C.TTF_FontLineSkip(f))
}

// FontFaces returns the number of faces in the underlying file.
func FontFaces(f Font) int {
	return int(C.TTF_FontFaces(f))
}

// FontFixedWidth reports whether the face is monospaced.
func FontFixedWidth(f Font) bool {
	return C.TTF_FontFaceIsFixedWidth(f) != 0
}

// FontFamilyName returns the face family name, or "" when the face carries
// no name table entry. The native string is owned by the font and must not
// be freed here.
func FontFamilyName(f Font) string {
	s := C.TTF_FontFaceFamilyName(f)
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// FontStyleName returns the face style name, or "" when absent.
func FontStyleName(f Font) string {
	s := C.TTF_FontFaceStyleName(f)
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// GlyphIsProvided reports whether the face supplies a glyph for the BMP code
// point ch.
//
// Implements:
//
//	int TTF_GlyphIsProvided(TTF_Font *font, Uint16 ch)
func GlyphIsProvided(f Font, ch uint16) bool {
	return C.TTF_GlyphIsProvided(f, C.Uint16(ch)) != 0
}

// GlyphMetrics returns the bounding box and advance of one BMP glyph.
//
// Implements:
//
//	int TTF_GlyphMetrics(TTF_Font *font, Uint16 ch,
//	                     int *minx, int *maxx, int *miny, int *maxy, int *advance)
func GlyphMetrics(f Font, ch uint16) (minx, maxx, miny, maxy, advance int, err error) {
	var cMinX, cMaxX, cMinY, cMaxY, cAdvance C.int
	if C.TTF_GlyphMetrics(f, C.Uint16(ch), &cMinX, &cMaxX, &cMinY, &cMaxY, &cAdvance) != 0 {
		return 0, 0, 0, 0, 0, lastError("TTF_GlyphMetrics")
	}
	return int(cMinX), int(cMaxX), int(cMinY), int(cMaxY), int(cAdvance), nil
}

// SizeUTF8 measures the rendered extent of text without producing pixels.
//
// Implements:
//
//	int TTF_SizeUTF8(TTF_Font *font, const char *text, int *w, int *h)
func SizeUTF8(f Font, text string) (w, h int, err error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	var cw, ch C.int
	if C.TTF_SizeUTF8(f, ctext, &cw, &ch) != 0 {
		return 0, 0, lastError("TTF_SizeUTF8")
	}
	return int(cw), int(ch), nil
}

func styleToC(style int) C.int {
	c := C.int(C.TTF_STYLE_NORMAL)
	if style&StyleBold != 0 {
		c |= C.TTF_STYLE_BOLD
	}
	if style&StyleItalic != 0 {
		c |= C.TTF_STYLE_ITALIC
	}
	if style&StyleUnderline != 0 {
		c |= C.TTF_STYLE_UNDERLINE
	}
	if style&StyleStrikethrough != 0 {
		c |= C.TTF_STYLE_STRIKETHROUGH
	}
	return c
}

func styleFromC(c C.int) int {
	style := StyleNormal
	if c&C.TTF_STYLE_BOLD != 0 {
		style |= StyleBold
	}
	if c&C.TTF_STYLE_ITALIC != 0 {
		style |= StyleItalic
	}
	if c&C.TTF_STYLE_UNDERLINE != 0 {
		style |= StyleUnderline
	}
	if c&C.TTF_STYLE_STRIKETHROUGH != 0 {
		style |= StyleStrikethrough
	}
	return style
}

func hintingToC(hinting int) C.int {
	switch hinting {
	case HintingLight:
		return C.TTF_HINTING_LIGHT
	case HintingMono:
		return C.TTF_HINTING_MONO
	case HintingNone:
		return C.TTF_HINTING_NONE
	default:
		return C.TTF_HINTING_NORMAL
	}
}

func hintingFromC(c C.int) int {
	switch c {
	case C.TTF_HINTING_LIGHT:
		return HintingLight
	case C.TTF_HINTING_MONO:
		return HintingMono
	case C.TTF_HINTING_NONE:
		return HintingNone
	default:
		return HintingNormal
	}
}
