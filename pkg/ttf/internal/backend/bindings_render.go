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

// RenderSolid rasterizes text with no antialiasing. The native color key
// becomes alpha 0 during normalization.
//
// Implements:
//
//	SDL_Surface *TTF_RenderUTF8_Solid(TTF_Font *font, const char *text, SDL_Color fg)
func RenderSolid(f Font, text string, fg RGBA) (*Pixmap, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	surf := C.TTF_RenderUTF8_Solid(f, ctext, colorToC(fg))
	if surf == nil {
		return nil, lastError("TTF_RenderUTF8_Solid")
	}
	return copyPixmap(surf)
}

// RenderShaded rasterizes antialiased text against an opaque background
// color.
//
// Implements:
//
//	SDL_Surface *TTF_RenderUTF8_Shaded(TTF_Font *font, const char *text,
//	                                   SDL_Color fg, SDL_Color bg)
func RenderShaded(f Font, text string, fg, bg RGBA) (*Pixmap, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	surf := C.TTF_RenderUTF8_Shaded(f, ctext, colorToC(fg), colorToC(bg))
	if surf == nil {
		return nil, lastError("TTF_RenderUTF8_Shaded")
	}
	return copyPixmap(surf)
}

// RenderBlended rasterizes antialiased text with a full alpha channel.
//
// Implements:
//
//	SDL_Surface *TTF_RenderUTF8_Blended(TTF_Font *font, const char *text, SDL_Color fg)
func RenderBlended(f Font, text string, fg RGBA) (*Pixmap, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	surf := C.TTF_RenderUTF8_Blended(f, ctext, colorToC(fg))
	if surf == nil {
		return nil, lastError("TTF_RenderUTF8_Blended")
	}
	return copyPixmap(surf)
}

// RenderBlendedWrapped is RenderBlended with line reflow: lines break at
// whitespace so no line exceeds wrapLength pixels. wrapLength 0 wraps on
// newlines only.
//
// Implements:
//
//	SDL_Surface *TTF_RenderUTF8_Blended_Wrapped(TTF_Font *font, const char *text,
//	                                            SDL_Color fg, Uint32 wrapLength)
func RenderBlendedWrapped(f Font, text string, fg RGBA, wrapLength uint32) (*Pixmap, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	surf := C.TTF_RenderUTF8_Blended_Wrapped(f, ctext, colorToC(fg), C.Uint32(wrapLength))
	if surf == nil {
		return nil, lastError("TTF_RenderUTF8_Blended_Wrapped")
	}
	return copyPixmap(surf)
}

// copyPixmap normalizes a native surface to RGBA32 byte order and copies the
// pixel rows into Go memory, honoring the native pitch. Both surfaces are
// freed before returning, so the result never aliases C memory.
func copyPixmap(surf *C.SDL_Surface) (*Pixmap, error) {
	defer C.SDL_FreeSurface(surf)

	conv := C.SDL_ConvertSurfaceFormat(surf, C.SDL_PIXELFORMAT_RGBA32, 0)
	if conv == nil {
		return nil, lastError("SDL_ConvertSurfaceFormat")
	}
	defer C.SDL_FreeSurface(conv)

	w, h, pitch := int(conv.w), int(conv.h), int(conv.pitch)
	if w <= 0 || h <= 0 {
		return &Pixmap{}, nil
	}

	// Text surfaces are plain software surfaces, so the pixels are
	// addressable without SDL_LockSurface.
	raw := C.GoBytes(conv.pixels, C.int(pitch*h))
	pix := make([]byte, 4*w*h)
	for row := 0; row < h; row++ {
		copy(pix[4*w*row:4*w*(row+1)], raw[pitch*row:pitch*row+4*w])
	}
	return &Pixmap{W: w, H: h, Pix: pix}, nil
}

func colorToC(c RGBA) C.SDL_Color {
	return C.SDL_Color{
		r: C.Uint8(c.R),
		g: C.Uint8(c.G),
		b: C.Uint8(c.B),
		a: C.Uint8(c.A),
	}
}
