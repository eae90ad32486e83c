// Package ttf exposes the SDL2_ttf font-rendering library to Go: loading
// TrueType/OpenType faces, querying their metrics, and rasterizing UTF-8
// text into caller-owned RGBA surfaces.
//
// The package compiles with or without the native library. Without cgo every
// native-touching call reports ErrNotBuilt, so downstream projects can build
// and test on machines that lack the SDL development headers.
//
// # Lifecycle
//
// The native subsystem is process-wide state. Initialize it once, open fonts,
// and shut it down when done:
//
//	if err := ttf.Init(); err != nil {
//	    return err
//	}
//	defer ttf.Quit()
//
//	font, err := ttf.OpenFont("DejaVuSans.ttf", 24)
//	if err != nil {
//	    return err
//	}
//	defer font.Close()
//
//	surf, err := font.RenderBlended("hello", ttf.Opaque(0, 0, 0))
//	if err != nil {
//	    return err
//	}
//	png.Encode(w, surf.Image())
//
// # Ownership
//
// A Font exclusively owns one native resource; Close releases it and is safe
// to call twice. Quit closes any fonts still open, logging a warning for
// each, because native teardown destroys every resident font and a surviving
// handle would point at freed memory. After Close or Quit, every operation
// on the handle fails with ErrFontClosed. Surfaces are plain Go memory and
// are unaffected by Close and Quit.
//
// # Text encoding
//
// All text is UTF-8. Input that is not well-formed UTF-8, or that contains
// an embedded NUL, fails with ErrInvalidEncoding. Latin1ToUTF8 converts
// legacy ISO 8859-1 bytes at the boundary.
//
// # Concurrency
//
// One package mutex serializes every native call, so the API is safe for
// concurrent use but executes at most one operation at a time. Calls are
// synchronous and non-cancellable.
package ttf
