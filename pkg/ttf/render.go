package ttf

import (
	"fmt"

	"github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"
)

// RenderSolid rasterizes text in fg with no antialiasing. Fastest mode; the
// background is fully transparent.
func (f *Font) RenderSolid(text string, fg Color) (*Surface, error) {
	mu.Lock()
	defer mu.Unlock()

	return f.renderLocked(text, func() (*backend.Pixmap, error) {
		return backend.RenderSolid(f.h, text, fg.native())
	})
}

// RenderShaded rasterizes antialiased text in fg against an opaque bg. Every
// pixel of the result is fully opaque.
func (f *Font) RenderShaded(text string, fg, bg Color) (*Surface, error) {
	mu.Lock()
	defer mu.Unlock()

	return f.renderLocked(text, func() (*backend.Pixmap, error) {
		return backend.RenderShaded(f.h, text, fg.native(), bg.native())
	})
}

// RenderBlended rasterizes antialiased text in fg with a full alpha channel
// and no background. Slowest mode, highest quality.
func (f *Font) RenderBlended(text string, fg Color) (*Surface, error) {
	mu.Lock()
	defer mu.Unlock()

	return f.renderLocked(text, func() (*backend.Pixmap, error) {
		return backend.RenderBlended(f.h, text, fg.native())
	})
}

// RenderBlendedWrapped is RenderBlended with line reflow: lines break at
// whitespace so that no line exceeds wrapWidth pixels. A single word longer
// than wrapWidth is not split; that line overflows the requested width.
// wrapWidth 0 wraps on newlines only.
func (f *Font) RenderBlendedWrapped(text string, fg Color, wrapWidth int) (*Surface, error) {
	mu.Lock()
	defer mu.Unlock()

	if f.h == nil {
		return nil, ErrFontClosed
	}
	if wrapWidth < 0 {
		return nil, fmt.Errorf("%w: wrap width %d is negative", ErrRenderFailed, wrapWidth)
	}
	return f.renderLocked(text, func() (*backend.Pixmap, error) {
		return backend.RenderBlendedWrapped(f.h, text, fg.native(), uint32(wrapWidth))
	})
}

// renderLocked runs the shared render path: liveness, the empty-text special
// case, encoding validation, then the native call. Caller holds mu.
func (f *Font) renderLocked(text string, call func() (*backend.Pixmap, error)) (*Surface, error) {
	if f.h == nil {
		return nil, ErrFontClosed
	}
	if text == "" {
		return &Surface{}, nil
	}
	if err := validateText(text); err != nil {
		return nil, err
	}

	pm, err := call()
	if err != nil {
		return nil, remapNative(ErrRenderFailed, err)
	}
	return &Surface{W: pm.W, H: pm.H, Pix: pm.Pix}, nil
}
