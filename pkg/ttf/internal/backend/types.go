package backend

import "errors"

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("sdlttf/internal/backend: native bindings not built")

// Error describes a failed native call. Msg carries the SDL_GetError text
// verbatim so callers see the same diagnostic a C program would.
type Error struct {
	Fn  string
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Fn + " failed"
	}
	return e.Fn + ": " + e.Msg
}

// Font style bits, numerically identical to the native TTF_STYLE_* values.
const (
	StyleNormal        = 0x00
	StyleBold          = 0x01
	StyleItalic        = 0x02
	StyleUnderline     = 0x04
	StyleStrikethrough = 0x08
)

// Hinting modes, numerically identical to the native TTF_HINTING_* values.
const (
	HintingNormal = 0
	HintingLight  = 1
	HintingMono   = 2
	HintingNone   = 3
)

// RGBA is a non-premultiplied color in the native SDL_Color layout.
type RGBA struct {
	R, G, B, A uint8
}

// Pixmap is a rendered run of text copied out of native memory: RGBA byte
// order, row-major, stride 4*W, non-premultiplied alpha.
type Pixmap struct {
	W, H int
	Pix  []byte
}
