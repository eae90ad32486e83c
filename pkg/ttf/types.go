package ttf

import (
	"fmt"
	"strings"

	"github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"
)

// Style is a bitmask of face transformations applied at render time. The
// numeric values match the native library so the mask can be stored or
// compared across processes.
type Style int

const (
	StyleNormal        Style = backend.StyleNormal
	StyleBold          Style = backend.StyleBold
	StyleItalic        Style = backend.StyleItalic
	StyleUnderline     Style = backend.StyleUnderline
	StyleStrikethrough Style = backend.StyleStrikethrough
)

func (s Style) String() string {
	if s == StyleNormal {
		return "Normal"
	}
	var parts []string
	if s&StyleBold != 0 {
		parts = append(parts, "Bold")
	}
	if s&StyleItalic != 0 {
		parts = append(parts, "Italic")
	}
	if s&StyleUnderline != 0 {
		parts = append(parts, "Underline")
	}
	if s&StyleStrikethrough != 0 {
		parts = append(parts, "Strikethrough")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return strings.Join(parts, "|")
}

// Hinting selects the rasterizer's grid-fitting mode.
type Hinting int

const (
	HintingNormal Hinting = backend.HintingNormal
	HintingLight  Hinting = backend.HintingLight
	HintingMono   Hinting = backend.HintingMono
	HintingNone   Hinting = backend.HintingNone
)

func (h Hinting) String() string {
	switch h {
	case HintingNormal:
		return "Normal"
	case HintingLight:
		return "Light"
	case HintingMono:
		return "Mono"
	case HintingNone:
		return "None"
	default:
		return fmt.Sprintf("Hinting(%d)", int(h))
	}
}

// Color is a non-premultiplied RGBA color in the native layout. It is
// deliberately not image/color.RGBA, whose channels are alpha-premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

func (c Color) native() backend.RGBA {
	return backend.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// GlyphMetrics describes one glyph's bounding box and advance, in pixels,
// relative to the baseline origin.
type GlyphMetrics struct {
	MinX, MaxX int
	MinY, MaxY int
	Advance    int
}

// NativeVersion identifies the SDL2_ttf build linked at run time.
type NativeVersion struct {
	Major, Minor, Patch int
}

func (v NativeVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
