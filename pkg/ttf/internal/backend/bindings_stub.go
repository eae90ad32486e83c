//go:build !cgo

package backend

import "unsafe"

// Stub types and functions for builds without cgo. Every native-touching
// entry point reports ErrNotBuilt; the rest are unreachable because no font
// can ever be opened.

// Font is a stub handle type for non-cgo builds.
type Font = unsafe.Pointer

// Mem is a stub allocation type for non-cgo builds.
type Mem = unsafe.Pointer

func Init() error { return ErrNotBuilt }

func Quit() {}

func LinkedVersion() (int, int, int, error) {
	return 0, 0, 0, ErrNotBuilt
}

func OpenFont(string, int, int) (Font, error) {
	return nil, ErrNotBuilt
}

func OpenFontMem([]byte, int, int) (Font, Mem, error) {
	return nil, nil, ErrNotBuilt
}

func CloseFont(Font, Mem) {}

func FontStyle(Font) int { return StyleNormal }

func SetFontStyle(Font, int) {}

func FontOutline(Font) int { return 0 }

func SetFontOutline(Font, int) {}

func FontHinting(Font) int { return HintingNormal }

func SetFontHinting(Font, int) {}

func FontKerning(Font) bool { return false }

func SetFontKerning(Font, bool) {}

func FontHeight(Font) int { return 0 }

func FontAscent(Font) int { return 0 }

func FontDescent(Font) int { return 0 }

func FontLineSkip(Font) int { return 0 }

func FontFaces(Font) int { return 0 }

func FontFixedWidth(Font) bool { return false }

func FontFamilyName(Font) string { return "" }

func FontStyleName(Font) string { return "" }

func GlyphIsProvided(Font, uint16) bool { return false }

func GlyphMetrics(Font, uint16) (int, int, int, int, int, error) {
	return 0, 0, 0, 0, 0, ErrNotBuilt
}

func SizeUTF8(Font, string) (int, int, error) {
	return 0, 0, ErrNotBuilt
}

func RenderSolid(Font, string, RGBA) (*Pixmap, error) {
	return nil, ErrNotBuilt
}

func RenderShaded(Font, string, RGBA, RGBA) (*Pixmap, error) {
	return nil, ErrNotBuilt
}

func RenderBlended(Font, string, RGBA) (*Pixmap, error) {
	return nil, ErrNotBuilt
}

func RenderBlendedWrapped(Font, string, RGBA, uint32) (*Pixmap, error) {
	return nil, ErrNotBuilt
}
