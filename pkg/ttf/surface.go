package ttf

import "image"

// Surface is a rendered run of text: RGBA byte order, row-major, 4 bytes per
// pixel with no row padding, non-premultiplied alpha. The pixels live in Go
// memory and belong to the caller; they stay valid after the font that
// produced them is closed and after Quit.
type Surface struct {
	W, H int
	Pix  []byte
}

// Bounds returns the surface's pixel rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// Image exposes the surface as an *image.NRGBA sharing the same pixel
// memory; drawing into the image mutates the surface. NRGBA matches the
// surface's non-premultiplied alpha.
func (s *Surface) Image() *image.NRGBA {
	return &image.NRGBA{Pix: s.Pix, Stride: 4 * s.W, Rect: s.Bounds()}
}
