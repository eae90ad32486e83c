package ttf_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphbind/sdlttf-go/pkg/ttf"
)

func TestSurfaceBounds(t *testing.T) {
	surf := &ttf.Surface{W: 3, H: 2, Pix: make([]byte, 3*2*4)}
	assert.Equal(t, image.Rect(0, 0, 3, 2), surf.Bounds())

	empty := &ttf.Surface{}
	assert.Equal(t, image.Rect(0, 0, 0, 0), empty.Bounds())
}

func TestSurfaceImageSharesPixels(t *testing.T) {
	surf := &ttf.Surface{W: 2, H: 2, Pix: make([]byte, 2*2*4)}
	img := surf.Image()

	require.Equal(t, surf.Bounds(), img.Bounds())
	require.Equal(t, 4*surf.W, img.Stride)

	img.Pix[0] = 0xAB
	assert.Equal(t, byte(0xAB), surf.Pix[0], "image and surface share backing memory")

	surf.Pix[7] = 0xCD
	assert.Equal(t, byte(0xCD), img.Pix[7])
}

func TestSurfaceImageEmpty(t *testing.T) {
	img := (&ttf.Surface{}).Image()
	assert.True(t, img.Bounds().Empty())
}
