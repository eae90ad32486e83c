package ttf

import (
	"errors"
	"fmt"

	"github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"
)

var (
	// ErrNotInitialized indicates a font operation ran before Init.
	ErrNotInitialized = errors.New("ttf: font subsystem not initialized")

	// ErrAlreadyInitialized indicates a second Init without an intervening
	// Quit.
	ErrAlreadyInitialized = errors.New("ttf: font subsystem already initialized")

	// ErrInitFailed indicates the native library failed to start.
	ErrInitFailed = errors.New("ttf: native init failed")

	// ErrFontLoad indicates a font could not be opened: missing file,
	// malformed data, or an invalid point size or face index.
	ErrFontLoad = errors.New("ttf: font load failed")

	// ErrFontClosed indicates an operation on a handle that was closed,
	// either explicitly or by Quit.
	ErrFontClosed = errors.New("ttf: font has been closed")

	// ErrInvalidEncoding indicates text that violates the encoding contract:
	// not well-formed UTF-8, an embedded NUL, or a code point outside the
	// range an entry point accepts.
	ErrInvalidEncoding = errors.New("ttf: invalid text encoding")

	// ErrRenderFailed indicates the native rasterizer reported a failure.
	ErrRenderFailed = errors.New("ttf: render failed")
)

// ErrNotBuilt reports that the binary was built without the native bindings.
// It is the backend sentinel re-exported so callers need only this package.
var ErrNotBuilt = backend.ErrNotBuilt

// remapNative attaches a public sentinel to a backend failure while keeping
// the native diagnostic intact. ErrNotBuilt passes through untouched so
// build-mode checks stay a single errors.Is.
func remapNative(sentinel, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrNotBuilt) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
