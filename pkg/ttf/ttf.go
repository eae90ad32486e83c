package ttf

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"
	"github.com/glyphbind/sdlttf-go/pkg/ttf/logging"
)

// The native library is not thread-safe, so one package mutex serializes
// every native call. It also guards the init flag and the live-font set,
// which keeps teardown atomic with respect to in-flight operations.
var (
	mu     sync.Mutex
	inited bool
	fonts  = make(map[*Font]struct{})
	logger = logging.New(nil)
)

// SetLogger replaces the package logger. Passing nil restores the default
// slog-backed logger.
func SetLogger(l logging.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = logging.New(nil)
	}
	logger = l
}

// Init starts the native font subsystem. It must be called once before any
// font is opened. A second Init without an intervening Quit fails with
// ErrAlreadyInitialized; a native startup failure is reported as
// ErrInitFailed carrying the native message.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if inited {
		return ErrAlreadyInitialized
	}
	if err := backend.Init(); err != nil {
		if errors.Is(err, backend.ErrNotBuilt) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	inited = true
	logger.Debug(context.Background(), "font subsystem initialized")
	return nil
}

// Quit shuts the native font subsystem down. Calling it while not
// initialized is a no-op, so deferred shutdown is always safe.
//
// Any font still open is closed first and its handle invalidated: the native
// teardown destroys every resident font, so letting a live handle survive
// Quit would leave it pointing at freed native memory. Each leaked font is
// reported through the package logger, since the leak is a caller bug.
func Quit() {
	mu.Lock()
	defer mu.Unlock()

	if !inited {
		return
	}
	for f := range fonts {
		logger.Warn(context.Background(), "font still open at quit; closing it",
			"source", f.source, "ptsize", f.ptsize)
		f.closeLocked()
	}
	backend.Quit()
	inited = false
	logger.Debug(context.Background(), "font subsystem shut down")
}

// WasInit reports whether the font subsystem is currently initialized. Pure
// query, no side effects.
func WasInit() bool {
	mu.Lock()
	defer mu.Unlock()
	return inited
}

// OpenFonts returns the number of live font handles. Useful for verifying
// that every open is matched by a close.
func OpenFonts() int {
	mu.Lock()
	defer mu.Unlock()
	return len(fonts)
}
