//go:build cgo

package backend

/*
#cgo !sdlframework LDFLAGS: -lSDL2_ttf -lSDL2
#cgo darwin,!sdlframework CFLAGS: -I/usr/local/include -I/opt/homebrew/include
#cgo darwin,!sdlframework LDFLAGS: -L/usr/local/lib -L/opt/homebrew/lib
#cgo linux CFLAGS: -D_REENTRANT
#cgo sdlframework CFLAGS: -F/Library/Frameworks -DSDLTTF_FRAMEWORK
#cgo sdlframework LDFLAGS: -F/Library/Frameworks -framework SDL2_ttf -framework SDL2

#include <stdlib.h>

#ifdef SDLTTF_FRAMEWORK
#include <SDL2_ttf/SDL_ttf.h>
#else
#include <SDL2/SDL_ttf.h>
#endif
*/
import "C"

// Init starts the native font subsystem.
//
// Implements:
//
//	int TTF_Init(void)
func Init() error {
	if C.TTF_Init() != 0 {
		return lastError("TTF_Init")
	}
	return nil
}

// Quit shuts the native font subsystem down. Fonts still open become
// dangling native pointers, so callers must close them first.
//
// Implements:
//
//	void TTF_Quit(void)
func Quit() {
	C.TTF_Quit()
}

// LinkedVersion reports the SDL2_ttf version linked at run time, which may
// differ from the headers the binary was compiled against.
//
// Implements:
//
//	const SDL_version *TTF_Linked_Version(void)
func LinkedVersion() (major, minor, patch int, err error) {
	v := C.TTF_Linked_Version()
	if v == nil {
		return 0, 0, 0, lastError("TTF_Linked_Version")
	}
	return int(v.major), int(v.minor), int(v.patch), nil
}

// lastError captures the thread-local native error message for the call that
// just failed. TTF_GetError is a macro alias for SDL_GetError.
func lastError(fn string) error {
	return &Error{Fn: fn, Msg: C.GoString(C.SDL_GetError())}
}
