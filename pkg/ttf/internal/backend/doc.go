// Package backend hosts the thin cgo layer that links the Go API to the
// native SDL2_ttf library. The real implementation lives behind build tags so
// that the rest of the repository can compile without cgo or the SDL
// development headers.
//
// Callers must serialize access: the native library is not thread-safe, and
// this package adds no locking of its own. The public ttf package owns the
// process-wide mutex.
package backend
