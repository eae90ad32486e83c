// Package logging provides a minimal logging facade for the SDL2_ttf
// binding.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is intentionally
// small to allow applications to provide custom implementations for testing
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Usage in the Binding
//
// The ttf package logs through this facade; swap the destination with
// ttf.SetLogger:
//
//	ttf.SetLogger(logging.New(slog.New(handler)).With("component", "ttf"))
//
// The most important messages are the warnings Quit emits for fonts that
// were never closed.
package logging
