package ttf

import "github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"

var (
	Version     = "v0.0.0-dev"
	UpstreamLib = "SDL2_ttf"
)

// WrapperVersion returns the binding's own semantic version, populated at
// build time via ldflags. In development it defaults to v0.0.0-dev.
func WrapperVersion() string {
	return Version
}

// LinkedVersion reports the SDL2_ttf version linked at run time, which may
// differ from the headers the binary was compiled against. Callable before
// Init; fails with ErrNotBuilt under the stub backend.
func LinkedVersion() (NativeVersion, error) {
	mu.Lock()
	defer mu.Unlock()

	major, minor, patch, err := backend.LinkedVersion()
	if err != nil {
		return NativeVersion{}, err
	}
	return NativeVersion{Major: major, Minor: minor, Patch: patch}, nil
}
