package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const backendPath = "github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"

// TestCGOIsolatedToBackend enforces the repository's cgo boundary: only the
// backend package may import "C" or "unsafe". Everything else must stay pure
// Go so the public API never reaches native memory directly.
func TestCGOIsolatedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles,
		Tests: true,
	}

	pkgs, err := packages.Load(cfg, "github.com/glyphbind/sdlttf-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	seen := map[string]bool{}

	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPath || strings.HasPrefix(pkg.PkgPath, backendPath+".") ||
			strings.HasSuffix(pkg.PkgPath, ".test") {
			continue
		}

		// IgnoredFiles picks up sources excluded by the current build
		// configuration, so cgo-tagged files are policed even when the
		// test binary itself was built without cgo.
		files := append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...)
		for _, file := range files {
			if seen[file] || !strings.HasSuffix(file, ".go") {
				continue
			}
			seen[file] = true

			for _, imp := range fileImports(t, file) {
				if imp == "C" || imp == "unsafe" {
					findings = append(findings, fmt.Sprintf("%s: imports %q outside %s", file, imp, backendPath))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func fileImports(t *testing.T, path string) []string {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}

	imports := make([]string, 0, len(file.Imports))
	for _, spec := range file.Imports {
		val, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			t.Fatalf("unquote import in %s: %v", path, err)
		}
		imports = append(imports, val)
	}
	return imports
}
