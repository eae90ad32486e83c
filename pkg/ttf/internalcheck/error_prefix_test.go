package internalcheck

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestSentinelErrorPrefix verifies that every package-level sentinel created
// with errors.New in pkg/ttf carries the "ttf: " prefix, so wrapped errors
// always identify their origin.
func TestSentinelErrorPrefix(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/glyphbind/sdlttf-go/pkg/ttf")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok {
					continue
				}
				for _, spec := range gen.Specs {
					vs, ok := spec.(*ast.ValueSpec)
					if !ok {
						continue
					}
					for _, value := range vs.Values {
						msg, ok := errorsNewLiteral(pkg, value)
						if !ok {
							continue
						}
						if !strings.HasPrefix(msg, "ttf: ") {
							pos := fset.Position(value.Pos())
							findings = append(findings, fmt.Sprintf("%s: sentinel %q lacks the \"ttf: \" prefix", pos, msg))
						}
					}
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("sentinel prefix policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// errorsNewLiteral matches errors.New("...") calls with a string literal
// argument and returns the literal.
func errorsNewLiteral(pkg *packages.Package, expr ast.Expr) (string, bool) {
	call, ok := expr.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return "", false
	}
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	obj := pkg.TypesInfo.Uses[selector.Sel]
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "errors" || obj.Name() != "New" {
		return "", false
	}

	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok {
		return "", false
	}
	msg, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return msg, true
}
