package ttf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// validateText enforces the canonical text contract: well-formed UTF-8 with
// no embedded NUL. A NUL would silently truncate the text at the C string
// boundary, so it is rejected up front.
func validateText(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: not well-formed UTF-8", ErrInvalidEncoding)
	}
	if strings.IndexByte(text, 0) >= 0 {
		return fmt.Errorf("%w: embedded NUL byte", ErrInvalidEncoding)
	}
	return nil
}

// bmpCodePoint narrows r for the native 16-bit glyph entry points.
func bmpCodePoint(r rune) (uint16, error) {
	if r < 0 || r > 0xFFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, fmt.Errorf("%w: glyph queries accept Basic Multilingual Plane code points only, got %U", ErrInvalidEncoding, r)
	}
	return uint16(r), nil
}

// Latin1ToUTF8 converts ISO 8859-1 bytes to the canonical UTF-8 accepted by
// this package. The native library exposes separate Latin-1 entry points;
// this binding keeps a single text representation and makes the legacy
// conversion explicit at the boundary instead.
func Latin1ToUTF8(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return string(out), nil
}
