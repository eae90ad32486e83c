package backend_test

import (
	"testing"

	"github.com/glyphbind/sdlttf-go/pkg/ttf/internal/backend"
)

// TestStyleBits pins the style bitmask to the native TTF_STYLE_* values.
func TestStyleBits(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Normal", backend.StyleNormal, 0x00},
		{"Bold", backend.StyleBold, 0x01},
		{"Italic", backend.StyleItalic, 0x02},
		{"Underline", backend.StyleUnderline, 0x04},
		{"Strikethrough", backend.StyleStrikethrough, 0x08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("style bit = %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

// TestHintingValues pins the hinting modes to the native TTF_HINTING_* values.
func TestHintingValues(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Normal", backend.HintingNormal, 0},
		{"Light", backend.HintingLight, 1},
		{"Mono", backend.HintingMono, 2},
		{"None", backend.HintingNone, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("hinting = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := &backend.Error{Fn: "TTF_OpenFontIndex", Msg: "Couldn't open missing.ttf"}
	if got, want := err.Error(), "TTF_OpenFontIndex: Couldn't open missing.ttf"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &backend.Error{Fn: "TTF_Init"}
	if got, want := bare.Error(), "TTF_Init failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
