package ttf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphbind/sdlttf-go/pkg/ttf"
)

func TestLatin1ToUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("plain ascii"), "plain ascii"},
		{"accented", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"symbols", []byte{0xA9, 0x20, 0xB5}, "© µ"},
		{"empty", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ttf.Latin1ToUTF8(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
