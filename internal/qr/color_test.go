package qr_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanranjan113114/qr-generator/internal/qr"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"six digit hex", "#1a2B3c", color.RGBA{0x1a, 0x2b, 0x3c, 0xff}},
		{"three digit hex expands", "#f0a", color.RGBA{0xff, 0x00, 0xaa, 0xff}},
		{"eight digit hex with alpha", "#11223380", color.RGBA{0x11, 0x22, 0x33, 0x80}},
		{"named color", "black", color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{"named color case insensitive", "White", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"named color with spaces", " navy ", color.RGBA{0x00, 0x00, 0x80, 0xff}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := qr.ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "chartreuse-ish", "#12", "#12345", "#zzzzzz", "123456"} {
			_, err := qr.ParseColor(in)
			assert.ErrorIs(t, err, qr.ErrInvalidColor, "input %q", in)
		}
	})
}
