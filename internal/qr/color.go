package qr

import (
	"fmt"
	"image/color"
	"strings"
)

// namedColors covers the CSS colors a QR request is realistically rendered
// with. Anything else must be given as hex.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"aqua":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"fuchsia": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"gold":    {0xff, 0xd7, 0x00, 0xff},
	"indigo":  {0x4b, 0x00, 0x82, 0xff},
	"violet":  {0xee, 0x82, 0xee, 0xff},
}

// ParseColor interprets s as a #RGB, #RRGGBB or #RRGGBBAA hex color or a
// named CSS color.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c := color.RGBA{A: 0xff}
	channels := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(hex)/2; i++ {
		v, err := hexByte(hex[2*i], hex[2*i+1])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		*channels[i] = v
	}
	return c, nil
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, ErrInvalidColor
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}
