package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// Options control how an encoded symbol is turned into an image. Scale is a
// pixel multiplier per module (raster only), Border the quiet-zone width in
// modules, Dark and Light the module colors as hex or CSS names.
type Options struct {
	Scale  int
	Border int
	Dark   string
	Light  string
}

const (
	defaultScale = 8
	defaultDark  = "#000000"
	defaultLight = "#FFFFFF"
)

func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = defaultScale
	}
	if o.Border < 0 {
		o.Border = 0
	}
	if o.Dark == "" {
		o.Dark = defaultDark
	}
	if o.Light == "" {
		o.Light = defaultLight
	}
	return o
}

// PNG renders the matrix as a paletted PNG image of
// (size + 2*border) * scale pixels per side.
func PNG(m Matrix, opts Options) ([]byte, error) {
	if m.Size() == 0 {
		return nil, ErrEmptySymbol
	}
	opts = opts.normalized()

	dark, err := ParseColor(opts.Dark)
	if err != nil {
		return nil, err
	}
	light, err := ParseColor(opts.Light)
	if err != nil {
		return nil, err
	}

	n := m.Size()
	dim := (n + 2*opts.Border) * opts.Scale
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{light, dark})
	// Index 0 (light) is the zero value, so only dark modules need painting.
	for y, row := range m {
		for x, isDark := range row {
			if !isDark {
				continue
			}
			px := (x + opts.Border) * opts.Scale
			py := (y + opts.Border) * opts.Scale
			for dy := 0; dy < opts.Scale; dy++ {
				for dx := 0; dx < opts.Scale; dx++ {
					img.SetColorIndex(px+dx, py+dy, 1)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// SVG renders the matrix as an SVG document without an XML declaration,
// sized in millimeters at one module per millimeter. Scale is ignored; only
// the border and colors apply.
func SVG(m Matrix, opts Options) ([]byte, error) {
	if m.Size() == 0 {
		return nil, ErrEmptySymbol
	}
	opts = opts.normalized()

	// Reject garbage before it lands in an attribute; the original strings
	// are embedded because SVG understands the same hex and named forms.
	if _, err := ParseColor(opts.Dark); err != nil {
		return nil, err
	}
	if _, err := ParseColor(opts.Light); err != nil {
		return nil, err
	}

	n := m.Size()
	dim := n + 2*opts.Border

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%dmm" height="%dmm" viewBox="0 0 %d %d">`, dim, dim, dim, dim)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, opts.Light)
	fmt.Fprintf(&b, `<path fill="%s" d="`, opts.Dark)
	for y, row := range m {
		for x := 0; x < n; {
			if !row[x] {
				x++
				continue
			}
			run := 1
			for x+run < n && row[x+run] {
				run++
			}
			fmt.Fprintf(&b, "M%d %dh%dv1h-%dz", x+opts.Border, y+opts.Border, run, run)
			x += run
		}
	}
	b.WriteString(`"/></svg>`)
	return b.Bytes(), nil
}

// ContentType returns the MIME type for a rendering format.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Ext returns the file extension for a rendering format.
func (f Format) Ext() string {
	return string(f)
}
