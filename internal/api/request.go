package api

import (
	"fmt"

	"github.com/amanranjan113114/qr-generator/internal/payload"
	"github.com/amanranjan113114/qr-generator/internal/qr"
)

// GenerateRequest is the wire format of POST /api/qr.
type GenerateRequest struct {
	Type   payload.Kind   `json:"type"`
	Data   map[string]any `json:"data"`
	Error  string         `json:"error"`
	Scale  *int           `json:"scale"`
	Border *int           `json:"border"`
	Format string         `json:"format"`
	Dark   string         `json:"dark"`
	Light  string         `json:"light"`
}

const (
	defaultScale  = 8
	maxScale      = 50
	defaultBorder = 4
	maxBorder     = 20
)

// normalize applies defaults and range checks. Formats outside {png, svg} are
// a structural bad request; everything else aggregates into a ValidationError
// so the client sees all field problems at once.
func (r *GenerateRequest) normalize() (qr.Level, qr.Format, qr.Options, error) {
	format := qr.Format(r.Format)
	if format == "" {
		format = qr.FormatPNG
	}
	if format != qr.FormatPNG && format != qr.FormatSVG {
		return "", "", qr.Options{}, ErrUnsupportedFormat
	}

	ve := NewValidationError()

	if r.Data == nil {
		ve.Add("data", "is required")
	}

	level, err := qr.ParseLevel(r.Error)
	if err != nil {
		ve.Add("error", `must be one of "L", "M", "Q", "H"`)
	}

	scale := defaultScale
	if r.Scale != nil {
		scale = *r.Scale
	}
	if scale < 1 || scale > maxScale {
		ve.Add("scale", fmt.Sprintf("must be between 1 and %d", maxScale))
	}

	border := defaultBorder
	if r.Border != nil {
		border = *r.Border
	}
	if border < 0 || border > maxBorder {
		ve.Add("border", fmt.Sprintf("must be between 0 and %d", maxBorder))
	}

	opts := qr.Options{Scale: scale, Border: border, Dark: r.Dark, Light: r.Light}
	if opts.Dark != "" {
		if _, err := qr.ParseColor(opts.Dark); err != nil {
			ve.Add("dark", "must be a hex or named color")
		}
	}
	if opts.Light != "" {
		if _, err := qr.ParseColor(opts.Light); err != nil {
			ve.Add("light", "must be a hex or named color")
		}
	}

	if !ve.IsEmpty() {
		return "", "", qr.Options{}, ve
	}
	return level, format, opts, nil
}
