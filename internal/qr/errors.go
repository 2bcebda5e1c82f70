package qr

import "errors"

var (
	// ErrEncodeFailed is returned when the underlying library cannot encode
	// the content into a QR symbol.
	ErrEncodeFailed = errors.New("failed to encode QR symbol")
	// ErrRenderFailed is returned when image serialization fails.
	ErrRenderFailed = errors.New("failed to render QR image")
	// ErrInvalidLevel is returned for error-correction levels outside L/M/Q/H.
	ErrInvalidLevel = errors.New("invalid error correction level")
	// ErrInvalidColor is returned for color values that are neither hex nor a
	// known color name.
	ErrInvalidColor = errors.New("invalid color")
	// ErrEmptySymbol is returned when rendering is attempted on an empty matrix.
	ErrEmptySymbol = errors.New("empty QR symbol")
)
