package qr

import (
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/amanranjan113114/qr-generator/internal/payload"
)

// Level is a QR error-correction level.
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// DefaultLevel is used when no level is requested.
const DefaultLevel = LevelM

// ParseLevel validates s as an error-correction level. An empty string maps
// to DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case "":
		return DefaultLevel, nil
	case LevelL, LevelM, LevelQ, LevelH:
		return Level(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

func (l Level) recovery() skipqrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return skipqrcode.Low
	case LevelQ:
		return skipqrcode.High
	case LevelH:
		return skipqrcode.Highest
	default:
		return skipqrcode.Medium
	}
}

// Format is a rendering output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Matrix is the module matrix of an encoded QR symbol without a quiet zone.
// True cells are dark modules.
type Matrix [][]bool

// Size returns the symbol dimension in modules.
func (m Matrix) Size() int { return len(m) }

// Encode produces the module matrix for the given payload spec at the given
// error-correction level. Structured Wi-Fi and MECARD payloads are turned
// into their wire formats here; all other variants supply their content
// string directly.
func Encode(spec payload.Spec, level Level) (Matrix, error) {
	var content string
	switch s := spec.(type) {
	case payload.Wifi:
		content = WifiContent(s)
	case payload.MeCard:
		content = MeCardContent(s)
	case interface{ Content() string }:
		content = s.Content()
	default:
		return nil, fmt.Errorf("%w: %T has no content", ErrEncodeFailed, spec)
	}

	q, err := skipqrcode.New(content, level.recovery())
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return trimQuietZone(q.Bitmap()), nil
}

// trimQuietZone crops bm to the bounding box of its dark modules. The finder
// patterns guarantee dark modules at every symbol corner, so the crop removes
// exactly the library's quiet zone and the caller can apply its own border.
func trimQuietZone(bm [][]bool) Matrix {
	minX, minY := len(bm), len(bm)
	maxX, maxY := -1, -1
	for y, row := range bm {
		for x, dark := range row {
			if !dark {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return Matrix{}
	}
	out := make(Matrix, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		out = append(out, bm[y][minX:maxX+1])
	}
	return out
}
