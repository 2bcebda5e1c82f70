// Package qr wraps github.com/skip2/go-qrcode with the rendering controls the
// HTTP surface exposes: error-correction level, pixel scale, quiet-zone width,
// module colors, and a choice of PNG or SVG output.
//
// The upstream library owns all QR symbol math (version selection,
// Reed-Solomon coding, module placement). This package crops the library's
// fixed quiet zone off the module matrix so the requested border can be
// applied exactly, and renders the matrix itself: paletted PNG for raster
// output, a single-path SVG document (millimeter units, no XML declaration)
// for vector output.
//
// WifiContent and MeCardContent assemble the WIFI: and MECARD: wire formats
// from structured payload fields.
package qr
