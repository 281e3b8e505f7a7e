// Package models defines the typed figure description consumed by
// rendering backends. All values are built once during extraction and
// never mutated afterward.
package models

// Color is a canonical RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}
