// Package diag defines the error taxonomy shared by the extraction layers.
//
// Extraction fails fast: the first invalid field aborts the whole
// extraction and no partial figure is ever produced. Every error names
// the slot being decoded, the concrete received value or tag, and the
// accepted alternatives.
package diag

import "fmt"

// TypeError reports a value whose shape or kind does not fit the slot it
// was supplied for: a bad color or padding encoding, an unrecognized
// variant tag, a non-numeric column.
type TypeError struct {
	Slot string // what was being decoded, e.g. "color" or `column "t"`
	Got  string // received shape, value or type tag
	Want string // accepted alternatives
}

// NewTypeError creates a new TypeError.
func NewTypeError(slot, got, want string) *TypeError {
	return &TypeError{Slot: slot, Got: got, Want: want}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: got %s, expected %s", e.Slot, e.Got, e.Want)
}

// ValueError reports a well-shaped value whose content is outside the
// accepted vocabulary or range: an unknown theme, palette, position or
// unit token, an alpha outside [0, 1], a grid smaller than required.
type ValueError struct {
	Slot string
	Got  string
	Want string
}

// NewValueError creates a new ValueError.
func NewValueError(slot, got, want string) *ValueError {
	return &ValueError{Slot: slot, Got: got, Want: want}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %s, expected %s", e.Slot, e.Got, e.Want)
}
