package parser

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// ParsePadding decodes a padding literal: a scalar pads evenly, a pair
// pads horizontally/vertically, a quadruple pads top/right/bottom/left.
func ParsePadding(v any) (models.Padding, error) {
	if f, ok := asFloat32(v); ok {
		return models.EvenPadding{All: f}, nil
	}
	seq, ok := asSeq(v)
	if !ok {
		return nil, diag.NewTypeError("padding", describe(v), "a number, or a tuple of 2 or 4 numbers")
	}
	vals := make([]float32, len(seq))
	for i, e := range seq {
		f, ok := asFloat32(e)
		if !ok {
			return nil, diag.NewTypeError("padding", describe(e), "a number")
		}
		vals[i] = f
	}
	switch len(vals) {
	case 2:
		return models.CenterPadding{H: vals[0], V: vals[1]}, nil
	case 4:
		return models.CustomPadding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return nil, diag.NewTypeError("padding", fmt.Sprintf("a tuple of %d elements", len(vals)), "exactly 2 or 4 elements")
}

// dashedSegments is the canonical pattern behind the "dashed" shortcut.
var dashedSegments = []float32{5, 5}

// ParseStrokePattern decodes a dash pattern: one of the pattern names
// "solid", "dashed" or "dotted", or an explicit sequence of dash lengths.
func ParseStrokePattern(v any) (models.StrokePattern, error) {
	if s, ok := asString(v); ok {
		switch s {
		case "solid":
			return models.SolidPattern{}, nil
		case "dotted":
			return models.DotPattern{}, nil
		case "dashed":
			segments := make([]float32, len(dashedSegments))
			copy(segments, dashedSegments)
			return models.DashPattern{Segments: segments}, nil
		}
		return nil, diag.NewValueError("stroke pattern", fmt.Sprintf("%q", s), `"solid", "dashed" or "dotted"`)
	}
	seq, ok := asSeq(v)
	if !ok {
		return nil, diag.NewTypeError("stroke pattern", describe(v), "a pattern name or a sequence of dash lengths")
	}
	if len(seq) == 0 {
		return nil, diag.NewValueError("stroke pattern", "an empty sequence", "at least one dash length")
	}
	segments := make([]float32, len(seq))
	for i, e := range seq {
		f, ok := asFloat32(e)
		if !ok {
			return nil, diag.NewTypeError("stroke pattern", describe(e), "a dash length number")
		}
		segments[i] = f
	}
	return models.DashPattern{Segments: segments}, nil
}

// parseSize decodes a scalar-or-pair spacing value.
func parseSize(slot string, v any) (models.Size, error) {
	if f, ok := asFloat32(v); ok {
		return models.Size{H: f, V: f}, nil
	}
	if seq, ok := asSeq(v); ok && len(seq) == 2 {
		h, hok := asFloat32(seq[0])
		sv, vok := asFloat32(seq[1])
		if hok && vok {
			return models.Size{H: h, V: sv}, nil
		}
	}
	return models.Size{}, diag.NewTypeError(slot, describe(v), "a number or a pair of numbers")
}
