package parser

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// ParseAnnotation dispatches on the annotation type tag, then overlays
// the axis bindings and z-order common to every kind.
func ParseAnnotation(v any) (models.Annotation, error) {
	tag, err := typeTag("annotation", v)
	if err != nil {
		return models.Annotation{}, err
	}
	obj, _ := asObject(v)

	var kind models.AnnotationKind
	switch tag {
	case "Line":
		kind, err = parseLineAnnotation(obj)
	case "Arrow":
		kind, err = parseArrowAnnotation(obj)
	case "Label":
		kind, err = parseLabelAnnotation(obj)
	default:
		return models.Annotation{}, diag.NewTypeError("annotation", fmt.Sprintf("tag %q", tag), `"Line", "Arrow" or "Label"`)
	}
	if err != nil {
		return models.Annotation{}, err
	}

	annot := models.Annotation{Kind: kind, Z: models.AboveSeries}
	if av, ok := attrNotNil(obj, "x_axis"); ok {
		if annot.XAxis, err = ParseAxisRef(av); err != nil {
			return models.Annotation{}, err
		}
	}
	if av, ok := attrNotNil(obj, "y_axis"); ok {
		if annot.YAxis, err = ParseAxisRef(av); err != nil {
			return models.Annotation{}, err
		}
	}
	if zv, ok := attrNotNil(obj, "zpos"); ok {
		s, ok := asString(zv)
		if !ok {
			return models.Annotation{}, diag.NewTypeError("annotation zpos", describe(zv), "a string")
		}
		switch s {
		case "above-series":
			annot.Z = models.AboveSeries
		case "below-series":
			annot.Z = models.BelowSeries
		default:
			return models.Annotation{}, diag.NewValueError("annotation zpos", fmt.Sprintf("%q", s), `"above-series" or "below-series"`)
		}
	}
	return annot, nil
}

func parseLineAnnotation(obj map[string]any) (models.LineAnnotation, error) {
	var annot models.LineAnnotation
	switch {
	case hasAttr(obj, "horizontal"):
		y, ok := asFloat64(obj["horizontal"])
		if !ok {
			return annot, diag.NewTypeError("line annotation horizontal", describe(obj["horizontal"]), "a number")
		}
		annot.Geometry = models.HorizontalLine{Y: y}
	case hasAttr(obj, "vertical"):
		x, ok := asFloat64(obj["vertical"])
		if !ok {
			return annot, diag.NewTypeError("line annotation vertical", describe(obj["vertical"]), "a number")
		}
		annot.Geometry = models.VerticalLine{X: x}
	case hasAttr(obj, "slope"):
		geom, err := parseSlope(obj["slope"])
		if err != nil {
			return annot, err
		}
		annot.Geometry = geom
	case hasAttr(obj, "two_points"):
		geom, err := parseTwoPoints(obj["two_points"])
		if err != nil {
			return annot, err
		}
		annot.Geometry = geom
	default:
		return annot, diag.NewValueError("line annotation", "no geometry",
			`one of "horizontal", "vertical", "slope" or "two_points"`)
	}
	if sv, ok := attrNotNil(obj, "stroke"); ok {
		stroke, err := parseThemeStroke("line annotation stroke", sv)
		if err != nil {
			return annot, err
		}
		annot.Stroke = &stroke
	}
	return annot, nil
}

func hasAttr(obj map[string]any, name string) bool {
	_, ok := attrNotNil(obj, name)
	return ok
}

// parseSlope decodes the ((x, y), slope) point-slope form.
func parseSlope(v any) (models.SlopeLine, error) {
	seq, ok := asSeq(v)
	if ok && len(seq) == 2 {
		if pt, err := parsePoint("line annotation slope", seq[0]); err == nil {
			if m, ok := asFloat32(seq[1]); ok {
				return models.SlopeLine{X: pt[0], Y: pt[1], Slope: m}, nil
			}
		}
	}
	return models.SlopeLine{}, diag.NewTypeError("line annotation slope", describe(v), "a ((x, y), slope) pair")
}

// parseTwoPoints decodes the ((x1, y1), (x2, y2)) form.
func parseTwoPoints(v any) (models.TwoPointLine, error) {
	seq, ok := asSeq(v)
	if ok && len(seq) == 2 {
		p1, err1 := parsePoint("line annotation two_points", seq[0])
		p2, err2 := parsePoint("line annotation two_points", seq[1])
		if err1 == nil && err2 == nil {
			return models.TwoPointLine{X1: p1[0], Y1: p1[1], X2: p2[0], Y2: p2[1]}, nil
		}
	}
	return models.TwoPointLine{}, diag.NewTypeError("line annotation two_points", describe(v), "a pair of (x, y) points")
}

func parsePoint(slot string, v any) ([2]float64, error) {
	seq, ok := asSeq(v)
	if ok && len(seq) == 2 {
		x, xok := asFloat64(seq[0])
		y, yok := asFloat64(seq[1])
		if xok && yok {
			return [2]float64{x, y}, nil
		}
	}
	return [2]float64{}, diag.NewTypeError(slot, describe(v), "an (x, y) pair")
}

func parseArrowAnnotation(obj map[string]any) (models.ArrowAnnotation, error) {
	var annot models.ArrowAnnotation
	coord := func(name string) (float64, error) {
		v, err := requiredAttr(obj, "arrow annotation", name)
		if err != nil {
			return 0, err
		}
		f, ok := asFloat64(v)
		if !ok {
			return 0, diag.NewTypeError("arrow annotation "+name, describe(v), "a number")
		}
		return f, nil
	}
	var err error
	if annot.X, err = coord("x"); err != nil {
		return annot, err
	}
	if annot.Y, err = coord("y"); err != nil {
		return annot, err
	}
	dx, err := coord("dx")
	if err != nil {
		return annot, err
	}
	dy, err := coord("dy")
	if err != nil {
		return annot, err
	}
	annot.DX, annot.DY = float32(dx), float32(dy)

	if hv, ok := attrNotNil(obj, "head_size"); ok {
		h, ok := asFloat32(hv)
		if !ok {
			return annot, diag.NewTypeError("arrow annotation head_size", describe(hv), "a number")
		}
		annot.HeadSize = &h
	}
	if sv, ok := attrNotNil(obj, "stroke"); ok {
		stroke, err := parseThemeStroke("arrow annotation stroke", sv)
		if err != nil {
			return annot, err
		}
		annot.Stroke = &stroke
	}
	return annot, nil
}

func anchorFromString(s string) (models.Anchor, bool) {
	switch s {
	case "top-left":
		return models.AnchorTopLeft, true
	case "top-center":
		return models.AnchorTopCenter, true
	case "top-right":
		return models.AnchorTopRight, true
	case "center-left":
		return models.AnchorCenterLeft, true
	case "center":
		return models.AnchorCenter, true
	case "center-right":
		return models.AnchorCenterRight, true
	case "bottom-left":
		return models.AnchorBottomLeft, true
	case "bottom-center":
		return models.AnchorBottomCenter, true
	case "bottom-right":
		return models.AnchorBottomRight, true
	}
	return 0, false
}

func parseLabelAnnotation(obj map[string]any) (models.LabelAnnotation, error) {
	var annot models.LabelAnnotation
	var err error

	xv, err := requiredAttr(obj, "label annotation", "x")
	if err != nil {
		return annot, err
	}
	x, ok := asFloat64(xv)
	if !ok {
		return annot, diag.NewTypeError("label annotation x", describe(xv), "a number")
	}
	yv, err := requiredAttr(obj, "label annotation", "y")
	if err != nil {
		return annot, err
	}
	y, ok := asFloat64(yv)
	if !ok {
		return annot, diag.NewTypeError("label annotation y", describe(yv), "a number")
	}
	tv, err := requiredAttr(obj, "label annotation", "text")
	if err != nil {
		return annot, err
	}
	text, ok := asString(tv)
	if !ok {
		return annot, diag.NewTypeError("label annotation text", describe(tv), "a string")
	}
	annot.X, annot.Y, annot.Text = x, y, text
	annot.Anchor = models.AnchorTopLeft

	if av, ok := attrNotNil(obj, "anchor"); ok {
		s, ok := asString(av)
		if !ok {
			return annot, diag.NewTypeError("label annotation anchor", describe(av), "an anchor name string")
		}
		anchor, ok := anchorFromString(s)
		if !ok {
			return annot, diag.NewValueError("label annotation anchor", fmt.Sprintf("%q", s),
				"top/center/bottom crossed with left/center/right, e.g. \"top-left\"")
		}
		annot.Anchor = anchor
	}
	if cv, ok := attrNotNil(obj, "color"); ok {
		if annot.Color, err = ParseThemeColor(cv); err != nil {
			return annot, err
		}
	}
	if av, ok := attrNotNil(obj, "angle"); ok {
		a, ok := asFloat32(av)
		if !ok {
			return annot, diag.NewTypeError("label annotation angle", describe(av), "a number")
		}
		annot.Angle = &a
	}
	if fv, ok := attrNotNil(obj, "frame"); ok {
		frame, err := parseLabelFrame(fv)
		if err != nil {
			return annot, err
		}
		annot.Frame = frame
	}
	return annot, nil
}

// parseLabelFrame decodes the (fill, stroke) frame pair. Either half may
// be null to leave it out.
func parseLabelFrame(v any) (*models.LabelFrame, error) {
	seq, ok := asSeq(v)
	if !ok || len(seq) != 2 {
		return nil, diag.NewValueError("label annotation frame", describe(v), "a (fill, stroke) pair")
	}
	var frame models.LabelFrame
	if seq[0] != nil {
		fill, err := ParseThemeColor(seq[0])
		if err != nil {
			return nil, err
		}
		frame.Fill = fill
	}
	if seq[1] != nil {
		stroke, err := parseThemeStroke("label annotation frame stroke", seq[1])
		if err != nil {
			return nil, err
		}
		frame.Stroke = &stroke
	}
	return &frame, nil
}
