package parser

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// parseDataColumnRef decodes a series column: a data source column name,
// or literal numeric or text values.
func parseDataColumnRef(slot string, v any) (models.DataColumnRef, error) {
	if s, ok := asString(v); ok {
		return models.SourceRef{Name: s}, nil
	}
	if vals, ok := floatValues(v); ok {
		return models.InlineNumeric{Values: vals}, nil
	}
	if strs, ok := stringValues(v); ok {
		return models.InlineText{Values: strs}, nil
	}
	return nil, diag.NewTypeError(slot, describe(v), "a column name or a sequence of numbers or strings")
}

func parseInterpolation(v any) (models.Interpolation, error) {
	s, ok := asString(v)
	if !ok {
		return 0, diag.NewTypeError("series interpolation", describe(v), "an interpolation name string")
	}
	switch s {
	case "linear":
		return models.InterpLinear, nil
	case "step-early":
		return models.InterpStepEarly, nil
	case "step-middle":
		return models.InterpStepMiddle, nil
	case "step-late", "step":
		return models.InterpStepLate, nil
	case "cubic", "spline":
		return models.InterpSpline, nil
	}
	return 0, diag.NewValueError("series interpolation", fmt.Sprintf("%q", s),
		`"linear", "step-early", "step-middle", "step-late" or "spline"`)
}

// ParseSeries dispatches on the series type tag. Line is the only kind
// the vocabulary currently holds.
func ParseSeries(v any) (models.Series, error) {
	tag, err := typeTag("series", v)
	if err != nil {
		return nil, err
	}
	obj, _ := asObject(v)
	switch tag {
	case "Line":
		return parseLineSeries(obj)
	}
	return nil, diag.NewTypeError("series", fmt.Sprintf("tag %q", tag), `"Line"`)
}

func parseLineSeries(obj map[string]any) (models.LineSeries, error) {
	var line models.LineSeries

	xv, err := requiredAttr(obj, "line series", "x")
	if err != nil {
		return line, err
	}
	if line.X, err = parseDataColumnRef("series x", xv); err != nil {
		return line, err
	}
	yv, err := requiredAttr(obj, "line series", "y")
	if err != nil {
		return line, err
	}
	if line.Y, err = parseDataColumnRef("series y", yv); err != nil {
		return line, err
	}

	if nv, ok := attrNotNil(obj, "name"); ok {
		s, ok := asString(nv)
		if !ok {
			return line, diag.NewTypeError("series name", describe(nv), "a string")
		}
		line.Name = &s
	}
	if av, ok := attrNotNil(obj, "x_axis"); ok {
		if line.XAxis, err = ParseAxisRef(av); err != nil {
			return line, err
		}
	}
	if av, ok := attrNotNil(obj, "y_axis"); ok {
		if line.YAxis, err = ParseAxisRef(av); err != nil {
			return line, err
		}
	}

	// Any of the three line-style fields promotes the default stroke.
	wv, hasWidth := attrNotNil(obj, "linewidth")
	pv, hasPattern := attrNotNil(obj, "linestyle")
	cv, hasColor := attrNotNil(obj, "color")
	if hasWidth || hasPattern || hasColor {
		stroke := models.DefaultSeriesStroke()
		if hasWidth {
			w, ok := asFloat32(wv)
			if !ok {
				return line, diag.NewTypeError("series linewidth", describe(wv), "a number")
			}
			stroke.Width = w
		}
		if hasPattern {
			p, err := ParseStrokePattern(pv)
			if err != nil {
				return line, err
			}
			stroke.Pattern = p
		}
		if hasColor {
			c, err := parseSeriesColor(cv)
			if err != nil {
				return line, err
			}
			stroke.Color = c
		}
		line.Stroke = &stroke
	}

	if iv, ok := attrNotNil(obj, "interpolation"); ok {
		interp, err := parseInterpolation(iv)
		if err != nil {
			return line, err
		}
		line.Interpolation = &interp
	}
	return line, nil
}
