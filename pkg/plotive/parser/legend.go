package parser

import (
	"fmt"
	"strconv"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

func plotLegendPos(s string) (models.PlotLegendPos, bool) {
	switch s {
	case "out-top":
		return models.PlotLegendOutTop, true
	case "out-right":
		return models.PlotLegendOutRight, true
	case "out-bottom":
		return models.PlotLegendOutBottom, true
	case "out-left":
		return models.PlotLegendOutLeft, true
	case "in-top":
		return models.PlotLegendInTop, true
	case "in-top-right":
		return models.PlotLegendInTopRight, true
	case "in-right":
		return models.PlotLegendInRight, true
	case "in-bottom-right":
		return models.PlotLegendInBottomRight, true
	case "in-bottom":
		return models.PlotLegendInBottom, true
	case "in-bottom-left":
		return models.PlotLegendInBottomLeft, true
	case "in-left":
		return models.PlotLegendInLeft, true
	case "in-top-left":
		return models.PlotLegendInTopLeft, true
	}
	return 0, false
}

func figureLegendPos(s string) (models.FigureLegendPos, bool) {
	switch s {
	case "top":
		return models.FigureLegendTop, true
	case "right":
		return models.FigureLegendRight, true
	case "bottom":
		return models.FigureLegendBottom, true
	case "left":
		return models.FigureLegendLeft, true
	}
	return 0, false
}

const plotPositions = `"out-top", "out-right", "out-bottom", "out-left", ` +
	`"in-top", "in-top-right", "in-right", "in-bottom-right", "in-bottom", ` +
	`"in-bottom-left", "in-left" or "in-top-left"`

const figurePositions = `"top", "right", "bottom" or "left"`

// parsePlotLegend decodes a plot legend: a bare position string, or an
// object with a position and the shared legend options.
func parsePlotLegend(v any) (models.PlotLegend, error) {
	return parseLegend(v, models.PlotLegendOutBottom, plotLegendPos, plotPositions)
}

// parseFigureLegend decodes a figure legend.
func parseFigureLegend(v any) (models.FigureLegend, error) {
	return parseLegend(v, models.FigureLegendBottom, figureLegendPos, figurePositions)
}

func parseLegend[P any](v any, def P, lookup func(string) (P, bool), vocab string) (models.Legend[P], error) {
	if s, ok := asString(v); ok {
		pos, ok := lookup(s)
		if !ok {
			return models.Legend[P]{}, diag.NewValueError("legend position", fmt.Sprintf("%q", s), vocab)
		}
		return models.NewLegend(pos), nil
	}
	obj, ok := asObject(v)
	if !ok {
		return models.Legend[P]{}, diag.NewTypeError("legend", describe(v), "a position string or a legend object")
	}
	pos := def
	if pv, ok := attrNotNil(obj, "pos"); ok {
		s, ok := asString(pv)
		if !ok {
			return models.Legend[P]{}, diag.NewTypeError("legend position", describe(pv), "a position string")
		}
		p, ok := lookup(s)
		if !ok {
			return models.Legend[P]{}, diag.NewValueError("legend position", fmt.Sprintf("%q", s), vocab)
		}
		pos = p
	}
	legend := models.NewLegend(pos)
	if err := applyLegendOptions(obj, &legend); err != nil {
		return models.Legend[P]{}, err
	}
	return legend, nil
}

// applyLegendOptions overlays the optional fields shared by plot and
// figure legends. The fill is tri-state: absent keeps the theme default,
// an explicit null disables it, a value overrides it.
func applyLegendOptions[P any](obj map[string]any, legend *models.Legend[P]) error {
	if cv, ok := attrNotNil(obj, "columns"); ok {
		n, ok := asInt(cv)
		if !ok {
			return diag.NewTypeError("legend columns", describe(cv), "an integer")
		}
		if n < 1 {
			return diag.NewValueError("legend columns", strconv.Itoa(n), "at least 1")
		}
		legend.Columns = &n
	}
	if pv, ok := attrNotNil(obj, "padding"); ok {
		padding, err := ParsePadding(pv)
		if err != nil {
			return err
		}
		legend.Padding = padding
	}
	if fv, ok := obj["fill"]; ok {
		legend.FillSet = true
		if fv != nil {
			fill, err := ParseThemeColor(fv)
			if err != nil {
				return err
			}
			legend.Fill = fill
		}
	}
	if sv, ok := attrNotNil(obj, "spacing"); ok {
		spacing, err := parseSize("legend spacing", sv)
		if err != nil {
			return err
		}
		legend.Spacing = &spacing
	}
	if mv, ok := attrNotNil(obj, "margin"); ok {
		m, ok := asFloat32(mv)
		if !ok {
			return diag.NewTypeError("legend margin", describe(mv), "a number")
		}
		legend.Margin = &m
	}
	return nil
}
