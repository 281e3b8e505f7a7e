package parser

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// ParsePlot assembles one plot: ordered series, then the optional legend,
// title, axes and annotations.
func ParsePlot(v any) (models.Plot, error) {
	obj, ok := asObject(v)
	if !ok {
		return models.Plot{}, diag.NewTypeError("plot", describe(v), "a plot object")
	}
	sv, err := requiredAttr(obj, "plot", "series")
	if err != nil {
		return models.Plot{}, err
	}
	seq, ok := asSeq(sv)
	if !ok {
		return models.Plot{}, diag.NewTypeError("plot series", describe(sv), "a list of series")
	}
	plot := models.Plot{Series: make([]models.Series, 0, len(seq))}
	for _, e := range seq {
		series, err := ParseSeries(e)
		if err != nil {
			return models.Plot{}, err
		}
		plot.Series = append(plot.Series, series)
	}

	if lv, ok := attrNotNil(obj, "legend"); ok {
		legend, err := parsePlotLegend(lv)
		if err != nil {
			return models.Plot{}, err
		}
		plot.Legend = &legend
	}
	if tv, ok := attrNotNil(obj, "title"); ok {
		s, ok := asString(tv)
		if !ok {
			return models.Plot{}, diag.NewTypeError("plot title", describe(tv), "a string")
		}
		title, err := ParseRichText(s)
		if err != nil {
			return models.Plot{}, err
		}
		plot.Title = &title
	}

	if plot.XAxes, err = parseAxes(obj, "x_axis", "x_axes"); err != nil {
		return models.Plot{}, err
	}
	if plot.YAxes, err = parseAxes(obj, "y_axis", "y_axes"); err != nil {
		return models.Plot{}, err
	}

	if av, ok := attrNotNil(obj, "annotations"); ok {
		seq, ok := asSeq(av)
		if !ok {
			return models.Plot{}, diag.NewTypeError("plot annotations", describe(av), "a list of annotations")
		}
		for _, e := range seq {
			annot, err := ParseAnnotation(e)
			if err != nil {
				return models.Plot{}, err
			}
			plot.Annotations = append(plot.Annotations, annot)
		}
	}
	return plot, nil
}

// parseAxes reads the singular or plural axis key. Defining both is an
// error; defining neither yields one automatic axis.
func parseAxes(obj map[string]any, single, plural string) ([]models.Axis, error) {
	sv, hasSingle := attrNotNil(obj, single)
	pv, hasPlural := attrNotNil(obj, plural)
	if hasSingle && hasPlural {
		return nil, diag.NewValueError("plot", fmt.Sprintf("both %q and %q", single, plural), "only one of the two")
	}
	switch {
	case hasSingle:
		axis, err := ParseAxis(sv)
		if err != nil {
			return nil, err
		}
		return []models.Axis{axis}, nil
	case hasPlural:
		seq, ok := asSeq(pv)
		if !ok {
			return nil, diag.NewTypeError("plot "+plural, describe(pv), "a list of axes")
		}
		axes := make([]models.Axis, 0, len(seq))
		for _, e := range seq {
			axis, err := ParseAxis(e)
			if err != nil {
				return nil, err
			}
			axes = append(axes, axis)
		}
		return axes, nil
	}
	return []models.Axis{models.NewAxis(models.AutoScale{})}, nil
}

// parseRowCol decodes a 1-indexed (row, col) pair.
func parseRowCol(slot string, v any) (row, col uint32, err error) {
	seq, ok := asSeq(v)
	if !ok || len(seq) != 2 {
		return 0, 0, diag.NewTypeError(slot, describe(v), "a (rows, cols) pair of integers")
	}
	r, rok := asUint32(seq[0])
	c, cok := asUint32(seq[1])
	if !rok || !cok {
		return 0, 0, diag.NewTypeError(slot, describe(v), "a (rows, cols) pair of integers")
	}
	if r == 0 || c == 0 {
		return 0, 0, diag.NewValueError(slot, fmt.Sprintf("(%d, %d)", r, c), "1-indexed positions starting at (1, 1)")
	}
	return r, c, nil
}

// assemblePlots resolves grid placement. A single plot fills the figure
// with no grid. Otherwise the grid is the explicit (rows, cols) argument
// when given, else the elementwise maximum of the plots' placements, else
// one single-column row per plot. Unplaced plots are assigned by a
// cursor that advances down the rows and wraps to the next column; the
// cursor advances on every plot, placed or not, and does not check
// whether the cell is already claimed.
func assemblePlots(plotValues []any, explicit *[2]uint32, space *float32) (models.Content, error) {
	if len(plotValues) == 0 {
		return nil, diag.NewValueError("figure plots", "an empty list", "at least one plot")
	}
	if len(plotValues) == 1 {
		plot, err := ParsePlot(plotValues[0])
		if err != nil {
			return nil, err
		}
		return models.SinglePlot{Plot: plot}, nil
	}

	type placed struct {
		plot models.Plot
		pos  *[2]uint32 // 0-indexed, nil when unplaced
	}
	plots := make([]placed, 0, len(plotValues))
	var maxPos *[2]uint32
	for _, pv := range plotValues {
		plot, err := ParsePlot(pv)
		if err != nil {
			return nil, err
		}
		entry := placed{plot: plot}
		if obj, ok := asObject(pv); ok {
			if sv, ok := attrNotNil(obj, "subplot"); ok {
				r, c, err := parseRowCol("subplot", sv)
				if err != nil {
					return nil, err
				}
				entry.pos = &[2]uint32{r - 1, c - 1}
				if maxPos == nil {
					maxPos = &[2]uint32{r, c}
				} else {
					maxPos[0] = max(maxPos[0], r)
					maxPos[1] = max(maxPos[1], c)
				}
			}
		}
		plots = append(plots, entry)
	}

	var rows, cols uint32
	switch {
	case explicit != nil && maxPos != nil:
		if explicit[0] < maxPos[0] || explicit[1] < maxPos[1] {
			return nil, diag.NewValueError("subplot grid",
				fmt.Sprintf("(%d, %d)", explicit[0], explicit[1]),
				fmt.Sprintf("at least the (%d, %d) required by the plot placements", maxPos[0], maxPos[1]))
		}
		rows, cols = explicit[0], explicit[1]
	case explicit != nil:
		rows, cols = explicit[0], explicit[1]
	case maxPos != nil:
		rows, cols = maxPos[0], maxPos[1]
	default:
		rows, cols = uint32(len(plots)), 1
	}

	grid := models.SubplotGrid{Rows: rows, Cols: cols, Space: space}
	var row, col uint32
	for _, entry := range plots {
		r, c := row, col
		if entry.pos != nil {
			r, c = entry.pos[0], entry.pos[1]
		}
		grid.Cells = append(grid.Cells, models.PlacedPlot{Row: r, Col: c, Plot: entry.plot})
		row++
		if row >= rows {
			row = 0
			col++
		}
	}
	return grid, nil
}

// ParseFigure extracts a whole figure description into its typed form.
func ParseFigure(v any) (*models.Figure, error) {
	obj, ok := asObject(v)
	if !ok {
		return nil, diag.NewTypeError("figure", describe(v), "a figure object")
	}

	var space *float32
	if sv, ok := attrNotNil(obj, "space"); ok {
		f, ok := asFloat32(sv)
		if !ok {
			return nil, diag.NewTypeError("figure space", describe(sv), "a number")
		}
		space = &f
	}
	var explicit *[2]uint32
	if gv, ok := attrNotNil(obj, "subplots"); ok {
		r, c, err := parseRowCol("figure subplots", gv)
		if err != nil {
			return nil, err
		}
		explicit = &[2]uint32{r, c}
	}

	plotValues, err := figurePlotValues(obj)
	if err != nil {
		return nil, err
	}
	content, err := assemblePlots(plotValues, explicit, space)
	if err != nil {
		return nil, err
	}
	fig := &models.Figure{Content: content}

	if fv, ok := attrNotNil(obj, "fill"); ok {
		if fig.Fill, err = ParseThemeColor(fv); err != nil {
			return nil, err
		}
	}
	if tv, ok := attrNotNil(obj, "title"); ok {
		s, ok := asString(tv)
		if !ok {
			return nil, diag.NewTypeError("figure title", describe(tv), "a string")
		}
		title, err := ParseRichText(s)
		if err != nil {
			return nil, err
		}
		fig.Title = &title
	}
	if lv, ok := attrNotNil(obj, "legend"); ok {
		legend, err := parseFigureLegend(lv)
		if err != nil {
			return nil, err
		}
		fig.Legend = &legend
	}
	return fig, nil
}

// figurePlotValues reads the singular or plural plot key.
func figurePlotValues(obj map[string]any) ([]any, error) {
	sv, hasSingle := attrNotNil(obj, "plot")
	pv, hasPlural := attrNotNil(obj, "plots")
	if hasSingle && hasPlural {
		return nil, diag.NewValueError("figure", `both "plot" and "plots"`, "only one of the two")
	}
	if hasSingle {
		return []any{sv}, nil
	}
	if !hasPlural {
		return nil, diag.NewValueError("figure", `neither "plot" nor "plots"`, "one of the two to be set")
	}
	seq, ok := asSeq(pv)
	if !ok {
		return nil, diag.NewTypeError("figure plots", describe(pv), "a list of plots")
	}
	return seq, nil
}
