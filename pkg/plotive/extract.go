// Package plotive extracts figure descriptions from loosely-typed value
// graphs into a validated, typed form.
package plotive

import (
	"github.com/plotive/plotive-go/pkg/plotive/data"
	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
	"github.com/plotive/plotive-go/pkg/plotive/parser"
)

// ExtractFigure extracts a complete figure description.
func ExtractFigure(v any) (*models.Figure, error) {
	return parser.ParseFigure(v)
}

// ExtractStyle extracts a style: a preset name or a theme/palette object.
func ExtractStyle(v any) (models.Style, error) {
	return parser.ParseStyle(v)
}

// ExtractDataSource adapts an input into a data source. Accepted inputs
// are nil (an empty source), an existing source, a tabular backend, or a
// name-to-values mapping. Mapping columns get the same typed-buffer
// recognition as frame columns, so integer buffers keep their integer
// view; mapping names are ordered lexically, since Go maps carry no
// declaration order of their own.
func ExtractDataSource(v any) (data.Source, error) {
	switch in := v.(type) {
	case nil:
		return data.Empty(), nil
	case data.Source:
		return in, nil
	case data.Frame:
		return data.FromFrame(in)
	case map[string][]float64:
		return data.FromMap(in), nil
	case map[string]any:
		return data.FromColumns(in)
	}
	return nil, diag.NewTypeError("data source", describeSource(v),
		"nil, a data source, a tabular frame, or named numeric columns")
}

func describeSource(v any) string {
	switch v.(type) {
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a bool"
	}
	return "an unsupported value"
}

// SourceColumns lists the data source column names a figure refers to,
// in first-reference order without duplicates.
func SourceColumns(fig *models.Figure) []string {
	var names []string
	seen := map[string]bool{}
	add := func(ref models.DataColumnRef) {
		if src, ok := ref.(models.SourceRef); ok && !seen[src.Name] {
			seen[src.Name] = true
			names = append(names, src.Name)
		}
	}
	collect := func(plot models.Plot) {
		for _, series := range plot.Series {
			if line, ok := series.(models.LineSeries); ok {
				add(line.X)
				add(line.Y)
			}
		}
	}
	switch content := fig.Content.(type) {
	case models.SinglePlot:
		collect(content.Plot)
	case models.SubplotGrid:
		for _, cell := range content.Cells {
			collect(cell.Plot)
		}
	}
	return names
}
