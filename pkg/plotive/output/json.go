// Package output serializes extracted figures for the CLI.
package output

import (
	"encoding/json"

	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// Summary is a compact digest of an extracted figure.
type Summary struct {
	Title   string        `json:"title,omitempty"`
	Rows    uint32        `json:"rows"`
	Cols    uint32        `json:"cols"`
	Plots   []PlotSummary `json:"plots"`
	Legend  string        `json:"legend,omitempty"`
	Columns []string      `json:"columns,omitempty"`
}

// PlotSummary digests one plot of the figure.
type PlotSummary struct {
	Row         uint32   `json:"row"`
	Col         uint32   `json:"col"`
	Title       string   `json:"title,omitempty"`
	Series      []string `json:"series"`
	XAxes       int      `json:"x_axes"`
	YAxes       int      `json:"y_axes"`
	Annotations int      `json:"annotations,omitempty"`
}

// Summarize builds the digest of a figure. The columns argument lists
// the data source columns the figure refers to.
func Summarize(fig *models.Figure, columns []string) Summary {
	s := Summary{Columns: columns}
	if fig.Title != nil {
		s.Title = *fig.Title
	}
	if fig.Legend != nil {
		s.Legend = "figure"
	}
	switch content := fig.Content.(type) {
	case models.SinglePlot:
		s.Rows, s.Cols = 1, 1
		s.Plots = []PlotSummary{summarizePlot(0, 0, content.Plot)}
	case models.SubplotGrid:
		s.Rows, s.Cols = content.Rows, content.Cols
		for _, cell := range content.Cells {
			s.Plots = append(s.Plots, summarizePlot(cell.Row, cell.Col, cell.Plot))
		}
	}
	return s
}

func summarizePlot(row, col uint32, plot models.Plot) PlotSummary {
	p := PlotSummary{
		Row:         row,
		Col:         col,
		XAxes:       len(plot.XAxes),
		YAxes:       len(plot.YAxes),
		Annotations: len(plot.Annotations),
	}
	if plot.Title != nil {
		p.Title = *plot.Title
	}
	for _, series := range plot.Series {
		name := "line"
		if line, ok := series.(models.LineSeries); ok && line.Name != nil {
			name = *line.Name
		}
		p.Series = append(p.Series, name)
	}
	return p
}

// ToJSON serializes a value to JSON, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
