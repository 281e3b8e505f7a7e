package parser

import (
	"errors"
	"testing"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

func linePlot(extra map[string]any) map[string]any {
	plot := map[string]any{
		"series": []any{
			map[string]any{"type": "Line", "x": "t", "y": "v"},
		},
	}
	for k, v := range extra {
		plot[k] = v
	}
	return plot
}

func TestParsePlotDefaults(t *testing.T) {
	got, err := ParsePlot(linePlot(nil))
	if err != nil {
		t.Fatalf("ParsePlot failed: %v", err)
	}
	if len(got.Series) != 1 {
		t.Fatalf("series count = %d, expected 1", len(got.Series))
	}
	// Absent axes default to a single automatic axis per direction.
	if len(got.XAxes) != 1 || got.XAxes[0].Scale != (models.AutoScale{}) {
		t.Errorf("default x axes = %+v", got.XAxes)
	}
	if len(got.YAxes) != 1 || got.YAxes[0].Scale != (models.AutoScale{}) {
		t.Errorf("default y axes = %+v", got.YAxes)
	}
	if got.Legend != nil || got.Title != nil || got.Annotations != nil {
		t.Errorf("unexpected optional fields: %+v", got)
	}
}

func TestParsePlotSingularAxisKey(t *testing.T) {
	got, err := ParsePlot(linePlot(map[string]any{
		"x_axis": map[string]any{"scale": "log"},
		"y_axes": []any{
			map[string]any{"scale": "auto"},
			map[string]any{"scale": "auto", "opposite_side": true},
		},
	}))
	if err != nil {
		t.Fatalf("ParsePlot failed: %v", err)
	}
	if len(got.XAxes) != 1 || got.XAxes[0].Scale != (models.LogScale{Base: 10}) {
		t.Errorf("x axes = %+v", got.XAxes)
	}
	if len(got.YAxes) != 2 || !got.YAxes[1].OppositeSide {
		t.Errorf("y axes = %+v", got.YAxes)
	}

	_, err = ParsePlot(linePlot(map[string]any{
		"x_axis": map[string]any{"scale": "log"},
		"x_axes": []any{map[string]any{"scale": "auto"}},
	}))
	var verr *diag.ValueError
	if !errors.As(err, &verr) {
		t.Errorf("both axis keys: expected ValueError, got %v", err)
	}
}

func TestParseFigureSinglePlot(t *testing.T) {
	fig, err := ParseFigure(map[string]any{
		"plot":  linePlot(nil),
		"title": "one $x$",
		"fill":  "background",
	})
	if err != nil {
		t.Fatalf("ParseFigure failed: %v", err)
	}
	if _, ok := fig.Content.(models.SinglePlot); !ok {
		t.Fatalf("content = %T, expected SinglePlot", fig.Content)
	}
	if fig.Title == nil || *fig.Title != "one $x$" {
		t.Errorf("figure title = %v", fig.Title)
	}
	if fig.Fill != (models.RoleColor{Role: models.RoleBackground}) {
		t.Errorf("figure fill = %+v", fig.Fill)
	}
}

func TestParseFigureAutoGrid(t *testing.T) {
	// Five unplaced plots land in a (5, 1) grid, one per row.
	plots := make([]any, 5)
	for i := range plots {
		plots[i] = linePlot(nil)
	}
	fig, err := ParseFigure(map[string]any{"plots": plots})
	if err != nil {
		t.Fatalf("ParseFigure failed: %v", err)
	}
	grid, ok := fig.Content.(models.SubplotGrid)
	if !ok {
		t.Fatalf("content = %T, expected SubplotGrid", fig.Content)
	}
	if grid.Rows != 5 || grid.Cols != 1 {
		t.Fatalf("grid = (%d, %d), expected (5, 1)", grid.Rows, grid.Cols)
	}
	for i, cell := range grid.Cells {
		if cell.Row != uint32(i) || cell.Col != 0 {
			t.Errorf("plot %d at (%d, %d), expected (%d, 0)", i, cell.Row, cell.Col, i)
		}
	}
}

func TestParseFigurePlacementGrid(t *testing.T) {
	// The grid grows to the maximum explicit placement.
	fig, err := ParseFigure(map[string]any{
		"plots": []any{
			linePlot(map[string]any{"subplot": []any{1, 1}}),
			linePlot(map[string]any{"subplot": []any{2, 2}}),
		},
	})
	if err != nil {
		t.Fatalf("ParseFigure failed: %v", err)
	}
	grid := fig.Content.(models.SubplotGrid)
	if grid.Rows != 2 || grid.Cols != 2 {
		t.Fatalf("grid = (%d, %d), expected (2, 2)", grid.Rows, grid.Cols)
	}
	if grid.Cells[0].Row != 0 || grid.Cells[0].Col != 0 {
		t.Errorf("first plot at (%d, %d)", grid.Cells[0].Row, grid.Cells[0].Col)
	}
	if grid.Cells[1].Row != 1 || grid.Cells[1].Col != 1 {
		t.Errorf("second plot at (%d, %d)", grid.Cells[1].Row, grid.Cells[1].Col)
	}
}

func TestParseFigureExplicitGridTooSmall(t *testing.T) {
	_, err := ParseFigure(map[string]any{
		"subplots": []any{1, 1},
		"plots": []any{
			linePlot(map[string]any{"subplot": []any{1, 1}}),
			linePlot(map[string]any{"subplot": []any{2, 2}}),
		},
	})
	var verr *diag.ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("too-small grid: expected ValueError, got %v", err)
	}
}

func TestParseFigurePlacementCollision(t *testing.T) {
	// The auto-placement cursor advances on placed plots too, so an
	// unplaced plot can share a cell with an explicitly placed one.
	fig, err := ParseFigure(map[string]any{
		"plots": []any{
			linePlot(nil),
			linePlot(map[string]any{"subplot": []any{1, 1}}),
		},
	})
	if err != nil {
		t.Fatalf("ParseFigure failed: %v", err)
	}
	grid := fig.Content.(models.SubplotGrid)
	if grid.Rows != 1 || grid.Cols != 1 {
		t.Fatalf("grid = (%d, %d), expected (1, 1)", grid.Rows, grid.Cols)
	}
	for i, cell := range grid.Cells {
		if cell.Row != 0 || cell.Col != 0 {
			t.Errorf("plot %d at (%d, %d), expected (0, 0)", i, cell.Row, cell.Col)
		}
	}
}

func TestParseFigureErrors(t *testing.T) {
	var verr *diag.ValueError

	_, err := ParseFigure(map[string]any{"plots": []any{}})
	if !errors.As(err, &verr) {
		t.Errorf("empty plots: expected ValueError, got %v", err)
	}
	_, err = ParseFigure(map[string]any{})
	if !errors.As(err, &verr) {
		t.Errorf("no plots: expected ValueError, got %v", err)
	}
	_, err = ParseFigure(map[string]any{"plot": linePlot(nil), "plots": []any{linePlot(nil)}})
	if !errors.As(err, &verr) {
		t.Errorf("both plot keys: expected ValueError, got %v", err)
	}
	_, err = ParseFigure(map[string]any{
		"plots": []any{
			linePlot(map[string]any{"subplot": []any{0, 1}}),
			linePlot(nil),
		},
	})
	if !errors.As(err, &verr) {
		t.Errorf("0-indexed placement: expected ValueError, got %v", err)
	}

	var terr *diag.TypeError
	_, err = ParseFigure("not a figure")
	if !errors.As(err, &terr) {
		t.Errorf("string figure: expected TypeError, got %v", err)
	}
}

func TestParseFigureLegendAndSpace(t *testing.T) {
	fig, err := ParseFigure(map[string]any{
		"plots":  []any{linePlot(nil), linePlot(nil)},
		"space":  1.5,
		"legend": "right",
	})
	if err != nil {
		t.Fatalf("ParseFigure failed: %v", err)
	}
	grid := fig.Content.(models.SubplotGrid)
	if grid.Space == nil || *grid.Space != 1.5 {
		t.Errorf("grid space = %v", grid.Space)
	}
	if fig.Legend == nil || fig.Legend.Pos != models.FigureLegendRight {
		t.Errorf("figure legend = %+v", fig.Legend)
	}
}
