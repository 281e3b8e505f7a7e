package models

// Plot is one chart: ordered series plus axes, annotations and an
// optional legend.
type Plot struct {
	Series      []Series
	Legend      *PlotLegend
	Title       *string
	XAxes       []Axis
	YAxes       []Axis
	Annotations []Annotation
}

// Content is the body of a figure: a single plot or a subplot grid.
type Content interface{ isContent() }

// SinglePlot fills the whole figure with one plot.
type SinglePlot struct {
	Plot Plot
}

// PlacedPlot pins a plot to a 0-indexed grid cell.
type PlacedPlot struct {
	Row, Col uint32
	Plot     Plot
}

// SubplotGrid lays plots out on a Rows x Cols grid.
type SubplotGrid struct {
	Rows, Cols uint32
	Cells      []PlacedPlot
	Space      *float32 // uniform inter-cell spacing in pixels
}

func (SinglePlot) isContent()  {}
func (SubplotGrid) isContent() {}

// Figure is the top-level description handed to a rendering backend.
type Figure struct {
	Content Content
	Fill    ThemeColor // nil uses the style's background
	Title   *string
	Legend  *FigureLegend
}
