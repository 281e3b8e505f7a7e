package models

// PlotLegendPos positions a legend relative to one plot, either outside
// the data area or pinned inside it.
type PlotLegendPos uint8

const (
	PlotLegendOutTop PlotLegendPos = iota
	PlotLegendOutRight
	PlotLegendOutBottom
	PlotLegendOutLeft
	PlotLegendInTop
	PlotLegendInTopRight
	PlotLegendInRight
	PlotLegendInBottomRight
	PlotLegendInBottom
	PlotLegendInBottomLeft
	PlotLegendInLeft
	PlotLegendInTopLeft
)

// FigureLegendPos positions a legend on one edge of the whole figure.
type FigureLegendPos uint8

const (
	FigureLegendTop FigureLegendPos = iota
	FigureLegendRight
	FigureLegendBottom
	FigureLegendLeft
)

// Legend holds the display settings shared by plot and figure legends.
//
// FillSet distinguishes a fill that was never touched (the theme default
// applies) from an explicit override; FillSet with a nil Fill means the
// fill was explicitly disabled.
type Legend[P any] struct {
	Pos     P
	Columns *int
	Padding Padding
	Fill    ThemeColor
	FillSet bool
	Spacing *Size
	Margin  *float32
}

// NewLegend returns a legend at the given position with every other
// setting left to the renderer.
func NewLegend[P any](pos P) Legend[P] {
	return Legend[P]{Pos: pos}
}

// PlotLegend is a legend attached to a single plot.
type PlotLegend = Legend[PlotLegendPos]

// FigureLegend is a legend attached to the whole figure.
type FigureLegend = Legend[FigureLegendPos]
