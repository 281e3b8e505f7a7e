package models

// ZOrder places an annotation relative to the plot's series.
type ZOrder uint8

const (
	AboveSeries ZOrder = iota
	BelowSeries
)

// Anchor ties a label's text box to its position.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// Annotation is a drawable overlay bound to a plot.
type Annotation struct {
	Kind  AnnotationKind
	XAxis AxisRef // nil targets the plot's first x axis
	YAxis AxisRef
	Z     ZOrder
}

// AnnotationKind is the concrete annotation geometry.
type AnnotationKind interface{ isAnnotationKind() }

// LineAnnotation draws an infinite line through the data space.
type LineAnnotation struct {
	Geometry LineGeometry
	Stroke   *Stroke
}

// LineGeometry is one of the four ways to define a line annotation.
type LineGeometry interface{ isLineGeometry() }

// HorizontalLine is the line y = Y.
type HorizontalLine struct {
	Y float64
}

// VerticalLine is the line x = X.
type VerticalLine struct {
	X float64
}

// SlopeLine passes through (X, Y) with the given slope.
type SlopeLine struct {
	X, Y  float64
	Slope float32
}

// TwoPointLine passes through two points.
type TwoPointLine struct {
	X1, Y1, X2, Y2 float64
}

func (HorizontalLine) isLineGeometry() {}
func (VerticalLine) isLineGeometry()   {}
func (SlopeLine) isLineGeometry()      {}
func (TwoPointLine) isLineGeometry()   {}

// ArrowAnnotation draws an arrow from (X, Y) along (DX, DY).
type ArrowAnnotation struct {
	X, Y     float64
	DX, DY   float32
	HeadSize *float32
	Stroke   *Stroke
}

// LabelFrame frames a label with an optional fill and border.
type LabelFrame struct {
	Fill   ThemeColor // nil leaves the frame unfilled
	Stroke *Stroke
}

// LabelAnnotation places text in data space.
type LabelAnnotation struct {
	X, Y   float64
	Text   string
	Anchor Anchor
	Color  ThemeColor // nil uses the theme foreground
	Angle  *float32
	Frame  *LabelFrame
}

func (LineAnnotation) isAnnotationKind()  {}
func (ArrowAnnotation) isAnnotationKind() {}
func (LabelAnnotation) isAnnotationKind() {}
