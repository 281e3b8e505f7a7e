package models

// Interpolation selects how consecutive line points are joined.
type Interpolation uint8

const (
	InterpLinear Interpolation = iota
	InterpStepEarly
	InterpStepMiddle
	InterpStepLate
	InterpSpline
)

func (i Interpolation) String() string {
	switch i {
	case InterpLinear:
		return "linear"
	case InterpStepEarly:
		return "step-early"
	case InterpStepMiddle:
		return "step-middle"
	case InterpStepLate:
		return "step-late"
	case InterpSpline:
		return "spline"
	}
	return "unknown"
}

// Series is one renderable data series. Line is the only kind today;
// the set is closed but meant to grow.
type Series interface{ isSeries() }

// LineSeries connects x/y points with a stroked line.
type LineSeries struct {
	X, Y          DataColumnRef
	Name          *string
	XAxis, YAxis  AxisRef // nil targets the plot's first axis
	Stroke        *SeriesStroke
	Interpolation *Interpolation
}

func (LineSeries) isSeries() {}
