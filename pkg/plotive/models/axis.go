package models

// AxisRef points at one axis of a plot, by identifier or by position.
type AxisRef interface{ isAxisRef() }

// AxisID references an axis by its id (or title).
type AxisID struct {
	ID string
}

// AxisIndex references an axis by its index in the plot's axis list.
type AxisIndex struct {
	Index int
}

func (AxisID) isAxisRef()    {}
func (AxisIndex) isAxisRef() {}

// Range bounds a scale. A nil bound is resolved automatically from the
// data at render time.
type Range struct {
	Min, Max *float64
}

// Scale selects how axis coordinates map to screen space.
type Scale interface{ isScale() }

// AutoScale lets the renderer pick a scale from the data.
type AutoScale struct{}

// LinearScale is a linear scale with optional bounds.
type LinearScale struct {
	Range Range
}

// LogScale is a logarithmic scale with a configurable base.
type LogScale struct {
	Base  float64
	Range Range
}

// SharedScale reuses the limits of another axis.
type SharedScale struct {
	Ref AxisRef
}

func (AutoScale) isScale()   {}
func (LinearScale) isScale() {}
func (LogScale) isScale()    {}
func (SharedScale) isScale() {}

// TimeUnit parameterizes datetime and timedelta tick locators.
type TimeUnit uint8

const (
	UnitSeconds TimeUnit = iota
	UnitMinutes
	UnitHours
	UnitDays
	UnitWeeks
	UnitMonths
	UnitYears
)

func (u TimeUnit) String() string {
	switch u {
	case UnitSeconds:
		return "seconds"
	case UnitMinutes:
		return "minutes"
	case UnitHours:
		return "hours"
	case UnitDays:
		return "days"
	case UnitWeeks:
		return "weeks"
	case UnitMonths:
		return "months"
	case UnitYears:
		return "years"
	}
	return "unknown"
}

// Locator selects where an axis places its ticks.
type Locator interface{ isLocator() }

// AutoLocator lets the renderer pick tick positions.
type AutoLocator struct{}

// MaxNLocator caps the number of major ticks.
type MaxNLocator struct {
	Bins  uint32
	Steps []float64
}

// PiMultipleLocator places ticks at multiples of pi.
type PiMultipleLocator struct {
	Bins uint32
}

// LogLocator places ticks at powers of the base.
type LogLocator struct {
	Base float64
}

// DateTimeLocator places ticks every Period calendar units.
type DateTimeLocator struct {
	Unit   TimeUnit
	Period uint32
}

// TimeDeltaLocator places ticks every Period duration units.
// Only seconds through days are meaningful for durations.
type TimeDeltaLocator struct {
	Unit   TimeUnit
	Period uint32
}

func (AutoLocator) isLocator()       {}
func (MaxNLocator) isLocator()       {}
func (PiMultipleLocator) isLocator() {}
func (LogLocator) isLocator()        {}
func (DateTimeLocator) isLocator()   {}
func (TimeDeltaLocator) isLocator()  {}

// Formatter turns tick positions into labels.
type Formatter interface{ isFormatter() }

// AutoFormatter lets the renderer pick a label format.
type AutoFormatter struct{}

// SharedAutoFormatter synchronizes the format with a shared axis.
type SharedAutoFormatter struct{}

// DecimalFormatter prints a fixed number of decimal digits.
type DecimalFormatter struct {
	Precision uint32
}

// PercentFormatter prints percentages, with optional fixed decimals.
type PercentFormatter struct {
	Decimals *uint32
}

// DateTimeFormatter prints calendar labels. A nil Format is automatic.
type DateTimeFormatter struct {
	Format *string
}

// TimeDeltaFormatter prints duration labels. A nil Format is automatic.
type TimeDeltaFormatter struct {
	Format *string
}

func (AutoFormatter) isFormatter()       {}
func (SharedAutoFormatter) isFormatter() {}
func (DecimalFormatter) isFormatter()    {}
func (PercentFormatter) isFormatter()    {}
func (DateTimeFormatter) isFormatter()   {}
func (TimeDeltaFormatter) isFormatter()  {}

// Ticks configures major tick placement and labelling. A nil Formatter
// means tick labels were explicitly disabled; this is distinct from the
// automatic formatter a fresh Ticks carries.
type Ticks struct {
	Locator   Locator
	Formatter Formatter
}

// DefaultTicks returns automatic tick placement with automatic labels.
func DefaultTicks() Ticks {
	return Ticks{Locator: AutoLocator{}, Formatter: AutoFormatter{}}
}

// MinorTicks configures minor tick placement. Minor ticks carry no labels.
type MinorTicks struct {
	Locator Locator
}

// Axis describes one plot axis: a required scale plus optional overlays.
type Axis struct {
	Scale        Scale
	Title        *string
	ID           *string
	OppositeSide bool
	Ticks        *Ticks
	Grid         *Stroke
	MinorTicks   *MinorTicks
	MinorGrid    *Stroke
}

// NewAxis returns an axis with the given scale and no overlays.
func NewAxis(scale Scale) Axis {
	return Axis{Scale: scale}
}
