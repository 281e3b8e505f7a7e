package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// ParseAxisRef decodes an axis reference: an id (or title) string, or a
// 0-indexed position.
func ParseAxisRef(v any) (models.AxisRef, error) {
	if s, ok := asString(v); ok {
		return models.AxisID{ID: s}, nil
	}
	if i, ok := asInt64(v); ok {
		if i < 0 {
			return nil, diag.NewValueError("axis reference", strconv.FormatInt(i, 10), "a non-negative index")
		}
		return models.AxisIndex{Index: int(i)}, nil
	}
	return nil, diag.NewTypeError("axis reference", describe(v), "an axis id string or an index")
}

// parseRange decodes an explicit (min, max) bound pair. Either bound may
// be null, but not both: a fully unbounded range is expressed by leaving
// the range out entirely.
func parseRange(v any) (models.Range, error) {
	seq, ok := asSeq(v)
	if !ok || len(seq) != 2 {
		return models.Range{}, diag.NewTypeError("range", describe(v), "a (min, max) pair")
	}
	bound := func(e any) (*float64, error) {
		if e == nil {
			return nil, nil
		}
		f, ok := asFloat64(e)
		if !ok {
			return nil, diag.NewTypeError("range bound", describe(e), "a number or null")
		}
		return &f, nil
	}
	min, err := bound(seq[0])
	if err != nil {
		return models.Range{}, err
	}
	max, err := bound(seq[1])
	if err != nil {
		return models.Range{}, err
	}
	if min == nil && max == nil {
		return models.Range{}, diag.NewValueError("range", "(null, null)", "at least one bound")
	}
	return models.Range{Min: min, Max: max}, nil
}

func optionalRange(obj map[string]any) (models.Range, error) {
	rv, ok := attrNotNil(obj, "range")
	if !ok {
		return models.Range{}, nil
	}
	return parseRange(rv)
}

// ParseScale decodes an axis scale: a tagged object, or one of the string
// shortcuts "auto", "lin" and "log" (any other string is a scale shared
// with the axis of that id).
func ParseScale(v any) (models.Scale, error) {
	if s, ok := asString(v); ok {
		switch strings.ToLower(s) {
		case "auto":
			return models.AutoScale{}, nil
		case "lin", "linear":
			return models.LinearScale{}, nil
		case "log":
			return models.LogScale{Base: 10}, nil
		}
		return models.SharedScale{Ref: models.AxisID{ID: s}}, nil
	}
	tag, err := typeTag("scale", v)
	if err != nil {
		return nil, err
	}
	obj, _ := asObject(v)
	switch tag {
	case "AutoScale":
		return models.AutoScale{}, nil
	case "LinScale":
		r, err := optionalRange(obj)
		if err != nil {
			return nil, err
		}
		return models.LinearScale{Range: r}, nil
	case "LogScale":
		scale := models.LogScale{Base: 10}
		if bv, ok := attrNotNil(obj, "base"); ok {
			b, ok := asFloat64(bv)
			if !ok {
				return nil, diag.NewTypeError("scale base", describe(bv), "a number")
			}
			scale.Base = b
		}
		r, err := optionalRange(obj)
		if err != nil {
			return nil, err
		}
		scale.Range = r
		return scale, nil
	case "SharedScale":
		rv, err := requiredAttr(obj, "scale", "ref")
		if err != nil {
			return nil, err
		}
		ref, err := ParseAxisRef(rv)
		if err != nil {
			return nil, err
		}
		return models.SharedScale{Ref: ref}, nil
	}
	return nil, diag.NewTypeError("scale", fmt.Sprintf("tag %q", tag), "AutoScale, LinScale, LogScale or SharedScale")
}

func parseTimeUnit(slot, s string, calendar bool) (models.TimeUnit, error) {
	switch s {
	case "seconds":
		return models.UnitSeconds, nil
	case "minutes":
		return models.UnitMinutes, nil
	case "hours":
		return models.UnitHours, nil
	case "days":
		return models.UnitDays, nil
	}
	if calendar {
		switch s {
		case "weeks":
			return models.UnitWeeks, nil
		case "months":
			return models.UnitMonths, nil
		case "years":
			return models.UnitYears, nil
		}
		return 0, diag.NewValueError(slot, fmt.Sprintf("%q", s), "seconds, minutes, hours, days, weeks, months or years")
	}
	return 0, diag.NewValueError(slot, fmt.Sprintf("%q", s), "seconds, minutes, hours or days")
}

// ParseLocator decodes a tick locator: a tagged object, or one of the
// string shortcuts "auto", "maxn<N>", "pi<N>", "pimultiple<N>", "log<B>",
// "datetime<period,unit>" and "timedelta<period,unit>".
func ParseLocator(v any) (models.Locator, error) {
	if s, ok := asString(v); ok {
		return parseLocatorString(s)
	}
	tag, err := typeTag("ticks locator", v)
	if err != nil {
		return nil, err
	}
	obj, _ := asObject(v)
	switch tag {
	case "AutoTicksLocator":
		return models.AutoLocator{}, nil
	case "MaxNTicksLocator":
		loc := models.MaxNLocator{Bins: 9, Steps: []float64{1, 2, 2.5, 5}}
		if bv, ok := attrNotNil(obj, "bins"); ok {
			b, ok := asUint32(bv)
			if !ok {
				return nil, diag.NewTypeError("ticks locator bins", describe(bv), "a non-negative integer")
			}
			loc.Bins = b
		}
		if sv, ok := attrNotNil(obj, "steps"); ok {
			steps, ok := floatValues(sv)
			if !ok {
				return nil, diag.NewTypeError("ticks locator steps", describe(sv), "a sequence of numbers")
			}
			loc.Steps = steps
		}
		return loc, nil
	case "PiMultipleTicksLocator":
		loc := models.PiMultipleLocator{Bins: 9}
		if bv, ok := attrNotNil(obj, "bins"); ok {
			b, ok := asUint32(bv)
			if !ok {
				return nil, diag.NewTypeError("ticks locator bins", describe(bv), "a non-negative integer")
			}
			loc.Bins = b
		}
		return loc, nil
	case "LogTicksLocator":
		loc := models.LogLocator{Base: 10}
		if bv, ok := attrNotNil(obj, "base"); ok {
			b, ok := asFloat64(bv)
			if !ok {
				return nil, diag.NewTypeError("ticks locator base", describe(bv), "a number")
			}
			loc.Base = b
		}
		return loc, nil
	case "DateTimeTicksLocator":
		unit, period, err := locatorUnitPeriod(obj, "datetime locator unit", true)
		if err != nil {
			return nil, err
		}
		return models.DateTimeLocator{Unit: unit, Period: period}, nil
	case "TimeDeltaTicksLocator":
		unit, period, err := locatorUnitPeriod(obj, "timedelta locator unit", false)
		if err != nil {
			return nil, err
		}
		return models.TimeDeltaLocator{Unit: unit, Period: period}, nil
	}
	return nil, diag.NewTypeError("ticks locator", fmt.Sprintf("tag %q", tag),
		"AutoTicksLocator, MaxNTicksLocator, PiMultipleTicksLocator, LogTicksLocator, DateTimeTicksLocator or TimeDeltaTicksLocator")
}

func locatorUnitPeriod(obj map[string]any, slot string, calendar bool) (models.TimeUnit, uint32, error) {
	uv, err := requiredAttr(obj, slot, "unit")
	if err != nil {
		return 0, 0, err
	}
	us, ok := asString(uv)
	if !ok {
		return 0, 0, diag.NewTypeError(slot, describe(uv), "a unit name string")
	}
	unit, err := parseTimeUnit(slot, us, calendar)
	if err != nil {
		return 0, 0, err
	}
	period := uint32(1)
	if pv, ok := attrNotNil(obj, "period"); ok {
		p, ok := asUint32(pv)
		if !ok {
			return 0, 0, diag.NewTypeError(slot+" period", describe(pv), "a non-negative integer")
		}
		period = p
	}
	return unit, period, nil
}

// parseLocatorString resolves the compact locator shortcuts.
func parseLocatorString(s string) (models.Locator, error) {
	t := strings.ToLower(s)
	switch {
	case t == "auto":
		return models.AutoLocator{}, nil
	case strings.HasPrefix(t, "maxn"):
		bins, err := shortcutBins(s, t[4:])
		if err != nil {
			return nil, err
		}
		return models.MaxNLocator{Bins: bins, Steps: []float64{1, 2, 2.5, 5}}, nil
	case strings.HasPrefix(t, "pimultiple"):
		bins, err := shortcutBins(s, t[10:])
		if err != nil {
			return nil, err
		}
		return models.PiMultipleLocator{Bins: bins}, nil
	case strings.HasPrefix(t, "pi"):
		bins, err := shortcutBins(s, t[2:])
		if err != nil {
			return nil, err
		}
		return models.PiMultipleLocator{Bins: bins}, nil
	case strings.HasPrefix(t, "log"):
		base := 10.0
		if rest := t[3:]; rest != "" {
			b, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return nil, diag.NewValueError("ticks locator", fmt.Sprintf("%q", s), "log<base> with a numeric base")
			}
			base = b
		}
		return models.LogLocator{Base: base}, nil
	case strings.HasPrefix(t, "datetime"):
		period, unit, err := shortcutPeriodUnit("ticks locator", s, t[8:], true)
		if err != nil {
			return nil, err
		}
		return models.DateTimeLocator{Unit: unit, Period: period}, nil
	case strings.HasPrefix(t, "timedelta"):
		period, unit, err := shortcutPeriodUnit("ticks locator", s, t[9:], false)
		if err != nil {
			return nil, err
		}
		return models.TimeDeltaLocator{Unit: unit, Period: period}, nil
	}
	return nil, diag.NewValueError("ticks locator", fmt.Sprintf("%q", s),
		`"auto", "maxn<N>", "pi<N>", "log<B>", "datetime<p,unit>" or "timedelta<p,unit>"`)
}

func shortcutBins(orig, rest string) (uint32, error) {
	if rest == "" {
		return 9, nil
	}
	bins, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, diag.NewValueError("ticks locator", fmt.Sprintf("%q", orig), "a numeric bin count suffix")
	}
	return uint32(bins), nil
}

func shortcutPeriodUnit(slot, orig, rest string, calendar bool) (uint32, models.TimeUnit, error) {
	parts := strings.SplitN(rest, ",", 2)
	period := uint64(1)
	if parts[0] != "" {
		p, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return 0, 0, diag.NewValueError(slot, fmt.Sprintf("%q", orig), "a numeric period before the unit")
		}
		period = p
	}
	if len(parts) < 2 {
		return 0, 0, diag.NewValueError(slot, fmt.Sprintf("%q", orig), "a <period,unit> suffix")
	}
	unit, err := parseTimeUnit(slot, parts[1], calendar)
	if err != nil {
		return 0, 0, err
	}
	return uint32(period), unit, nil
}

// ParseFormatter decodes a tick label formatter from its tagged object.
func ParseFormatter(v any) (models.Formatter, error) {
	tag, err := typeTag("ticks formatter", v)
	if err != nil {
		return nil, err
	}
	obj, _ := asObject(v)
	switch tag {
	case "AutoTicksFormatter":
		return models.AutoFormatter{}, nil
	case "SharedAutoTicksFormatter":
		return models.SharedAutoFormatter{}, nil
	case "DecimalTicksFormatter":
		f := models.DecimalFormatter{Precision: 2}
		if pv, ok := attrNotNil(obj, "precision"); ok {
			p, ok := asUint32(pv)
			if !ok {
				return nil, diag.NewTypeError("ticks formatter precision", describe(pv), "a non-negative integer")
			}
			f.Precision = p
		}
		return f, nil
	case "PercentTicksFormatter":
		var f models.PercentFormatter
		if dv, ok := attrNotNil(obj, "decimals"); ok {
			d, ok := asUint32(dv)
			if !ok {
				return nil, diag.NewTypeError("ticks formatter decimals", describe(dv), "a non-negative integer")
			}
			f.Decimals = &d
		}
		return f, nil
	case "DateTimeTicksFormatter":
		var f models.DateTimeFormatter
		if fv, ok := attrNotNil(obj, "fmt"); ok {
			s, ok := asString(fv)
			if !ok {
				return nil, diag.NewTypeError("ticks formatter fmt", describe(fv), "a format string")
			}
			f.Format = &s
		}
		return f, nil
	case "TimeDeltaTicksFormatter":
		var f models.TimeDeltaFormatter
		if fv, ok := attrNotNil(obj, "fmt"); ok {
			s, ok := asString(fv)
			if !ok {
				return nil, diag.NewTypeError("ticks formatter fmt", describe(fv), "a format string")
			}
			f.Format = &s
		}
		return f, nil
	}
	return nil, diag.NewTypeError("ticks formatter", fmt.Sprintf("tag %q", tag),
		"AutoTicksFormatter, SharedAutoTicksFormatter, DecimalTicksFormatter, PercentTicksFormatter, DateTimeTicksFormatter or TimeDeltaTicksFormatter")
}

// parseTicks decodes the major tick configuration. A bare string is a
// locator shortcut with automatic labels. On an object, a missing
// formatter keeps the automatic one while an explicit null disables tick
// labels entirely.
func parseTicks(v any) (models.Ticks, error) {
	ticks := models.DefaultTicks()
	if s, ok := asString(v); ok {
		loc, err := parseLocatorString(s)
		if err != nil {
			return models.Ticks{}, err
		}
		ticks.Locator = loc
		return ticks, nil
	}
	obj, ok := asObject(v)
	if !ok {
		return models.Ticks{}, diag.NewTypeError("ticks", describe(v), "a locator shortcut string or a ticks object")
	}
	if lv, ok := attrNotNil(obj, "locator"); ok {
		loc, err := ParseLocator(lv)
		if err != nil {
			return models.Ticks{}, err
		}
		ticks.Locator = loc
	}
	if fv, ok := obj["formatter"]; ok {
		if fv == nil {
			ticks.Formatter = nil
		} else {
			f, err := ParseFormatter(fv)
			if err != nil {
				return models.Ticks{}, err
			}
			ticks.Formatter = f
		}
	}
	return ticks, nil
}

// ParseAxis assembles an axis: the required scale first, then every
// optional overlay in turn. Absent overlays leave the defaults untouched.
func ParseAxis(v any) (models.Axis, error) {
	obj, ok := asObject(v)
	if !ok {
		return models.Axis{}, diag.NewTypeError("axis", describe(v), "an axis object")
	}
	sv, err := requiredAttr(obj, "axis", "scale")
	if err != nil {
		return models.Axis{}, err
	}
	scale, err := ParseScale(sv)
	if err != nil {
		return models.Axis{}, err
	}
	axis := models.NewAxis(scale)

	if tv, ok := attrNotNil(obj, "title"); ok {
		s, ok := asString(tv)
		if !ok {
			return models.Axis{}, diag.NewTypeError("axis title", describe(tv), "a string")
		}
		axis.Title = &s
	}
	if iv, ok := attrNotNil(obj, "id"); ok {
		s, ok := asString(iv)
		if !ok {
			return models.Axis{}, diag.NewTypeError("axis id", describe(iv), "a string")
		}
		axis.ID = &s
	}
	if ov, ok := attrNotNil(obj, "opposite_side"); ok {
		b, ok := asBool(ov)
		if !ok {
			return models.Axis{}, diag.NewTypeError("axis opposite_side", describe(ov), "a boolean")
		}
		axis.OppositeSide = b
	}
	if tv, ok := attrNotNil(obj, "ticks"); ok {
		ticks, err := parseTicks(tv)
		if err != nil {
			return models.Axis{}, err
		}
		axis.Ticks = &ticks
	}
	if gv, ok := attrNotNil(obj, "grid"); ok {
		stroke, err := parseGridStroke("axis grid", gv, false)
		if err != nil {
			return models.Axis{}, err
		}
		axis.Grid = &stroke
	}
	if mv, ok := attrNotNil(obj, "minor_ticks"); ok {
		loc, err := ParseLocator(mv)
		if err != nil {
			return models.Axis{}, err
		}
		axis.MinorTicks = &models.MinorTicks{Locator: loc}
	}
	if gv, ok := attrNotNil(obj, "minor_grid"); ok {
		stroke, err := parseGridStroke("axis minor_grid", gv, true)
		if err != nil {
			return models.Axis{}, err
		}
		axis.MinorGrid = &stroke
	}
	return axis, nil
}

// parseGridStroke decodes a grid stroke. The shortcut "auto" is the theme
// grid color; minor grids default to a thin dashed line.
func parseGridStroke(slot string, v any, minor bool) (models.Stroke, error) {
	base := models.DefaultStroke()
	base.Color = models.RoleColor{Role: models.RoleGrid}
	if minor {
		base.Width = 0.5
		base.Pattern = models.DashPattern{Segments: []float32{5, 5}}
	}
	if s, ok := asString(v); ok {
		if strings.ToLower(s) == "auto" {
			return base, nil
		}
		c, err := ParseThemeColor(s)
		if err != nil {
			return models.Stroke{}, err
		}
		base.Color = c
		return base, nil
	}
	return parseThemeStroke(slot, v)
}
