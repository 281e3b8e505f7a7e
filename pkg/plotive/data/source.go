// Package data provides column-oriented data sources for figure series.
//
// A Source hands out named columns; a Column exposes its values as lazy,
// restartable sequences of (value, present) pairs so missing entries
// survive the trip through whatever backend produced them. Backends that
// hold typed buffers hand them over without copying.
package data

import (
	"fmt"
	"iter"
	"slices"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
)

// Column is a single named series of values.
type Column interface {
	// Len is the total number of entries, missing ones included.
	Len() int
	// LenSome is the number of present entries.
	LenSome() int
	// Float64s yields every entry as a float64 with a presence flag.
	// The second result is false when the column cannot be viewed as
	// floating point at all.
	Float64s() (iter.Seq2[float64, bool], bool)
	// Int64s yields every entry as an int64 with a presence flag, or
	// false when the column is not integer-typed.
	Int64s() (iter.Seq2[int64, bool], bool)
}

// Source is a set of named columns.
type Source interface {
	// Names lists the column names in source order.
	Names() []string
	// Column returns the named column, or nil when absent.
	Column(name string) Column
}

// Frame is the minimal surface a tabular backend must expose to be used
// as a data source. ColumnValues returns the backing values for a column
// as one of the supported slice kinds.
type Frame interface {
	ColumnNames() []string
	ColumnValues(name string) (any, bool)
}

// Float64Converter is an optional Frame capability: backends that can
// coerce arbitrary column types to float64 implement it.
type Float64Converter interface {
	ConvertFloat64(name string) ([]float64, bool)
}

// MemorySource is a Source over in-memory columns.
type MemorySource struct {
	names   []string
	columns map[string]Column
}

// Names returns a copy of the column names in source order.
func (s *MemorySource) Names() []string {
	return slices.Clone(s.names)
}

// Column returns the named column, or nil when the source has none.
func (s *MemorySource) Column(name string) Column {
	return s.columns[name]
}

// Empty returns a source with no columns.
func Empty() *MemorySource {
	return &MemorySource{columns: map[string]Column{}}
}

// FromMap builds a source from named float64 columns. Names are ordered
// lexically since the map carries no order of its own.
func FromMap(columns map[string][]float64) *MemorySource {
	src := &MemorySource{columns: make(map[string]Column, len(columns))}
	for name, values := range columns {
		src.names = append(src.names, name)
		src.columns[name] = float64Column(values)
	}
	slices.Sort(src.names)
	return src
}

// FromColumns builds a source from a name-to-values mapping, with the
// same typed-buffer recognition as FromFrame: double, single and 64-bit
// integer buffers are wrapped without copying, plain numeric sequences
// are converted, anything else is a type error. Names are ordered
// lexically since the map carries no order of its own.
func FromColumns(columns map[string]any) (*MemorySource, error) {
	src := &MemorySource{
		names:   make([]string, 0, len(columns)),
		columns: make(map[string]Column, len(columns)),
	}
	for name, values := range columns {
		col, err := wrapColumn(name, nil, values)
		if err != nil {
			return nil, err
		}
		src.names = append(src.names, name)
		src.columns[name] = col
	}
	slices.Sort(src.names)
	return src, nil
}

// FromFrame adapts a tabular backend into a source, preserving the
// backend's column order. A typed buffer is wrapped without copying;
// otherwise the backend's own float64 coercion is tried; a column that
// supports neither is a type error.
func FromFrame(frame Frame) (*MemorySource, error) {
	names := frame.ColumnNames()
	src := &MemorySource{
		names:   make([]string, 0, len(names)),
		columns: make(map[string]Column, len(names)),
	}
	for _, name := range names {
		if _, dup := src.columns[name]; dup {
			return nil, diag.NewValueError("data source", fmt.Sprintf("duplicate column %q", name), "unique column names")
		}
		values, ok := frame.ColumnValues(name)
		if !ok {
			return nil, diag.NewValueError("data source", fmt.Sprintf("column %q", name), "a readable column")
		}
		col, err := wrapColumn(name, frame, values)
		if err != nil {
			return nil, err
		}
		src.names = append(src.names, name)
		src.columns[name] = col
	}
	return src, nil
}

func wrapColumn(name string, frame Frame, values any) (Column, error) {
	switch v := values.(type) {
	case []float64:
		return float64Column(v), nil
	case []float32:
		return float32Column(v), nil
	case []int64:
		return int64Column(v), nil
	case []int:
		col := make(int64Column, len(v))
		for i, n := range v {
			col[i] = int64(n)
		}
		return col, nil
	}
	if conv, ok := frame.(Float64Converter); ok {
		if coerced, ok := conv.ConvertFloat64(name); ok {
			return float64Column(coerced), nil
		}
	}
	if seq, ok := values.([]any); ok {
		col := make(float64Column, len(seq))
		numeric := true
		for i, e := range seq {
			f, ok := asNumber(e)
			if !ok {
				numeric = false
				break
			}
			col[i] = f
		}
		if numeric {
			return col, nil
		}
	}
	return nil, diag.NewTypeError(
		fmt.Sprintf("data source column %q", name),
		fmt.Sprintf("%T", values), "a numeric column")
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
