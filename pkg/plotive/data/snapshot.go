package data

import (
	"fmt"
	"math"

	"github.com/tiendc/go-deepcopy"
)

// Snapshot materializes an independent copy of a source, detached from
// whatever backend or buffers produced it. Interactive consumers take a
// snapshot so later mutation of the original does not reach them.
func Snapshot(src Source) (*MemorySource, error) {
	if src == nil {
		return Empty(), nil
	}
	if mem, ok := src.(*MemorySource); ok {
		return snapshotMemory(mem)
	}

	out := &MemorySource{columns: map[string]Column{}}
	for _, name := range src.Names() {
		col := src.Column(name)
		if col == nil {
			continue
		}
		copied, err := materialize(name, col)
		if err != nil {
			return nil, err
		}
		out.names = append(out.names, name)
		out.columns[name] = copied
	}
	return out, nil
}

func snapshotMemory(src *MemorySource) (*MemorySource, error) {
	out := &MemorySource{
		names:   make([]string, 0, len(src.names)),
		columns: make(map[string]Column, len(src.columns)),
	}
	for _, name := range src.names {
		var copied Column
		switch col := src.columns[name].(type) {
		case float64Column:
			var buf []float64
			if err := deepcopy.Copy(&buf, []float64(col)); err != nil {
				return nil, fmt.Errorf("snapshot column %q: %w", name, err)
			}
			copied = float64Column(buf)
		case float32Column:
			var buf []float32
			if err := deepcopy.Copy(&buf, []float32(col)); err != nil {
				return nil, fmt.Errorf("snapshot column %q: %w", name, err)
			}
			copied = float32Column(buf)
		case int64Column:
			var buf []int64
			if err := deepcopy.Copy(&buf, []int64(col)); err != nil {
				return nil, fmt.Errorf("snapshot column %q: %w", name, err)
			}
			copied = int64Column(buf)
		default:
			var err error
			if copied, err = materialize(name, col); err != nil {
				return nil, err
			}
		}
		out.names = append(out.names, name)
		out.columns[name] = copied
	}
	return out, nil
}

// materialize copies an arbitrary column through its sequence views,
// keeping the integer representation when the column has one.
func materialize(name string, col Column) (Column, error) {
	if seq, ok := col.Int64s(); ok {
		buf := make(int64Column, 0, col.Len())
		for n := range seq {
			buf = append(buf, n)
		}
		return buf, nil
	}
	seq, ok := col.Float64s()
	if !ok {
		return nil, fmt.Errorf("snapshot column %q: no numeric view", name)
	}
	buf := make(float64Column, 0, col.Len())
	for f, present := range seq {
		if !present {
			f = math.NaN()
		}
		buf = append(buf, f)
	}
	return buf, nil
}
