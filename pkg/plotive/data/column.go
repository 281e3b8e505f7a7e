package data

import (
	"iter"
	"math"
)

// float64Column wraps a backing slice without copying. Non-finite
// entries count as missing.
type float64Column []float64

func (c float64Column) Len() int { return len(c) }

func (c float64Column) LenSome() int {
	n := 0
	for _, f := range c {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			n++
		}
	}
	return n
}

func (c float64Column) Float64s() (iter.Seq2[float64, bool], bool) {
	return func(yield func(float64, bool) bool) {
		for _, f := range c {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				if !yield(0, false) {
					return
				}
				continue
			}
			if !yield(f, true) {
				return
			}
		}
	}, true
}

func (c float64Column) Int64s() (iter.Seq2[int64, bool], bool) { return nil, false }

type float32Column []float32

func (c float32Column) Len() int { return len(c) }

func (c float32Column) LenSome() int {
	n := 0
	for _, f := range c {
		f64 := float64(f)
		if !math.IsNaN(f64) && !math.IsInf(f64, 0) {
			n++
		}
	}
	return n
}

func (c float32Column) Float64s() (iter.Seq2[float64, bool], bool) {
	return func(yield func(float64, bool) bool) {
		for _, f := range c {
			f64 := float64(f)
			if math.IsNaN(f64) || math.IsInf(f64, 0) {
				if !yield(0, false) {
					return
				}
				continue
			}
			if !yield(f64, true) {
				return
			}
		}
	}, true
}

func (c float32Column) Int64s() (iter.Seq2[int64, bool], bool) { return nil, false }

// int64Column has no missing representation; every entry is present.
type int64Column []int64

func (c int64Column) Len() int     { return len(c) }
func (c int64Column) LenSome() int { return len(c) }

func (c int64Column) Float64s() (iter.Seq2[float64, bool], bool) {
	return func(yield func(float64, bool) bool) {
		for _, n := range c {
			if !yield(float64(n), true) {
				return
			}
		}
	}, true
}

func (c int64Column) Int64s() (iter.Seq2[int64, bool], bool) {
	return func(yield func(int64, bool) bool) {
		for _, n := range c {
			if !yield(n, true) {
				return
			}
		}
	}, true
}
