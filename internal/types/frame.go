package types

import (
	"fmt"
	"math"
)

// Frame holds named indicator series aligned index-for-index with the candles
// they were computed from. Positions without enough history hold NaN, never
// zero. Column order is insertion order.
type Frame struct {
	Ts    []int64
	names []string
	cols  map[string][]float64
}

func NewFrame(ts []int64) *Frame {
	return &Frame{Ts: ts, cols: map[string][]float64{}}
}

func (f *Frame) Len() int { return len(f.Ts) }

// Add registers a series under name. The series must be exactly as long as
// the frame's timestamp axis.
func (f *Frame) Add(name string, vals []float64) error {
	if len(vals) != len(f.Ts) {
		return fmt.Errorf("series %q has %d values, frame has %d rows", name, len(vals), len(f.Ts))
	}
	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
	}
	f.cols[name] = vals
	return nil
}

func (f *Frame) Names() []string { return f.names }

func (f *Frame) Column(name string) ([]float64, bool) {
	c, ok := f.cols[name]
	return c, ok
}

// Value returns the series value at row i, or NaN when the column does not
// exist.
func (f *Frame) Value(name string, i int) float64 {
	c, ok := f.cols[name]
	if !ok || i < 0 || i >= len(c) {
		return math.NaN()
	}
	return c[i]
}

// DefinedRows returns the indices of rows where every registered column holds
// a real value.
func (f *Frame) DefinedRows() []int {
	rows := make([]int, 0, len(f.Ts))
	for i := range f.Ts {
		defined := true
		for _, name := range f.names {
			if math.IsNaN(f.cols[name][i]) {
				defined = false
				break
			}
		}
		if defined {
			rows = append(rows, i)
		}
	}
	return rows
}
