// Package models holds the plain data types shared by the plotlog packages.
package models

import "math"

// Samples is an ordered set of values extracted from one plot document.
// A set used for scale decisions contains only values greater than zero.
type Samples []float64

// Range returns the axis range spanned by s. It reports false when s is empty.
func (s Samples) Range() (AxisRange, bool) {
	if len(s) == 0 {
		return AxisRange{}, false
	}
	r := AxisRange{Min: math.Inf(+1), Max: math.Inf(-1)}
	for _, v := range s {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r, true
}

// AxisRange is the [Min, Max] interval covered by a sample set.
type AxisRange struct {
	// Min is the smallest sample.
	Min float64 `json:"min"`
	// Max is the largest sample.
	Max float64 `json:"max"`
}

// Ratio returns Max/Min, the dynamic range of r.
// It returns 0 when Min is not positive.
func (r AxisRange) Ratio() float64 {
	if r.Min <= 0 {
		return 0
	}
	return r.Max / r.Min
}

// Tick is an axis reference point on a logarithmic axis.
type Tick struct {
	// Value is the power of ten the tick sits on.
	Value float64 `json:"value"`
	// Label is the display text, e.g. "10", "0.01" or "10^3".
	Label string `json:"label"`
}
