// Package scale decides when an axis should be logarithmic and provides the
// log-axis arithmetic: value positions and decade tick labels.
//
// LogNormalizer and LogTicker adapt the same arithmetic to gonum's
// plot.Normalizer and plot.Ticker, for callers that render plots with
// gonum.org/v1/plot.
package scale

import "math"

// DecadeThreshold is the max/min ratio at or above which a log axis is used.
// 100 means the data spans at least two orders of magnitude.
const DecadeThreshold = 100.0

// ShouldUseLog reports whether values span enough decades to warrant a
// logarithmic axis. It is false for an empty slice or when any value is not
// strictly positive.
func ShouldUseLog(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	min, max := math.Inf(+1), math.Inf(-1)
	for _, v := range values {
		if v <= 0 || math.IsNaN(v) {
			return false
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max/min >= DecadeThreshold
}

// log10 is math.Log10 snapped to the nearest integer when within rounding
// error of it, so exact powers of ten yield exact exponents.
func log10(x float64) float64 {
	l := math.Log10(x)
	if r := math.Round(l); math.Abs(l-r) < 1e-12 {
		return r
	}
	return l
}
