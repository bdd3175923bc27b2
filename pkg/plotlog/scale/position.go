package scale

import (
	"gonum.org/v1/plot"
)

// LogPosition maps value onto the linear interval [coordMin, coordMax] that
// represents the logarithmic data interval [dataMin, dataMax].
//
// A value <= 0 and a zero-width data range both collapse to coordMin.
// The coordinate interval may be reversed, e.g. for an SVG y axis.
func LogPosition(value, dataMin, dataMax, coordMin, coordMax float64) float64 {
	if value <= 0 || dataMin <= 0 || dataMax <= 0 {
		return coordMin
	}
	lmin, lmax := log10(dataMin), log10(dataMax)
	width := lmax - lmin
	if width == 0 {
		return coordMin
	}
	f := (log10(value) - lmin) / width
	// Weighted form keeps both endpoints exact.
	return coordMin*(1-f) + coordMax*f
}

// LogNormalizer is a gonum plot.Normalizer using LogPosition, so that data
// containing non-positive values or a single distinct value does not panic
// the way plot.LogScale does.
type LogNormalizer struct{}

var _ plot.Normalizer = LogNormalizer{}

// Normalize returns the fractional log position of x within [min, max].
func (LogNormalizer) Normalize(min, max, x float64) float64 {
	return LogPosition(x, min, max, 0, 1)
}
