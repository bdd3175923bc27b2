// Package parser reads SVG plot documents: it extracts candidate samples and
// locates and annotates the plot title.
package parser

import (
	"math"
	"regexp"
	"strconv"

	"github.com/ukaji3/plotlog-go/pkg/plotlog/models"
)

// MinSamples is the number of positive values a document needs before its
// range is considered meaningful.
const MinSamples = 3

// textNumberPattern matches <text> elements whose whole content is a
// numeric literal.
var textNumberPattern = regexp.MustCompile(`<text[^>]*>([0-9.e+-]+)</text>`)

// ExtractSamples returns the positive numbers found in the text annotations
// of an SVG document, in document order.
//
// This is a text-annotation-derived sample proxy: the values are whatever
// numeric labels the plot carries (axis tick labels included), not the
// plotted coordinates. It reports false when fewer than MinSamples values
// remain.
func ExtractSamples(content []byte) (models.Samples, bool) {
	var samples models.Samples
	for _, m := range textNumberPattern.FindAllSubmatch(content, -1) {
		v, ok := parseSample(string(m[1]))
		if !ok {
			continue
		}
		samples = append(samples, v)
	}
	if len(samples) < MinSamples {
		return nil, false
	}
	return samples, true
}

// parseSample parses a numeric token, rejecting unparsable, non-finite and
// non-positive values.
func parseSample(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f <= 0 {
		return 0, false
	}
	return f, true
}
