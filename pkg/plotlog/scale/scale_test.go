package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"

	"github.com/ukaji3/plotlog-go/pkg/plotlog/models"
)

func TestShouldUseLog(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected bool
	}{
		{"empty", nil, false},
		{"identical", []float64{5, 5, 5}, false},
		{"ratio 2", []float64{1.0, 1.5, 2.0}, false},
		{"ratio just below", []float64{1, 99.99}, false},
		{"ratio 100 inclusive", []float64{1, 100}, true},
		{"four decades", []float64{0.001, 0.01, 10.0}, true},
		{"zero present", []float64{0, 1, 1000}, false},
		{"negative present", []float64{-1, 1, 1000}, false},
		{"unordered", []float64{500, 2, 3}, true},
	}

	for _, tt := range tests {
		result := ShouldUseLog(tt.values)
		if result != tt.expected {
			t.Errorf("ShouldUseLog(%s %v) = %v, expected %v", tt.name, tt.values, result, tt.expected)
		}
	}
}

func TestLogPosition(t *testing.T) {
	assert := assert.New(t)

	// endpoints map exactly
	assert.Equal(10.0, LogPosition(1, 1, 1000, 10, 310))
	assert.Equal(310.0, LogPosition(1000, 1, 1000, 10, 310))

	// one decade of three is a third of the way
	assert.InDelta(110.0, LogPosition(10, 1, 1000, 10, 310), 1e-9)
	assert.InDelta(210.0, LogPosition(100, 1, 1000, 10, 310), 1e-9)

	// reversed interval, as for an SVG y axis
	assert.Equal(400.0, LogPosition(0.01, 0.01, 100, 400, 0))
	assert.Equal(0.0, LogPosition(100, 0.01, 100, 400, 0))
	assert.InDelta(200.0, LogPosition(1, 0.01, 100, 400, 0), 1e-9)

	// values outside the data range extrapolate linearly in log space
	assert.InDelta(-90.0, LogPosition(0.1, 1, 1000, 10, 310), 1e-9)
}

func TestLogPositionDegenerate(t *testing.T) {
	tests := []struct {
		value, dataMin, dataMax float64
	}{
		{0, 1, 100},
		{-5, 1, 100},
		{7, 7, 7},
		{3, 7, 7},
	}

	for _, tt := range tests {
		result := LogPosition(tt.value, tt.dataMin, tt.dataMax, 20, 80)
		if result != 20 {
			t.Errorf("LogPosition(%v, %v, %v, 20, 80) = %v, expected 20",
				tt.value, tt.dataMin, tt.dataMax, result)
		}
	}
}

func TestLogNormalizer(t *testing.T) {
	var n plot.Normalizer = LogNormalizer{}
	assert.Equal(t, 0.0, n.Normalize(1, 100, 1))
	assert.InDelta(t, 0.5, n.Normalize(1, 100, 10), 1e-12)
	assert.Equal(t, 1.0, n.Normalize(1, 100, 100))
	assert.Equal(t, 0.0, n.Normalize(1, 100, -3))
	assert.Equal(t, 0.0, n.Normalize(4, 4, 4))
}

func TestLogTicks(t *testing.T) {
	tests := []struct {
		min, max float64
		count    int
		expected []models.Tick
	}{
		{1, 1000, 5, []models.Tick{
			{Value: 1, Label: "1"},
			{Value: 10, Label: "10"},
			{Value: 100, Label: "100"},
			{Value: 1000, Label: "10^3"},
		}},
		{0.001, 10, 5, []models.Tick{
			{Value: 0.001, Label: "10^-3"},
			{Value: 0.01, Label: "0.01"},
			{Value: 0.1, Label: "0.1"},
			{Value: 1, Label: "1"},
			{Value: 10, Label: "10"},
		}},
		// ticks outside the data range are dropped
		{0.002, 500, 5, []models.Tick{
			{Value: 0.01, Label: "0.01"},
			{Value: 0.1, Label: "0.1"},
			{Value: 1, Label: "1"},
			{Value: 10, Label: "10"},
			{Value: 100, Label: "100"},
		}},
		// exponents -3..9 with 5 ticks step by 3
		{0.001, 1e9, 5, []models.Tick{
			{Value: 0.001, Label: "10^-3"},
			{Value: 1, Label: "1"},
			{Value: 1000, Label: "10^3"},
			{Value: 1e6, Label: "10^6"},
			{Value: 1e9, Label: "10^9"},
		}},
		// count below 2 falls back to the default
		{1, 100, 0, []models.Tick{
			{Value: 1, Label: "1"},
			{Value: 10, Label: "10"},
			{Value: 100, Label: "100"},
		}},
		// no decade inside the range
		{2, 9, 5, nil},
		{0, 10, 5, nil},
		{10, 1, 5, nil},
	}

	for _, tt := range tests {
		result := LogTicks(tt.min, tt.max, tt.count)
		assert.Equal(t, tt.expected, result, "LogTicks(%v, %v, %d)", tt.min, tt.max, tt.count)
	}
}

func TestTickLabel(t *testing.T) {
	tests := []struct {
		exp      int
		expected string
	}{
		{-4, "10^-4"},
		{-3, "10^-3"},
		{-2, "0.01"},
		{-1, "0.1"},
		{0, "1"},
		{1, "10"},
		{2, "100"},
		{3, "10^3"},
		{12, "10^12"},
	}

	for _, tt := range tests {
		result := TickLabel(tt.exp)
		if result != tt.expected {
			t.Errorf("TickLabel(%d) = %q, expected %q", tt.exp, result, tt.expected)
		}
	}
}

func TestLogTickerOnPlotAxis(t *testing.T) {
	p := plot.New()
	p.Y.Min, p.Y.Max = 0.001, 1e5
	p.Y.Scale = LogNormalizer{}
	p.Y.Tick.Marker = LogTicker{}

	ticks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
		assert.False(t, math.IsNaN(p.Y.Norm(tk.Value)))
	}
	assert.Equal(t, []string{"10^-3", "0.1", "10", "10^3", "10^5"}, labels)
	assert.Equal(t, 1.0, p.Y.Norm(1e5))
}
