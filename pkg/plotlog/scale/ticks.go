package scale

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/ukaji3/plotlog-go/pkg/plotlog/models"
)

// DefaultTickCount is the number of ticks LogTicks aims for.
const DefaultTickCount = 5

// ExponentLabelMin is the smallest |exponent| rendered as "10^i".
const ExponentLabelMin = 3

// LogTicks returns ticks at the powers of ten inside [dataMin, dataMax],
// ascending. The exponent step is (ceil(log10(max)) - floor(log10(min))) /
// (count-1) rounded down, at least 1, so small ranges may yield fewer than
// count ticks. A count below 2 selects DefaultTickCount.
func LogTicks(dataMin, dataMax float64, count int) []models.Tick {
	if !(dataMin > 0) || !(dataMax >= dataMin) || math.IsInf(dataMax, 0) {
		return nil
	}
	if count < 2 {
		count = DefaultTickCount
	}

	lo := int(math.Floor(log10(dataMin)))
	hi := int(math.Ceil(log10(dataMax)))
	step := (hi - lo) / (count - 1)
	if step < 1 {
		step = 1
	}

	var ticks []models.Tick
	for i := lo; i <= hi; i += step {
		v := math.Pow10(i)
		if v < dataMin || v > dataMax {
			continue
		}
		ticks = append(ticks, models.Tick{Value: v, Label: TickLabel(i)})
	}
	return ticks
}

// TickLabel formats the decade 10^exp. Exponents with magnitude of at least
// ExponentLabelMin render as "10^exp", the rest as a compact decimal.
func TickLabel(exp int) string {
	if exp >= ExponentLabelMin || exp <= -ExponentLabelMin {
		return "10^" + strconv.Itoa(exp)
	}
	return strconv.FormatFloat(math.Pow10(exp), 'g', -1, 64)
}

// LogTicker is a gonum plot.Ticker emitting the ticks of LogTicks.
type LogTicker struct {
	// Count is the target tick count; zero means DefaultTickCount.
	Count int
}

var _ plot.Ticker = LogTicker{}

// Ticks implements plot.Ticker.
func (t LogTicker) Ticks(min, max float64) []plot.Tick {
	ticks := LogTicks(min, max, t.Count)
	out := make([]plot.Tick, len(ticks))
	for i, tk := range ticks {
		out[i] = plot.Tick{Value: tk.Value, Label: tk.Label}
	}
	return out
}
