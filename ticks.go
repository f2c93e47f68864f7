package larreco

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// CountTicks marks an axis of event counts with round, integer valued major
// ticks and unlabelled minor ticks between them.
type CountTicks struct {
	NSuggestedTicks int
}

func (t CountTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks < 2 {
		t.NSuggestedTicks = 4
	}
	min = math.Max(0, math.Floor(min))
	max = math.Ceil(max)
	if max <= min {
		return []plot.Tick{{Value: min, Label: formatCount(min)}}
	}

	majorDelta := majorStep((max - min) / float64(t.NSuggestedTicks-1))
	var ticks []plot.Tick
	for val := math.Ceil(min/majorDelta) * majorDelta; val <= max; val += majorDelta {
		ticks = append(ticks, plot.Tick{Value: val, Label: formatCount(val)})
	}

	minorDelta := majorDelta / 5
	if minorDelta < 1 {
		return ticks
	}
	for val := math.Ceil(min/minorDelta) * minorDelta; val <= max; val += minorDelta {
		if math.Mod(val, majorDelta) != 0 {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks
}

// majorStep rounds step up to 1, 2 or 5 times a power of ten, never below 1.
func majorStep(step float64) float64 {
	if step <= 1 {
		return 1
	}
	tens := math.Pow10(int(math.Floor(math.Log10(step))))
	for _, mult := range []float64{1, 2, 5} {
		if mult*tens >= step {
			return mult * tens
		}
	}
	return 10 * tens
}

func formatCount(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
