package sensor

import (
	"github.com/montanaflynn/stats"
)

// statFloor keeps span and std away from zero so constant or near-constant
// series still receive visible distortion.
const statFloor = 1e-3

// Stats summarizes a series for veil scaling. Std is the population standard
// deviation; Span and Std are floored at statFloor.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Span float64
	Std  float64
}

// SeriesStats computes the summary for one series. An empty series yields
// zeroes with floored Span and Std.
func SeriesStats(x []float64) Stats {
	if len(x) == 0 {
		return Stats{Span: statFloor, Std: statFloor}
	}
	min, _ := stats.Min(x)
	max, _ := stats.Max(x)
	mean, _ := stats.Mean(x)
	std, _ := stats.StandardDeviationPopulation(x)

	span := max - min
	if span < statFloor {
		span = statFloor
	}
	if std < statFloor {
		std = statFloor
	}
	return Stats{Min: min, Max: max, Mean: mean, Span: span, Std: std}
}

// StackedStats pools several series and computes one summary over the pool.
// Multi-axis sensors use it to share a single scale across their axes.
func StackedStats(series ...[]float64) Stats {
	total := 0
	for _, s := range series {
		total += len(s)
	}
	pooled := make([]float64, 0, total)
	for _, s := range series {
		pooled = append(pooled, s...)
	}
	return SeriesStats(pooled)
}
