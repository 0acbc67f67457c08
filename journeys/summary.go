package journeys

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a journey-time distribution in minutes.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Summarize computes descriptive statistics over values without modifying
// them. StdDev is the sample standard deviation and is zero for a single
// value. Median averages the two middle values of an even-sized input.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoData
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := Summary{
		Count: len(sorted),
		Min:   floats.Min(sorted),
		Max:   floats.Max(sorted),
		Mean:  stat.Mean(sorted, nil),
	}
	mid := len(sorted) / 2
	s.Median = (sorted[(len(sorted)-1)/2] + sorted[mid]) / 2
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}

	return s, nil
}
