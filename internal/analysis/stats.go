package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a series.
type Summary struct {
	Min, Max float64
	Mean     float64
	StdDev   float64
	Final    float64
}

func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(data, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return Summary{
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Mean:   mean,
		StdDev: std,
		Final:  data[len(data)-1],
	}
}

// DecayRate fits ln(E) = a + b·frame over the strictly positive samples of
// an energy series and returns -b, the fraction of energy lost per frame in
// the log domain. It returns 0 with fewer than two usable samples.
func DecayRate(energy []float64) float64 {
	xs := make([]float64, 0, len(energy))
	ys := make([]float64, 0, len(energy))
	for i, e := range energy {
		if e > 0 {
			xs = append(xs, float64(i))
			ys = append(ys, math.Log(e))
		}
	}
	if len(xs) < 2 {
		return 0
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return -slope
}
