package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the value distribution of one amplitude grid.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes min, max, mean and standard deviation of g.
func Summarize(g mat.Matrix) Summary {
	r, c := g.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, g.At(i, j))
		}
	}
	mean, std := stat.MeanStdDev(data, nil)
	return Summary{
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Mean:   mean,
		StdDev: std,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("min=%.4g max=%.4g mean=%.4g stddev=%.4g", s.Min, s.Max, s.Mean, s.StdDev)
}
