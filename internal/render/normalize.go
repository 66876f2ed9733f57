// Package render turns spectrum amplitude grids into a false-color image and
// writes it to disk.
package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultBrightness is the brightness scale applied when none is given.
const DefaultBrightness = 2.0

// ErrInvalidBrightness is returned for a brightness that is not a positive finite number.
var ErrInvalidBrightness = errors.New("brightness must be > 0")

// Normalize log-compresses g and maps it onto 8-bit intensities, row-major.
//
// Each value becomes log1p(x) (non-finite results count as 0), is shifted by
// the grid minimum, divided by the shifted maximum, scaled by 255·brightness,
// clipped to [0, 255] and truncated. A flat grid has nothing to stretch and
// maps to all zeros.
func Normalize(g mat.Matrix, brightness float64) ([]uint8, error) {
	if !(brightness > 0) || math.IsInf(brightness, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidBrightness, brightness)
	}

	r, c := g.Dims()
	vals := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := math.Log1p(g.At(i, j))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			vals = append(vals, v)
		}
	}

	out := make([]uint8, len(vals))
	if len(vals) == 0 {
		return out, nil
	}

	floats.AddConst(-floats.Min(vals), vals)
	hi := floats.Max(vals)
	if hi == 0 || math.IsInf(hi, 0) || math.IsNaN(hi) {
		return out, nil
	}

	scale := 255 * brightness
	for i, v := range vals {
		x := v / hi * scale
		if x < 0 {
			x = 0
		}
		if x > 255 {
			x = 255
		}
		out[i] = uint8(x)
	}
	return out, nil
}
