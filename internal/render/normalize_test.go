package render

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func rampGrid(n int) *mat.Dense {
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, float64(i*n+j))
		}
	}
	return g
}

func maxOf(vals []uint8) uint8 {
	var m uint8
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

func TestNormalize_ChannelMaximum(t *testing.T) {
	tests := []struct {
		brightness float64
		expected   uint8
	}{
		{0.5, 127},
		{1.0, 255},
		{2.0, 255},
		{3.0, 255},
		{0.1, 25},
	}

	g := rampGrid(8)
	for _, tt := range tests {
		out, err := Normalize(g, tt.brightness)
		if err != nil {
			t.Fatalf("Normalize(%g) failed: %v", tt.brightness, err)
		}
		if got := maxOf(out); got != tt.expected {
			t.Errorf("brightness %g: expected max %d, got %d", tt.brightness, tt.expected, got)
		}
	}
}

func TestNormalize_MinimumMapsToZero(t *testing.T) {
	out, err := Normalize(rampGrid(4), 1)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if out[0] != 0 {
		t.Errorf("Expected grid minimum to map to 0, got %d", out[0])
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			t.Errorf("Expected monotonic output for increasing input, out[%d]=%d < out[%d]=%d", i, out[i], i-1, out[i-1])
		}
	}
}

func TestNormalize_LogCompression(t *testing.T) {
	// log1p(0)=0, log1p(e-1)=1, log1p(e²-1)=2: evenly spaced after compression.
	g := mat.NewDense(1, 3, []float64{0, math.E - 1, math.E*math.E - 1})
	out, err := Normalize(g, 1)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := []uint8{0, 127, 255}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d]: expected %d, got %d", i, want[i], out[i])
		}
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		grid *mat.Dense
	}{
		{"zeros", mat.NewDense(4, 4, nil)},
		{"constant", mat.NewDense(2, 2, []float64{5, 5, 5, 5})},
		{"all nan", mat.NewDense(1, 2, []float64{math.NaN(), math.NaN()})},
		{"infinite", mat.NewDense(1, 2, []float64{0, math.Inf(1)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(tt.grid, 2)
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			for i, v := range out {
				if v != 0 {
					t.Errorf("Expected all zeros, got out[%d]=%d", i, v)
				}
			}
		})
	}
}

func TestNormalize_NonFiniteLogTreatedAsZero(t *testing.T) {
	// -2 gives NaN and -1 gives -Inf under log1p; both count as 0.
	g := mat.NewDense(1, 4, []float64{-2, -1, 0, math.E - 1})
	out, err := Normalize(g, 1)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := []uint8{0, 0, 0, 255}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d]: expected %d, got %d", i, want[i], out[i])
		}
	}
}

func TestNormalize_InvalidBrightness(t *testing.T) {
	for _, b := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Normalize(rampGrid(2), b); !errors.Is(err, ErrInvalidBrightness) {
			t.Errorf("brightness %g: expected ErrInvalidBrightness, got %v", b, err)
		}
	}
}
