package spectrum

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func constantSeeds(size int, real, imag float64) Seeds {
	r := mat.NewDense(size, size, nil)
	i := mat.NewDense(size, size, nil)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r.Set(row, col, real)
			i.Set(row, col, imag)
		}
	}
	return Seeds{Real: r, Imag: i}
}

func smallParams(size int) Params {
	p := DefaultParams()
	p.Size = size
	return p
}

// TestGenerate_HandComputedGrid checks every cell of a 4x4 grid with unit
// seeds against the closed-form amplitude sqrt(P(K)/2).
func TestGenerate_HandComputedGrid(t *testing.T) {
	const n = 4
	const patch = 1000.0
	lw := 40.0 * 40.0 / 9.81

	spec, err := Generate(smallParams(n), constantSeeds(n, 1, 1), 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			kx := float64(row-n/2) * 2 * math.Pi / patch
			ky := float64(col-n/2) * 2 * math.Pi / patch
			k := math.Sqrt(kx*kx + ky*ky)

			want := 0.0
			if k != 0 {
				dot := (kx + ky) / (k * math.Sqrt2)
				p := 4 * math.Exp(-1/((k*lw)*(k*lw))) / (k * k * k * k) * dot * dot
				want = math.Sqrt(p * 0.5)
			}

			for name, g := range map[string]*mat.Dense{"real": spec.Real, "imag": spec.Imag} {
				got := g.At(row, col)
				if math.Abs(got-want) > 1e-9*math.Max(1, want) {
					t.Errorf("%s[%d][%d] = %.12g, want %.12g", name, row, col, got, want)
				}
			}
		}
	}
}

func TestGenerate_CenterIsZero(t *testing.T) {
	const n = 16
	seeds := NewSeeds(n, 99)
	spec, err := Generate(smallParams(n), seeds, 0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if v := spec.Real.At(n/2, n/2); v != 0 {
		t.Errorf("Expected real center 0, got %g", v)
	}
	if v := spec.Imag.At(n/2, n/2); v != 0 {
		t.Errorf("Expected imaginary center 0, got %g", v)
	}
}

func TestGenerate_NegativeAmplitudesClamped(t *testing.T) {
	const n = 8
	spec, err := Generate(smallParams(n), constantSeeds(n, -1, -2), 2)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			for name, g := range map[string]*mat.Dense{"real": spec.Real, "imag": spec.Imag} {
				v := g.At(row, col)
				if row == n/2 && col == n/2 {
					if v != 0 {
						t.Errorf("%s center should stay 0, got %g", name, v)
					}
					continue
				}
				// Perpendicular-to-wind cells have P = 0 and stay exactly 0.
				if v != ClampFloor && v != 0 {
					t.Errorf("%s[%d][%d] = %g, want clamp floor %g", name, row, col, v, ClampFloor)
				}
			}
		}
	}
}

func TestGenerate_NoNegativeValuesSurvive(t *testing.T) {
	const n = 32
	spec, err := Generate(smallParams(n), NewSeeds(n, 7), 0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, g := range []*mat.Dense{spec.Real, spec.Imag} {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				v := g.At(row, col)
				if v < 0 {
					t.Fatalf("Negative amplitude %g at [%d][%d]", v, row, col)
				}
				if v != 0 && v < ClampFloor {
					t.Fatalf("Amplitude %g at [%d][%d] below clamp floor", v, row, col)
				}
			}
		}
	}
}

func TestGenerate_DeterministicAcrossWorkers(t *testing.T) {
	const n = 64
	seeds := NewSeeds(n, 42)

	a, err := Generate(smallParams(n), seeds, 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(smallParams(n), seeds, 8)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !mat.Equal(a.Real, b.Real) || !mat.Equal(a.Imag, b.Imag) {
		t.Error("Expected bit-identical grids for identical seeds")
	}
}

func TestGenerate_SeedsUnchanged(t *testing.T) {
	const n = 8
	seeds := NewSeeds(n, 5)
	before := mat.DenseCopyOf(seeds.Real)

	if _, err := Generate(smallParams(n), seeds, 0); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !mat.Equal(before, seeds.Real) {
		t.Error("Generate must not mutate the seed grids")
	}
}

func TestGenerate_ShapeMismatch(t *testing.T) {
	_, err := Generate(smallParams(8), NewSeeds(4, 1), 0)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}

	_, err = Generate(smallParams(8), Seeds{}, 0)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch for missing seeds, got %v", err)
	}
}

func TestGenerate_InvalidParams(t *testing.T) {
	p := smallParams(8)
	p.PatchSize = -1
	if _, err := Generate(p, NewSeeds(8, 1), 0); !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("Expected ErrInvalidPatch, got %v", err)
	}
}

func TestGenerate_RejectsOddExponent(t *testing.T) {
	p := smallParams(8)
	p.DirectionalExponent = 3
	if _, err := Generate(p, constantSeeds(8, 1, 1), 0); !errors.Is(err, ErrInvalidExponent) {
		t.Errorf("Expected ErrInvalidExponent, got %v", err)
	}
}

// Cells whose wavevector points against the wind must stay finite for every
// accepted exponent.
func TestGenerate_NoNaNAgainstWind(t *testing.T) {
	for _, exp := range []float64{0, 2, 4, 8} {
		p := smallParams(8)
		p.DirectionalExponent = exp

		spec, err := Generate(p, constantSeeds(8, 1, -1), 0)
		if err != nil {
			t.Fatalf("exponent %g: Generate failed: %v", exp, err)
		}

		for name, g := range map[string]*mat.Dense{"real": spec.Real, "imag": spec.Imag} {
			for row := 0; row < 8; row++ {
				for col := 0; col < 8; col++ {
					v := g.At(row, col)
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("exponent %g: %s[%d][%d] = %g, want finite", exp, name, row, col, v)
					}
					if v != 0 && v < ClampFloor {
						t.Errorf("exponent %g: %s[%d][%d] = %g, want 0 or >= %g", exp, name, row, col, v, ClampFloor)
					}
				}
			}
		}

		s := Summarize(spec.Real)
		if math.IsNaN(s.Mean) || math.IsNaN(s.StdDev) {
			t.Errorf("exponent %g: expected finite summary, got %s", exp, s)
		}
	}
}

func TestClampNegative(t *testing.T) {
	m := mat.NewDense(1, 4, []float64{-5, 0, 1e-12, 3})
	ClampNegative(m)

	want := []float64{ClampFloor, 0, 1e-12, 3}
	for j, w := range want {
		if got := m.At(0, j); got != w {
			t.Errorf("Index %d: expected %g, got %g", j, w, got)
		}
	}
}
