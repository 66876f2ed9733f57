package spectrum

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Spectrum holds the real and imaginary amplitude grids, indexed by array
// coordinate (n+N/2, m+N/2).
type Spectrum struct {
	Real *mat.Dense
	Imag *mat.Dense
}

// Size returns the grid resolution per axis.
func (s *Spectrum) Size() int {
	r, _ := s.Real.Dims()
	return r
}

// Generate evaluates the Phillips spectrum on the N×N wavevector grid and
// scales each component by its Gaussian seeds. Rows are independent and are
// spread across workers (0 = one per CPU); the result does not depend on the
// worker count.
//
// Negative amplitudes are floored to ClampFloor afterwards, see ClampNegative.
func Generate(p Params, seeds Seeds, workers int) (*Spectrum, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := seeds.check(p.Size); err != nil {
		return nil, err
	}

	n := p.Size
	out := &Spectrum{
		Real: mat.NewDense(n, n, nil),
		Imag: mat.NewDense(n, n, nil),
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Don't use more workers than rows
	if workers > n {
		workers = n
	}

	rowChan := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rowChan {
				fillRow(p, seeds, out, row)
			}
		}()
	}

	for row := 0; row < n; row++ {
		rowChan <- row
	}
	close(rowChan)
	wg.Wait()

	ClampNegative(out.Real)
	ClampNegative(out.Imag)

	return out, nil
}

// fillRow writes one row of both amplitude grids. Rows never overlap, so
// concurrent calls touch disjoint memory.
func fillRow(p Params, seeds Seeds, out *Spectrum, row int) {
	re := out.Real.RawRowView(row)
	im := out.Imag.RawRowView(row)
	n := p.index(row)

	for col := 0; col < p.Size; col++ {
		k := p.Wavevector(n, p.index(col))
		if k.Len() == 0 {
			continue
		}
		ph := math.Sqrt(p.Phillips(k) * 0.5)
		re[col] = seeds.Real.At(row, col) * ph
		im[col] = seeds.Imag.At(row, col) * ph
	}
}

// ClampNegative replaces every value strictly below zero with ClampFloor, in
// place. Zero is left untouched. The sign of negative-seed components is lost.
func ClampNegative(m *mat.Dense) {
	m.Apply(func(_, _ int, v float64) float64 {
		if v < 0 {
			return ClampFloor
		}
		return v
	}, m)
}

