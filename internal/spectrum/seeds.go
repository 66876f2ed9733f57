package spectrum

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Seeds holds the two standard-normal grids that randomize each spectral
// component. They are read-only once created.
type Seeds struct {
	Real *mat.Dense
	Imag *mat.Dense
}

// NewSeeds draws two size×size standard-normal grids from a PCG stream seeded
// with seed. The real grid is filled first, row-major, then the imaginary one.
func NewSeeds(size int, seed uint64) Seeds {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}

	return Seeds{
		Real: drawGrid(size, normal),
		Imag: drawGrid(size, normal),
	}
}

func drawGrid(size int, normal distuv.Normal) *mat.Dense {
	data := make([]float64, size*size)
	for i := range data {
		data[i] = normal.Rand()
	}
	return mat.NewDense(size, size, data)
}

func (s Seeds) check(size int) error {
	if s.Real == nil || s.Imag == nil {
		return fmt.Errorf("%w: missing seed grid", ErrShapeMismatch)
	}
	for name, g := range map[string]*mat.Dense{"real": s.Real, "imaginary": s.Imag} {
		r, c := g.Dims()
		if r != size || c != size {
			return fmt.Errorf("%w: %s seeds are %dx%d, want %dx%d", ErrShapeMismatch, name, r, c, size, size)
		}
	}
	return nil
}
