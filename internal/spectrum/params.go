// Package spectrum evaluates the Phillips ocean-wave spectrum on a discrete
// wavevector grid and combines it with Gaussian seeds into amplitude grids.
package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// Default model parameters.
const (
	DefaultSize                = 256
	DefaultPatchSize           = 1000.0 // meters
	DefaultAmplitude           = 4.0
	DefaultGravity             = 9.81
	DefaultWindSpeed           = 40.0
	DefaultDirectionalExponent = 2.0

	// ClampFloor replaces every negative amplitude after generation so that
	// the renderer's logarithm stays defined.
	ClampFloor = 1e-10
)

// Validation errors returned by Params.Validate and Generate.
var (
	ErrInvalidSize      = errors.New("grid size must be an even integer >= 2")
	ErrInvalidPatch     = errors.New("patch size must be > 0")
	ErrInvalidAmplitude = errors.New("amplitude must be >= 0")
	ErrInvalidGravity   = errors.New("gravity must be > 0")
	ErrInvalidWindSpeed = errors.New("wind speed must be >= 0")
	ErrZeroWind         = errors.New("wind direction must be non-zero")
	ErrInvalidExponent  = errors.New("directional exponent must be a non-negative even integer")
	ErrShapeMismatch    = errors.New("seed grid shape does not match grid size")
)

// Vec2 is a 2D vector in wavevector space.
type Vec2 struct {
	X, Y float64
}

// Len returns the Euclidean norm.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Normalize returns the unit vector along v. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Params holds the grid geometry and the Phillips model constants.
type Params struct {
	Size      int     // N, grid resolution per axis
	PatchSize float64 // L, physical side length in meters

	Amplitude float64 // A
	Gravity   float64 // g
	WindSpeed float64 // v
	WindDir   Vec2    // normalized before use

	// DirectionalExponent is the power applied to (K̂·ŵ). It must be even so
	// waves running against the wind keep a non-negative density. 2 suppresses
	// waves perpendicular to the wind; higher values narrow the spread.
	DirectionalExponent float64
}

// DefaultParams returns the fixed parameter set used when nothing is configured.
func DefaultParams() Params {
	return Params{
		Size:                DefaultSize,
		PatchSize:           DefaultPatchSize,
		Amplitude:           DefaultAmplitude,
		Gravity:             DefaultGravity,
		WindSpeed:           DefaultWindSpeed,
		WindDir:             Vec2{X: 1, Y: 1},
		DirectionalExponent: DefaultDirectionalExponent,
	}
}

// Validate checks that the parameters describe a computable spectrum.
func (p Params) Validate() error {
	if p.Size < 2 || p.Size%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, p.Size)
	}
	if !(p.PatchSize > 0) || math.IsInf(p.PatchSize, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidPatch, p.PatchSize)
	}
	if !(p.Amplitude >= 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidAmplitude, p.Amplitude)
	}
	if !(p.Gravity > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidGravity, p.Gravity)
	}
	if !(p.WindSpeed >= 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidWindSpeed, p.WindSpeed)
	}
	if p.WindDir.Len() == 0 {
		return ErrZeroWind
	}
	e := p.DirectionalExponent
	if e < 0 || math.IsInf(e, 0) || math.Mod(e, 2) != 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidExponent, e)
	}
	return nil
}

// CharacteristicLength returns Lw = v²/g, the largest wave the wind sustains.
func (p Params) CharacteristicLength() float64 {
	return p.WindSpeed * p.WindSpeed / p.Gravity
}
