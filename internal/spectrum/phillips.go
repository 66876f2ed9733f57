package spectrum

import "math"

// Wavevector maps the signed grid index (n, m), n and m in [-N/2, N/2), to the
// physical wavevector K = (n·2π/L, m·2π/L).
func (p Params) Wavevector(n, m int) Vec2 {
	return Vec2{
		X: float64(n) * 2 * math.Pi / p.PatchSize,
		Y: float64(m) * 2 * math.Pi / p.PatchSize,
	}
}

// Phillips evaluates the Phillips spectral density at K:
//
//	P(K) = A · exp(-1/(k·Lw)²) / k⁴ · (K̂·ŵ)^exp
//
// The zero wavevector has density 0.
func (p Params) Phillips(k Vec2) float64 {
	mag := k.Len()
	if mag == 0 {
		return 0
	}
	lw := p.CharacteristicLength()
	align := k.Scale(1 / mag).Dot(p.WindDir.Normalize())

	return p.Amplitude * math.Exp(-1/math.Pow(mag*lw, 2)) / math.Pow(mag, 4) *
		math.Pow(align, p.DirectionalExponent)
}

// index converts an array coordinate in [0, N) to its signed grid index.
func (p Params) index(i int) int {
	return i - p.Size/2
}
