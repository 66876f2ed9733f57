package render

import (
	"fmt"
	"image"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// GreenSource selects which normalized grid feeds the green channel.
type GreenSource int

const (
	// GreenReal duplicates the real grid into red and green. The imaginary
	// grid is normalized but not displayed.
	GreenReal GreenSource = iota
	// GreenImag shows the imaginary grid in green.
	GreenImag
)

// String returns the config/flag spelling of the green source.
func (g GreenSource) String() string {
	switch g {
	case GreenImag:
		return "imag"
	default:
		return "real"
	}
}

// ParseGreenSource parses "real" or "imag" (case-insensitive).
func ParseGreenSource(s string) (GreenSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real", "":
		return GreenReal, nil
	case "imag", "imaginary":
		return GreenImag, nil
	default:
		return GreenReal, fmt.Errorf("invalid green source: %s (valid: real, imag)", s)
	}
}

// Options controls how grids become pixels.
type Options struct {
	Brightness float64
	Green      GreenSource
	Label      string // drawn on top when non-empty
}

// Compose normalizes both grids and assembles an opaque RGB image with the
// same dimensions: red = real, green = real or imag (see GreenSource),
// blue = 0. Row i of the grids is image row y = i.
func Compose(re, im mat.Matrix, opts Options) (*image.RGBA, error) {
	rows, cols := re.Dims()
	if ir, ic := im.Dims(); ir != rows || ic != cols {
		return nil, fmt.Errorf("grid shapes differ: real %dx%d, imaginary %dx%d", rows, cols, ir, ic)
	}

	red, err := Normalize(re, opts.Brightness)
	if err != nil {
		return nil, fmt.Errorf("normalize real grid: %w", err)
	}
	imag8, err := Normalize(im, opts.Brightness)
	if err != nil {
		return nil, fmt.Errorf("normalize imaginary grid: %w", err)
	}

	green := red
	if opts.Green == GreenImag {
		green = imag8
	}

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		rowOff := y * img.Stride
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			p := rowOff + x*4
			img.Pix[p+0] = red[idx]
			img.Pix[p+1] = green[idx]
			img.Pix[p+2] = 0
			img.Pix[p+3] = 255
		}
	}

	if opts.Label != "" {
		if err := AddLabel(img, opts.Label); err != nil {
			return nil, fmt.Errorf("draw label: %w", err)
		}
	}

	return img, nil
}
