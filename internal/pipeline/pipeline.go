// Package pipeline runs one spectrum-to-image pass: seed grids, spectrum,
// rendering and the file write.
package pipeline

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/mrsinham/spectrumforge/internal/render"
	"github.com/mrsinham/spectrumforge/internal/spectrum"
)

// CLIBrightness is the brightness the command line uses by default.
const CLIBrightness = 3.0

// ErrOutputDir is returned when the output path's parent directory is missing.
var ErrOutputDir = errors.New("output directory does not exist")

// Options configures a single run.
type Options struct {
	Params spectrum.Params

	// Rendering
	Brightness float64
	Green      render.GreenSource
	Label      string

	// Output
	OutputPath string
	Format     render.Format // FormatAuto = infer from OutputPath

	Seed    int64 // 0 = draw a random seed and report it
	Workers int   // 0 = runtime.NumCPU()

	Quiet bool // Suppress progress output
}

// DefaultOptions returns the fixed defaults of the command line tool.
func DefaultOptions() Options {
	return Options{
		Params:     spectrum.DefaultParams(),
		Brightness: CLIBrightness,
		Green:      render.GreenReal,
		OutputPath: render.DefaultOutputPath,
	}
}

// Result describes what a run produced.
type Result struct {
	Seed       int64
	OutputPath string
	Format     render.Format
	Real       spectrum.Summary
	Imag       spectrum.Summary
}

// ResolveFormat returns the explicit format if set, else the one implied by
// the output path.
func (o Options) ResolveFormat() render.Format {
	if o.Format == render.FormatAuto {
		return render.FormatFromPath(o.OutputPath)
	}
	return o.Format
}

// Run generates the spectrum and writes the rendered image to opts.OutputPath.
func Run(opts Options) (*Result, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if !(opts.Brightness > 0) {
		return nil, fmt.Errorf("invalid parameters: %w: got %g", render.ErrInvalidBrightness, opts.Brightness)
	}
	format := opts.ResolveFormat()
	if opts.OutputPath == "" {
		return nil, fmt.Errorf("output path is required")
	}
	dir := filepath.Dir(opts.OutputPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrOutputDir, dir)
	}

	seed := opts.Seed
	if seed != 0 {
		if !opts.Quiet {
			fmt.Printf("Using seed: %d\n", seed)
		}
	} else {
		seed = randomSeed()
		if !opts.Quiet {
			fmt.Printf("Auto-generated seed: %d\n", seed)
			fmt.Println("  (pass --seed to reproduce this image)")
		}
	}

	p := opts.Params
	if !opts.Quiet {
		fmt.Println("Initializing spectrum")
		fmt.Printf("Grid: %dx%d, patch %gm, wind %gm/s toward (%g, %g)\n",
			p.Size, p.Size, p.PatchSize, p.WindSpeed, p.WindDir.X, p.WindDir.Y)
	}

	seeds := spectrum.NewSeeds(p.Size, uint64(seed))
	spec, err := spectrum.Generate(p, seeds, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("generate spectrum: %w", err)
	}

	result := &Result{
		Seed:       seed,
		OutputPath: opts.OutputPath,
		Format:     format,
		Real:       spectrum.Summarize(spec.Real),
		Imag:       spectrum.Summarize(spec.Imag),
	}
	if !opts.Quiet {
		fmt.Printf("  Real amplitude:      %s\n", result.Real)
		fmt.Printf("  Imaginary amplitude: %s\n", result.Imag)
	}

	img, err := render.Compose(spec.Real, spec.Imag, render.Options{
		Brightness: opts.Brightness,
		Green:      opts.Green,
		Label:      opts.Label,
	})
	if err != nil {
		return nil, fmt.Errorf("render image: %w", err)
	}

	saveOpts := render.SaveOptions{
		Format:      format,
		Description: describe(p, seed),
		UIDSeed:     fmt.Sprintf("%s_%d", opts.OutputPath, seed),
	}
	if err := render.Save(opts.OutputPath, img, saveOpts); err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Image saved as %s\n", opts.OutputPath)
	}
	return result, nil
}

func randomSeed() int64 {
	for {
		if s := rand.Int64(); s != 0 {
			return s
		}
	}
}

func describe(p spectrum.Params, seed int64) string {
	return fmt.Sprintf("Phillips N=%d L=%g A=%g v=%g exp=%g seed=%d",
		p.Size, p.PatchSize, p.Amplitude, p.WindSpeed, p.DirectionalExponent, seed)
}
