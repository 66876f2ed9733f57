package config

import (
	"fmt"

	"github.com/mrsinham/spectrumforge/internal/pipeline"
	"github.com/mrsinham/spectrumforge/internal/render"
	"github.com/mrsinham/spectrumforge/internal/spectrum"
	"github.com/mrsinham/spectrumforge/internal/util"
)

// ToOptions converts a Config into pipeline options. Values are checked for
// syntax here; range checks happen when the pipeline runs.
func ToOptions(c *Config) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	if c.Model.WindDir != "" {
		x, y, err := util.ParseVec2(c.Model.WindDir)
		if err != nil {
			return opts, fmt.Errorf("model.wind_dir: %w", err)
		}
		opts.Params.WindDir = spectrum.Vec2{X: x, Y: y}
	}

	green, err := render.ParseGreenSource(c.Render.Green)
	if err != nil {
		return opts, fmt.Errorf("render.green: %w", err)
	}

	format, err := render.ParseFormat(c.Render.Format)
	if err != nil {
		return opts, fmt.Errorf("render.format: %w", err)
	}

	opts.Params.Size = c.Grid.Size
	opts.Params.PatchSize = c.Grid.PatchSize
	opts.Params.Amplitude = c.Model.Amplitude
	opts.Params.Gravity = c.Model.Gravity
	opts.Params.WindSpeed = c.Model.WindSpeed
	opts.Params.DirectionalExponent = c.Model.DirectionalExponent

	opts.Brightness = c.Render.Brightness
	opts.Green = green
	opts.Label = c.Render.Label
	if c.Render.Output != "" {
		opts.OutputPath = c.Render.Output
	}
	opts.Format = format
	opts.Seed = c.Seed
	opts.Workers = c.Workers

	return opts, nil
}

// FromOptions converts pipeline options back into a Config for saving.
func FromOptions(o pipeline.Options) *Config {
	var format string
	if o.Format != render.FormatAuto {
		format = o.Format.String()
	}

	return &Config{
		Model: ModelConfigYAML{
			Amplitude:           o.Params.Amplitude,
			Gravity:             o.Params.Gravity,
			WindSpeed:           o.Params.WindSpeed,
			WindDir:             util.FormatVec2(o.Params.WindDir.X, o.Params.WindDir.Y),
			DirectionalExponent: o.Params.DirectionalExponent,
		},
		Grid: GridConfigYAML{
			Size:      o.Params.Size,
			PatchSize: o.Params.PatchSize,
		},
		Render: RenderConfigYAML{
			Brightness: o.Brightness,
			Green:      o.Green.String(),
			Label:      o.Label,
			Output:     o.OutputPath,
			Format:     format,
		},
		Seed:    o.Seed,
		Workers: o.Workers,
	}
}
