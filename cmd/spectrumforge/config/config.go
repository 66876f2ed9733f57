package config

// Config is the YAML form of a spectrumforge run.
type Config struct {
	Model   ModelConfigYAML  `yaml:"model"`
	Grid    GridConfigYAML   `yaml:"grid"`
	Render  RenderConfigYAML `yaml:"render"`
	Seed    int64            `yaml:"seed"`
	Workers int              `yaml:"workers,omitempty"`
}

// ModelConfigYAML holds the Phillips model constants.
type ModelConfigYAML struct {
	Amplitude           float64 `yaml:"amplitude"`
	Gravity             float64 `yaml:"gravity"`
	WindSpeed           float64 `yaml:"wind_speed"`
	WindDir             string  `yaml:"wind_dir"` // "x,y"
	DirectionalExponent float64 `yaml:"directional_exponent"`
}

// GridConfigYAML holds the sampling grid geometry.
type GridConfigYAML struct {
	Size      int     `yaml:"size"`
	PatchSize float64 `yaml:"patch_size"`
}

// RenderConfigYAML holds image and output settings.
type RenderConfigYAML struct {
	Brightness float64 `yaml:"brightness"`
	Green      string  `yaml:"green"`
	Label      string  `yaml:"label,omitempty"`
	Output     string  `yaml:"output"`
	Format     string  `yaml:"format,omitempty"`
}
