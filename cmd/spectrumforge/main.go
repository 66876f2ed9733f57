package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/mrsinham/spectrumforge/cmd/spectrumforge/components"
	"github.com/mrsinham/spectrumforge/cmd/spectrumforge/config"
	"github.com/mrsinham/spectrumforge/internal/pipeline"
	"github.com/mrsinham/spectrumforge/internal/render"
	"github.com/mrsinham/spectrumforge/internal/spectrum"
	"github.com/mrsinham/spectrumforge/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	defaults := pipeline.DefaultOptions()
	p := defaults.Params

	// Grid and model
	size := flag.Int("size", p.Size, "Grid resolution N per axis (even, >= 2)")
	patchSize := flag.Float64("patch-size", p.PatchSize, "Patch side length L in meters")
	amplitude := flag.Float64("amplitude", p.Amplitude, "Phillips amplitude constant A")
	gravity := flag.Float64("gravity", p.Gravity, "Gravitational acceleration g (m/s²)")
	windSpeed := flag.Float64("wind-speed", p.WindSpeed, "Wind speed v (m/s)")
	windDir := flag.String("wind-dir", util.FormatVec2(p.WindDir.X, p.WindDir.Y), "Wind direction as 'x,y' (normalized before use)")
	exponent := flag.Float64("directional-exponent", p.DirectionalExponent, "Power applied to the wind alignment term")

	// Rendering and output
	brightness := flag.Float64("brightness", defaults.Brightness, "Brightness scale applied after normalization")
	output := flag.String("output", defaults.OutputPath, "Output image path (parent directory must exist)")
	format := flag.String("format", "", "Output format: auto, png, tiff, bmp, dicom (default: auto = from extension)")
	green := flag.String("green", defaults.Green.String(), "Green channel source: real, imag")
	label := flag.String("label", "", "Text drawn at the top of the image")

	seed := flag.Int64("seed", 0, "Seed for reproducibility (optional, auto-generated if not specified)")
	workers := flag.Int("workers", 0, fmt.Sprintf("Number of parallel workers (default: %d = CPU cores)", runtime.NumCPU()))
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("spectrumforge %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		printUsage()
		os.Exit(1)
	}

	opts := defaults
	if *configFile != "" {
		cfg, err := config.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		opts, err = config.ToOptions(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags given on the command line win over the config file.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "size":
			opts.Params.Size = *size
		case "patch-size":
			opts.Params.PatchSize = *patchSize
		case "amplitude":
			opts.Params.Amplitude = *amplitude
		case "gravity":
			opts.Params.Gravity = *gravity
		case "wind-speed":
			opts.Params.WindSpeed = *windSpeed
		case "wind-dir":
			x, y, err := util.ParseVec2(*windDir)
			if err != nil {
				flagErr = fmt.Errorf("--wind-dir: %w", err)
				return
			}
			opts.Params.WindDir = spectrum.Vec2{X: x, Y: y}
		case "directional-exponent":
			opts.Params.DirectionalExponent = *exponent
		case "brightness":
			opts.Brightness = *brightness
		case "output":
			opts.OutputPath = *output
		case "format":
			f, err := render.ParseFormat(*format)
			if err != nil {
				flagErr = fmt.Errorf("--format: %w", err)
				return
			}
			opts.Format = f
		case "green":
			g, err := render.ParseGreenSource(*green)
			if err != nil {
				flagErr = fmt.Errorf("--green: %w", err)
				return
			}
			opts.Green = g
		case "label":
			opts.Label = *label
		case "seed":
			opts.Seed = *seed
		case "workers":
			opts.Workers = *workers
		case "quiet":
			opts.Quiet = *quiet
		}
	})
	if flagErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", flagErr)
		printUsage()
		os.Exit(1)
	}

	if !opts.Quiet {
		fmt.Println(components.TitleStyle.Render("spectrumforge"))
		if *configFile != "" {
			fmt.Println(components.SubtitleStyle.Render(fmt.Sprintf("Loading config from %s", *configFile)))
		}
	}

	result, err := pipeline.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig != "" {
		// Record the seed actually used so the saved file reproduces this image.
		opts.Seed = result.Seed
		if err := config.SaveToYAML(config.FromOptions(opts), *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else if !opts.Quiet {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	if !opts.Quiet {
		fmt.Println()
		fmt.Println(components.SuccessStyle.Render("✓ Generation complete!"))
		fmt.Println(components.Summary(
			components.Row("Grid", fmt.Sprintf("%dx%d over %gm", opts.Params.Size, opts.Params.Size, opts.Params.PatchSize)),
			components.Row("Seed", fmt.Sprintf("%d", result.Seed)),
			components.Row("Format", result.Format.String()),
			components.Row("Output", result.OutputPath),
		))
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  spectrumforge [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("spectrumforge")
	fmt.Println("=============")
	fmt.Println()
	fmt.Println("Compute a Phillips ocean-wave spectrum and save it as a false-color image.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  spectrumforge [options]")
	fmt.Println()
	fmt.Println("Model:")
	fmt.Println("  --size <N>            Grid resolution per axis, even (default: 256)")
	fmt.Println("  --patch-size <L>      Patch side length in meters (default: 1000)")
	fmt.Println("  --amplitude <A>       Phillips amplitude constant (default: 4)")
	fmt.Println("  --gravity <G>         Gravitational acceleration (default: 9.81)")
	fmt.Println("  --wind-speed <V>      Wind speed in m/s (default: 40)")
	fmt.Println("  --wind-dir <X,Y>      Wind direction (default: 1,1)")
	fmt.Println("  --directional-exponent <E>")
	fmt.Println("                        Power of the wind alignment term (default: 2)")
	fmt.Println()
	fmt.Println("Rendering:")
	fmt.Println("  --brightness <B>      Brightness scale (default: 3)")
	fmt.Println("  --green <SRC>         Green channel source: real, imag (default: real)")
	fmt.Println("  --label <TEXT>        Draw a text label at the top of the image")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Printf("  --output <PATH>       Output file (default: %s)\n", render.DefaultOutputPath)
	fmt.Println("  --format <FMT>        auto, png, tiff, bmp, dicom (default: auto = from extension, else png)")
	fmt.Println()
	fmt.Println("Run:")
	fmt.Println("  --seed <N>            Seed for reproducibility (auto-generated if not specified)")
	fmt.Printf("  --workers <N>         Number of parallel workers (default: %d = CPU cores)\n", runtime.NumCPU())
	fmt.Println("  --quiet               Suppress progress output")
	fmt.Println("  --config <FILE>       Load configuration from YAML file")
	fmt.Println("  --save-config <FILE>  Save configuration to YAML file (after generation)")
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Default run, writes ../mygameengine/results/spectrum_image_brightened.png")
	fmt.Println("  spectrumforge")
	fmt.Println()
	fmt.Println("  # Reproducible 512x512 spectrum")
	fmt.Println("  spectrumforge --size 512 --seed 42 --output spectrum.png")
	fmt.Println()
	fmt.Println("  # Narrow directional spread, wind along x, as DICOM")
	fmt.Println("  spectrumforge --directional-exponent 8 --wind-dir 1,0 --output spectrum.dcm")
	fmt.Println()
	fmt.Println("  # Show the imaginary amplitudes in green")
	fmt.Println("  spectrumforge --green imag --output spectrum.png")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  Using the same seed and parameters yields a bit-identical image.")
	fmt.Println("  Without --seed a random seed is drawn and printed.")
}
