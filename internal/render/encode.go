package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultOutputPath is where the image goes when no path is configured.
const DefaultOutputPath = "../mygameengine/results/spectrum_image_brightened.png"

// ErrUnknownFormat is returned for format names and values the encoder does not support.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output file format.
type Format int

const (
	// FormatAuto picks the format from the output file extension.
	FormatAuto Format = iota
	FormatPNG
	FormatTIFF
	FormatBMP
	FormatDICOM
)

// AllFormats lists every concrete format in display order.
var AllFormats = []Format{FormatPNG, FormatTIFF, FormatBMP, FormatDICOM}

func (f Format) String() string {
	switch f {
	case FormatTIFF:
		return "tiff"
	case FormatBMP:
		return "bmp"
	case FormatDICOM:
		return "dicom"
	case FormatAuto:
		return "auto"
	default:
		return "png"
	}
}

// ParseFormat parses a format name (case-insensitive). Common aliases such as
// "tif" and "dcm" are accepted; "" and "auto" give FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "png":
		return FormatPNG, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	case "bmp":
		return FormatBMP, nil
	case "dicom", "dcm":
		return FormatDICOM, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %s (valid: auto, png, tiff, bmp, dicom)", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from the file extension, defaulting to PNG.
// It never returns FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return FormatTIFF
	case ".bmp":
		return FormatBMP
	case ".dcm":
		return FormatDICOM
	default:
		return FormatPNG
	}
}

// SaveOptions controls how Save encodes the image.
type SaveOptions struct {
	Format Format // FormatAuto = from the path extension

	// DICOM only.
	Description string
	UIDSeed     string
}

// Save encodes img to path, replacing any existing file. The parent
// directory must already exist.
func Save(path string, img *image.RGBA, opts SaveOptions) error {
	if opts.Format == FormatAuto {
		opts.Format = FormatFromPath(path)
	}
	if opts.Format == FormatDICOM {
		return saveDICOM(path, img, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, img, opts.Format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in one of the raster formats. DICOM needs file-level
// metadata and goes through Save instead.
func Encode(w io.Writer, img *image.RGBA, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s cannot be stream-encoded", ErrUnknownFormat, format)
	}
}
