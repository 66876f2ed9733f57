package render

import (
	"fmt"
	"image"
	"os"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/mrsinham/spectrumforge/internal/util"
)

const (
	secondaryCaptureSOPClass = "1.2.840.10008.5.1.4.1.1.7"
	explicitVRLittleEndian   = "1.2.840.10008.1.2.1"
)

// mustNewElement creates a new DICOM element, panicking on error.
func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// saveDICOM writes img as a single-frame RGB Secondary Capture object.
func saveDICOM(path string, img *image.RGBA, opts SaveOptions) error {
	ds := buildDataset(img, opts)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := dicom.Write(f, ds); err != nil {
		_ = f.Close()
		return fmt.Errorf("write dicom %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func buildDataset(img *image.RGBA, opts SaveOptions) dicom.Dataset {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	seed := opts.UIDSeed
	studyUID := util.GenerateDeterministicUID(seed + "_study")
	seriesUID := util.GenerateDeterministicUID(seed + "_series")
	sopInstanceUID := util.GenerateDeterministicUID(seed + "_instance")

	description := opts.Description
	if description == "" {
		description = "Phillips spectrum"
	}

	nf := frame.NewNativeFrame[uint8](8, height, width, width*height, 3)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			src := row[x*4:]
			dst := (y*width + x) * 3
			nf.RawData[dst+0] = src[0]
			nf.RawData[dst+1] = src[1]
			nf.RawData[dst+2] = src[2]
		}
	}

	pixelData := dicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{
				Encapsulated: false,
				NativeData:   nf,
			},
		},
	}

	return dicom.Dataset{Elements: []*dicom.Element{
		mustNewElement(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOPClass}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.TransferSyntaxUID, []string{explicitVRLittleEndian}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOPClass}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.StudyInstanceUID, []string{studyUID}),
		mustNewElement(tag.SeriesInstanceUID, []string{seriesUID}),
		mustNewElement(tag.Modality, []string{"OT"}),
		mustNewElement(tag.ConversionType, []string{"SYN"}),
		mustNewElement(tag.SeriesDescription, []string{description}),
		mustNewElement(tag.SeriesNumber, []string{"1"}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
		mustNewElement(tag.PatientName, []string{"Spectrum^Ocean"}),
		mustNewElement(tag.PatientID, []string{"SPECTRUM"}),
		mustNewElement(tag.SamplesPerPixel, []int{3}),
		mustNewElement(tag.PhotometricInterpretation, []string{"RGB"}),
		mustNewElement(tag.PlanarConfiguration, []int{0}),
		mustNewElement(tag.Rows, []int{height}),
		mustNewElement(tag.Columns, []int{width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.PixelData, pixelData),
	}}
}
