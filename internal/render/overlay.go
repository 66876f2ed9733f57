package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// AddLabel draws text near the top of img, centered horizontally, white with a
// black outline so it stays readable over both dark and saturated regions.
//
// The text is rendered with basicfont.Face7x13 and scaled with bilinear
// interpolation to about 40% of the image width (never below 1x, never wider
// than the image). Text that does not fit at 1x is clipped to the image.
func AddLabel(img *image.RGBA, text string) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if text == "" {
		return nil
	}

	face := basicfont.Face7x13
	baseW := font.MeasureString(face, text).Ceil()
	baseH := face.Metrics().Height.Ceil()

	textImg := image.NewRGBA(image.Rect(0, 0, baseW, baseH))
	drawer := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{Y: face.Metrics().Ascent},
	}
	drawer.DrawString(text)

	scale := float64(width) * 0.4 / float64(baseW)
	if maxScale := float64(width) / float64(baseW); scale > maxScale {
		scale = maxScale
	}
	if scale < 1 {
		scale = 1
	}

	mask := image.Image(textImg)
	scaledW, scaledH := baseW, baseH
	if scale > 1 {
		scaledW = int(float64(baseW) * scale)
		scaledH = int(float64(baseH) * scale)
		scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
		draw.BiLinear.Scale(scaled, scaled.Bounds(), textImg, textImg.Bounds(), draw.Over, nil)
		mask = scaled
	}

	x := b.Min.X + (width-scaledW)/2
	y := b.Min.Y + int(float64(height)*0.05)
	dst := image.Rect(x, y, x+scaledW, y+scaledH)

	outline := max(1, scaledH/10)
	black := image.NewUniform(color.Black)
	for dx := -outline; dx <= outline; dx++ {
		for dy := -outline; dy <= outline; dy++ {
			if (dx == 0 && dy == 0) || dx*dx+dy*dy > outline*outline {
				continue
			}
			draw.DrawMask(img, dst.Add(image.Pt(dx, dy)), black, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
	draw.DrawMask(img, dst, image.NewUniform(color.White), image.Point{}, mask, image.Point{}, draw.Over)

	return nil
}
