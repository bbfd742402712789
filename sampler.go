package stipple

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// PixelSource provides random access to decoded pixel data. The sampler only
// needs dimensions, an alpha test, and (when color extraction is on) the RGB
// channels; it never touches encoded bytes or performs decoding itself.
type PixelSource interface {
	// Size returns the pixel dimensions.
	Size() (w, h int)
	// RGBAAt returns the straight-alpha 8-bit channels at (x, y).
	RGBAAt(x, y int) (r, g, b, a uint8)
}

// sampleAlphaThreshold is the alpha a pixel must exceed to produce a sample.
const sampleAlphaThreshold = 128

// imageSource adapts a decoded image.Image to PixelSource.
type imageSource struct {
	img image.Image
}

// ImagePixels wraps a decoded image as a PixelSource.
func ImagePixels(img image.Image) PixelSource {
	return &imageSource{img: img}
}

func (s *imageSource) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *imageSource) RGBAAt(x, y int) (r, g, b, a uint8) {
	min := s.img.Bounds().Min
	c := color.NRGBAModel.Convert(s.img.At(min.X+x, min.Y+y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}

// DecodePixels decodes encoded image bytes into a PixelSource using the
// image formats registered with the standard image package. Importing
// image/png or image/jpeg for side effects registers the usual formats.
func DecodePixels(data []byte) (PixelSource, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("stipple: decode image: %w", err)
	}
	return ImagePixels(img), nil
}

// SampleImage converts decoded pixel data into an ordered sequence of target
// samples. Every pixel at (x, y) with both coordinates stepping by
// cfg.Density whose alpha exceeds 128 yields a sample, shifted by the
// alignment offset computed from the canvas size, padding, and AlignH/AlignV.
// With cfg.Contain set, the source is first scaled down (never up) to fit
// the padded area.
//
// Output order is raster scan order with x as the outer loop and y as the
// inner loop. Downstream shuffling relies on this base ordering being fixed.
func SampleImage(src PixelSource, cfg Config) []Sample {
	cfg = cfg.withDefaults()
	area := cfg.paddedArea()

	w, h := src.Size()
	if cfg.Contain {
		src, w, h = containSource(src, w, h, area)
	}
	offset := alignOffset(cfg, area, w, h)

	var samples []Sample
	for x := 0; x < w; x += cfg.Density {
		for y := 0; y < h; y += cfg.Density {
			r, g, b, a := src.RGBAAt(x, y)
			if a <= sampleAlphaThreshold {
				continue
			}
			s := Sample{To: Point{X: float64(x) + offset.X, Y: float64(y) + offset.Y}}
			if cfg.SampleColor {
				s.Props = Properties{PropFill: formatHexColor(r, g, b)}
			}
			samples = append(samples, s)
		}
	}
	return samples
}

// alignOffset positions a w×h image inside the padded area per the
// configured alignment. The offset may be negative when the image is larger
// than the area and Contain is off.
func alignOffset(cfg Config, area Rect, w, h int) Point {
	var off Point
	switch cfg.AlignH {
	case AlignLeft:
		off.X = area.X
	case AlignRight:
		off.X = area.X + area.Width - float64(w)
	default:
		off.X = area.X + (area.Width-float64(w))/2
	}
	switch cfg.AlignV {
	case AlignTop:
		off.Y = area.Y
	case AlignBottom:
		off.Y = area.Y + area.Height - float64(h)
	default:
		off.Y = area.Y + (area.Height-float64(h))/2
	}
	return off
}

// containSource scales the source to fit the area, preserving aspect ratio.
// Sources already within the area are returned unchanged.
func containSource(src PixelSource, w, h int, area Rect) (PixelSource, int, int) {
	if float64(w) <= area.Width && float64(h) <= area.Height {
		return src, w, h
	}
	scale := area.Width / float64(w)
	if s := area.Height / float64(h); s < scale {
		scale = s
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), sourceImage(src, w, h), image.Rect(0, 0, w, h), xdraw.Src, nil)
	return ImagePixels(dst), dw, dh
}

// sourceImage materializes an arbitrary PixelSource as an image.Image so the
// x/image scalers can read it. Image-backed sources are unwrapped directly.
func sourceImage(src PixelSource, w, h int) image.Image {
	if is, ok := src.(*imageSource); ok {
		return is.img
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			r, g, b, a := src.RGBAAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
