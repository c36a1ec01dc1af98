package sharpness

import (
	"image"
	"image/draw"
)

// MaskOnThreshold is the gray level at or above which a mask pixel counts
// as "on". Masks are nominally 0/255, but resampling can introduce
// intermediate levels; the midpoint keeps the binary intent.
const MaskOnThreshold = 128

// Mask is a binary region selector over an image. A nil *Mask selects
// every pixel, so callers never branch on its presence.
type Mask struct {
	width, height int
	on            []bool
	onCount       int
}

// NewMaskFromImage builds a mask from a grayscale (or color) mask image.
// Pixels whose gray value is >= MaskOnThreshold are "on".
func NewMaskFromImage(img image.Image) *Mask {
	gray := toGray(img)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	m := &Mask{
		width:  width,
		height: height,
		on:     make([]bool, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y >= MaskOnThreshold {
				m.on[y*width+x] = true
				m.onCount++
			}
		}
	}
	return m
}

// On reports whether the pixel at (x, y) is selected. Coordinates are
// relative to the image origin. A nil mask selects everything.
func (m *Mask) On(x, y int) bool {
	if m == nil {
		return true
	}
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.on[y*m.width+x]
}

// OnCount returns the number of selected pixels.
func (m *Mask) OnCount() int {
	if m == nil {
		return 0
	}
	return m.onCount
}

// Coverage returns the fraction of pixels the mask selects.
// A nil mask covers the whole image.
func (m *Mask) Coverage() float64 {
	if m == nil {
		return 1.0
	}
	total := m.width * m.height
	if total == 0 {
		return 0
	}
	return float64(m.onCount) / float64(total)
}

// toGray converts any image to single-channel grayscale intensity.
func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}
