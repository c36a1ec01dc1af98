package sharpness

import (
	"image"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// sobelTaps holds the separable Sobel taps per supported kernel size.
// Size 1 is the plain central difference without cross-axis smoothing;
// 3 and 5 are the usual smooth-times-derivative constructions.
var sobelTaps = map[int]struct {
	smooth []float64
	deriv  []float64
}{
	1: {smooth: []float64{1}, deriv: []float64{-1, 0, 1}},
	3: {smooth: []float64{1, 2, 1}, deriv: []float64{-1, 0, 1}},
	5: {smooth: []float64{1, 4, 6, 4, 1}, deriv: []float64{-1, -2, 0, 2, 1}},
}

// SupportedKernelSize reports whether size is a valid Sobel kernel size.
func SupportedKernelSize(size int) bool {
	_, ok := sobelTaps[size]
	return ok
}

// metricCalculator implements MetricCalculator. The slice pool is the only
// shared state and is safe across goroutines, so one calculator can serve
// concurrent evaluations.
type metricCalculator struct {
	slicePool sync.Pool
}

// NewMetricCalculator creates a new metric calculator
func NewMetricCalculator() MetricCalculator {
	return &metricCalculator{
		slicePool: sync.Pool{
			New: func() interface{} {
				return make([]float64, 0, 1024)
			},
		},
	}
}

// TenengradEnergy computes the mean of Gx^2 + Gy^2 over mask-on pixels.
// Borders use replicated edge values. An empty masked set yields 0.
func (mc *metricCalculator) TenengradEnergy(gray *image.Gray, mask *Mask, kernelSize int) float64 {
	taps, ok := sobelTaps[kernelSize]
	if !ok {
		return 0
	}
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	data := mc.slicePool.Get().([]float64)[:0]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask.On(x, y) {
				continue
			}
			gx := convolveAt(gray, x, y, taps.deriv, taps.smooth)
			gy := convolveAt(gray, x, y, taps.smooth, taps.deriv)
			data = append(data, gx*gx+gy*gy)
		}
	}

	var energy float64
	if len(data) > 0 {
		energy = stat.Mean(data, nil)
	}
	mc.slicePool.Put(data[:0])
	return energy
}

// LaplacianVariance computes the population variance of the 3x3 Laplacian
// response (0,1,0 / 1,-4,1 / 0,1,0) over mask-on pixels. Borders use
// replicated edge values. Fewer than two masked samples yield 0.
func (mc *metricCalculator) LaplacianVariance(gray *image.Gray, mask *Mask) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	data := mc.slicePool.Get().([]float64)[:0]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask.On(x, y) {
				continue
			}
			center := grayAtClamped(gray, x, y)
			top := grayAtClamped(gray, x, y-1)
			bottom := grayAtClamped(gray, x, y+1)
			left := grayAtClamped(gray, x-1, y)
			right := grayAtClamped(gray, x+1, y)
			data = append(data, top+bottom+left+right-4*center)
		}
	}

	var variance float64
	if len(data) >= 2 {
		variance = stat.PopVariance(data, nil)
	}
	mc.slicePool.Put(data[:0])
	return variance
}

// convolveAt applies a separable kernel (horizontal x vertical taps) at
// (x, y) with replicate-clamped borders. Coordinates are relative to the
// image origin.
func convolveAt(gray *image.Gray, x, y int, horiz, vert []float64) float64 {
	hr := len(horiz) / 2
	vr := len(vert) / 2

	var sum float64
	for ky := -vr; ky <= vr; ky++ {
		wy := vert[ky+vr]
		if wy == 0 {
			continue
		}
		for kx := -hr; kx <= hr; kx++ {
			wx := horiz[kx+hr]
			if wx == 0 {
				continue
			}
			sum += wy * wx * grayAtClamped(gray, x+kx, y+ky)
		}
	}
	return sum
}

// grayAtClamped samples the gray value at (x, y) relative to the image
// origin, clamping coordinates to the image rectangle.
func grayAtClamped(gray *image.Gray, x, y int) float64 {
	bounds := gray.Bounds()
	px := clamp(x, 0, bounds.Dx()-1)
	py := clamp(y, 0, bounds.Dy()-1)
	return float64(gray.GrayAt(bounds.Min.X+px, bounds.Min.Y+py).Y)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
