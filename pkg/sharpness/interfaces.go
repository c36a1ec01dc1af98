package sharpness

import (
	"image"

	"go-image-sharpness/pkg/models"
)

// Evaluator defines the main interface for sharpness measurement.
// Implementations are stateless between calls and safe for concurrent use.
type Evaluator interface {
	// Tenengrad computes the mean squared Sobel gradient magnitude over
	// the masked region. kernelSize must be 1, 3 or 5; maxLongEdge > 0
	// downscales the image (and mask) so the longer edge fits within it,
	// 0 disables downscaling. A nil mask selects every pixel.
	Tenengrad(img, mask image.Image, kernelSize, maxLongEdge int) (float64, error)

	// LaplacianVariance computes the population variance of the 3x3
	// Laplacian response over the masked region. A nil mask selects
	// every pixel.
	LaplacianVariance(img, mask image.Image) (float64, error)

	// Evaluate computes both metrics under one option set and classifies
	// the scores into a report.
	Evaluate(img, mask image.Image, options Options) (models.SharpnessReport, error)
}

// MetricCalculator computes raw masked metrics over grayscale pixels.
// Inputs are assumed validated; degenerate masked sets yield 0.
type MetricCalculator interface {
	TenengradEnergy(gray *image.Gray, mask *Mask, kernelSize int) float64
	LaplacianVariance(gray *image.Gray, mask *Mask) float64
}
