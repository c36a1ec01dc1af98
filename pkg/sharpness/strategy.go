package sharpness

import (
	"fmt"
	"image"

	"go-image-sharpness/internal/errors"
)

// Metric names a sharpness algorithm
type Metric string

const (
	// MetricTenengrad selects the Sobel gradient energy metric
	MetricTenengrad Metric = "tenengrad"
	// MetricLaplacian selects the Laplacian variance metric
	MetricLaplacian Metric = "laplacian_variance"
)

// MetricStrategy scores one image/mask pair with a fixed algorithm
type MetricStrategy interface {
	Score(img, mask image.Image) (float64, error)
	Name() string
}

// tenengradStrategy scores via Sobel gradient energy
type tenengradStrategy struct {
	evaluator   Evaluator
	kernelSize  int
	maxLongEdge int
}

func (s *tenengradStrategy) Score(img, mask image.Image) (float64, error) {
	return s.evaluator.Tenengrad(img, mask, s.kernelSize, s.maxLongEdge)
}

func (s *tenengradStrategy) Name() string {
	return string(MetricTenengrad)
}

// laplacianStrategy scores via Laplacian variance
type laplacianStrategy struct {
	evaluator Evaluator
}

func (s *laplacianStrategy) Score(img, mask image.Image) (float64, error) {
	return s.evaluator.LaplacianVariance(img, mask)
}

func (s *laplacianStrategy) Name() string {
	return string(MetricLaplacian)
}

// NewMetricStrategy builds the strategy for the named metric. An empty
// metric defaults to Tenengrad.
func NewMetricStrategy(metric Metric, evaluator Evaluator, options Options) (MetricStrategy, error) {
	switch metric {
	case MetricTenengrad, "":
		return &tenengradStrategy{
			evaluator:   evaluator,
			kernelSize:  options.KernelSize,
			maxLongEdge: options.MaxLongEdge,
		}, nil
	case MetricLaplacian:
		return &laplacianStrategy{evaluator: evaluator}, nil
	default:
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("unsupported metric %q", metric), nil)
	}
}
