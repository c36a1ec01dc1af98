package sharpness

import (
	"go-image-sharpness/internal/config"
)

// Options provides flexible configuration for sharpness evaluation
type Options struct {
	// Metric parameters
	KernelSize  int // Sobel kernel size: 1, 3 or 5
	MaxLongEdge int // Downscale so max(width,height) <= this; 0 = no downscale

	// Classification thresholds
	BlurThreshold        float64
	OverSharpenThreshold float64

	// Feature toggles
	SkipValidation bool

	// Performance options (batch evaluation)
	MaxWorkers int // 0 = CPU count
}

// DefaultOptions returns default evaluation options
func DefaultOptions() Options {
	return Options{
		KernelSize:           3,
		MaxLongEdge:          0,
		BlurThreshold:        100.0,
		OverSharpenThreshold: 2000.0,
		SkipValidation:       false,
		MaxWorkers:           0,
	}
}

// FastOptions returns options for fast evaluation of large images
func FastOptions() Options {
	opts := DefaultOptions()
	opts.MaxLongEdge = 1024 // Bound the pixel count before convolving
	opts.SkipValidation = true
	return opts
}

// StrictOptions returns options with more sensitive blur detection
func StrictOptions() Options {
	opts := DefaultOptions()
	opts.BlurThreshold = 400.0
	return opts
}

// OptionsFromConfig returns options seeded from environment configuration
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.KernelSize = cfg.KernelSize
	opts.MaxLongEdge = cfg.MaxLongEdge
	opts.BlurThreshold = cfg.BlurThreshold
	opts.OverSharpenThreshold = cfg.OverSharpenThreshold
	opts.MaxWorkers = cfg.MaxWorkers
	return opts
}

// WithKernelSize returns options with a custom Sobel kernel size
func (opts Options) WithKernelSize(size int) Options {
	opts.KernelSize = size
	return opts
}

// WithMaxLongEdge returns options with a custom downscale limit
func (opts Options) WithMaxLongEdge(maxLongEdge int) Options {
	opts.MaxLongEdge = maxLongEdge
	return opts
}

// WithBlurThreshold returns options with a custom blur threshold
func (opts Options) WithBlurThreshold(threshold float64) Options {
	opts.BlurThreshold = threshold
	return opts
}

// WithoutValidation disables score classification
func (opts Options) WithoutValidation() Options {
	opts.SkipValidation = true
	return opts
}
