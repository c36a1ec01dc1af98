package models

import "time"

// SharpnessReport is the complete result of evaluating one image/mask pair
type SharpnessReport struct {
	Timestamp         time.Time `json:"timestamp"`
	ProcessingTimeSec float64   `json:"processing_time_sec"`

	// Raw metric values
	Metrics SharpnessMetrics `json:"metrics"`

	// Threshold classification of the metric values
	Quality Quality `json:"quality"`

	// Validation messages, one per detected quality issue
	Errors []string `json:"errors,omitempty"`
}

// SharpnessMetrics holds the raw sharpness scores.
// Both scores are non-negative; higher means sharper.
type SharpnessMetrics struct {
	// Tenengrad is the mean squared Sobel gradient magnitude over the
	// masked region.
	Tenengrad float64 `json:"tenengrad"`

	// LaplacianVar is the population variance of the 3x3 Laplacian
	// response over the masked region.
	LaplacianVar float64 `json:"laplacian_variance"`

	Resolution string `json:"resolution,omitempty"`

	// MaskCoverage is the fraction of image pixels the mask selects,
	// 1.0 when no mask was supplied.
	MaskCoverage float64 `json:"mask_coverage"`
}

// Quality represents the sharpness assessment of an image region
type Quality struct {
	Blurry          bool `json:"blurry"`
	OverSharpened   bool `json:"over_sharpened"`
	LowMaskCoverage bool `json:"low_mask_coverage,omitempty"`
	IsValid         bool `json:"is_valid"`
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
