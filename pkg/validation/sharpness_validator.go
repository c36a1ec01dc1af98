package validation

// SharpnessThresholds defines configurable thresholds for score classification
type SharpnessThresholds struct {
	// Tenengrad thresholds
	MinTenengrad float64

	// Laplacian variance thresholds
	MinLaplacianVariance float64
	MaxLaplacianVariance float64

	// Mask coverage threshold
	MinMaskCoverage float64
}

// DefaultSharpnessThresholds returns the default classification thresholds
func DefaultSharpnessThresholds() SharpnessThresholds {
	return SharpnessThresholds{
		MinTenengrad:         500.0,  // Below this the gradient field carries little structure
		MinLaplacianVariance: 100.0,  // Minimum variance for sharpness
		MaxLaplacianVariance: 2000.0, // Maximum variance to detect over-sharpening/noise
		MinMaskCoverage:      0.05,   // Scores over tiny regions are statistically weak
	}
}

// SharpnessValidator classifies raw sharpness scores against thresholds
type SharpnessValidator struct {
	thresholds SharpnessThresholds
}

// NewSharpnessValidator creates a validator with default thresholds
func NewSharpnessValidator() *SharpnessValidator {
	return &SharpnessValidator{
		thresholds: DefaultSharpnessThresholds(),
	}
}

// NewSharpnessValidatorWithThresholds creates a validator with custom thresholds
func NewSharpnessValidatorWithThresholds(thresholds SharpnessThresholds) *SharpnessValidator {
	return &SharpnessValidator{
		thresholds: thresholds,
	}
}

// QualityIssue represents one classification finding
type QualityIssue struct {
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Severity    string  `json:"severity"` // "error", "warning", "info"
	ActualValue float64 `json:"actual_value,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// SharpnessQualityMetrics represents the values needed for classification
type SharpnessQualityMetrics struct {
	Width        int
	Height       int
	Tenengrad    float64
	LaplacianVar float64
	MaskCoverage float64
}

// ValidateSharpness classifies the scores of one evaluation
func (sv *SharpnessValidator) ValidateSharpness(metrics SharpnessQualityMetrics) []QualityIssue {
	var issues []QualityIssue

	// 1. Blurriness (Laplacian variance)
	if metrics.LaplacianVar <= sv.thresholds.MinLaplacianVariance {
		issues = append(issues, QualityIssue{
			Type:        "blurriness",
			Message:     "Image region is blurry.",
			Severity:    "error",
			ActualValue: metrics.LaplacianVar,
			Threshold:   sv.thresholds.MinLaplacianVariance,
		})
	} else if metrics.LaplacianVar >= sv.thresholds.MaxLaplacianVariance {
		issues = append(issues, QualityIssue{
			Type:        "over_sharpening",
			Message:     "Image region has excessive noise or artificial sharpening.",
			Severity:    "error",
			ActualValue: metrics.LaplacianVar,
			Threshold:   sv.thresholds.MaxLaplacianVariance,
		})
	}

	// 2. Gradient energy (Tenengrad)
	if metrics.Tenengrad <= sv.thresholds.MinTenengrad {
		issues = append(issues, QualityIssue{
			Type:        "low_gradient_energy",
			Message:     "Image region carries little edge structure.",
			Severity:    "warning",
			ActualValue: metrics.Tenengrad,
			Threshold:   sv.thresholds.MinTenengrad,
		})
	}

	// 3. Mask coverage
	if metrics.MaskCoverage < sv.thresholds.MinMaskCoverage {
		issues = append(issues, QualityIssue{
			Type:        "low_mask_coverage",
			Message:     "Mask selects too few pixels for a reliable score.",
			Severity:    "warning",
			ActualValue: metrics.MaskCoverage,
			Threshold:   sv.thresholds.MinMaskCoverage,
		})
	}

	return issues
}

// ConvertIssuesToMessages converts issues to simple error messages
func (sv *SharpnessValidator) ConvertIssuesToMessages(issues []QualityIssue) []string {
	var messages []string
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

// HasCriticalIssues checks if there are any critical (error severity) issues
func (sv *SharpnessValidator) HasCriticalIssues(issues []QualityIssue) bool {
	for _, issue := range issues {
		if issue.Severity == "error" {
			return true
		}
	}
	return false
}
