package sharpness

import (
	"fmt"
	"image"
	"time"

	"go-image-sharpness/internal/errors"
	"go-image-sharpness/pkg/models"
	"go-image-sharpness/pkg/validation"
)

// coreEvaluator implements Evaluator and orchestrates validation,
// downscaling, grayscale conversion, masking and metric computation.
type coreEvaluator struct {
	calculator MetricCalculator
	validator  *validation.SharpnessValidator
}

// NewEvaluator creates an evaluator with default classification thresholds
func NewEvaluator() Evaluator {
	return &coreEvaluator{
		calculator: NewMetricCalculator(),
		validator:  validation.NewSharpnessValidator(),
	}
}

// NewEvaluatorWithThresholds creates an evaluator with custom
// classification thresholds
func NewEvaluatorWithThresholds(thresholds validation.SharpnessThresholds) Evaluator {
	return &coreEvaluator{
		calculator: NewMetricCalculator(),
		validator:  validation.NewSharpnessValidatorWithThresholds(thresholds),
	}
}

// Tenengrad computes the masked mean squared Sobel gradient magnitude.
// The image and mask are borrowed for the duration of the call only.
func (ce *coreEvaluator) Tenengrad(img, mask image.Image, kernelSize, maxLongEdge int) (float64, error) {
	if err := validateImage(img); err != nil {
		return 0, err
	}
	if !SupportedKernelSize(kernelSize) {
		return 0, errors.NewInvalidArgumentError(
			fmt.Sprintf("unsupported Sobel kernel size %d (want 1, 3 or 5)", kernelSize), nil)
	}
	if maxLongEdge < 0 {
		return 0, errors.NewInvalidArgumentError(
			fmt.Sprintf("maxLongEdge must be >= 0 (got %d)", maxLongEdge), nil)
	}
	if err := validateMask(img, mask); err != nil {
		return 0, err
	}

	scaledImg, scaledMask := downscaleToLongEdge(img, mask, maxLongEdge)
	gray := toGray(scaledImg)
	return ce.calculator.TenengradEnergy(gray, maskFrom(scaledMask), kernelSize), nil
}

// LaplacianVariance computes the masked population variance of the 3x3
// Laplacian response.
func (ce *coreEvaluator) LaplacianVariance(img, mask image.Image) (float64, error) {
	if err := validateImage(img); err != nil {
		return 0, err
	}
	if err := validateMask(img, mask); err != nil {
		return 0, err
	}

	gray := toGray(img)
	return ce.calculator.LaplacianVariance(gray, maskFrom(mask)), nil
}

// Evaluate computes both metrics under one option set and classifies the
// scores into a report.
func (ce *coreEvaluator) Evaluate(img, mask image.Image, options Options) (models.SharpnessReport, error) {
	start := time.Now()
	report := models.SharpnessReport{Timestamp: start}

	tenengrad, err := ce.Tenengrad(img, mask, options.KernelSize, options.MaxLongEdge)
	if err != nil {
		return report, err
	}
	laplacianVar, err := ce.LaplacianVariance(img, mask)
	if err != nil {
		return report, err
	}

	bounds := img.Bounds()
	coverage := 1.0
	if mask != nil {
		coverage = NewMaskFromImage(mask).Coverage()
	}

	report.Metrics = models.SharpnessMetrics{
		Tenengrad:    tenengrad,
		LaplacianVar: laplacianVar,
		Resolution:   fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		MaskCoverage: coverage,
	}

	if options.SkipValidation {
		report.Quality.Blurry = laplacianVar <= options.BlurThreshold
		report.Quality.OverSharpened = laplacianVar >= options.OverSharpenThreshold
		report.Quality.IsValid = !report.Quality.Blurry && !report.Quality.OverSharpened
	} else {
		issues := ce.validator.ValidateSharpness(validation.SharpnessQualityMetrics{
			Width:        bounds.Dx(),
			Height:       bounds.Dy(),
			Tenengrad:    tenengrad,
			LaplacianVar: laplacianVar,
			MaskCoverage: coverage,
		})
		for _, issue := range issues {
			switch issue.Type {
			case "blurriness":
				report.Quality.Blurry = true
			case "over_sharpening":
				report.Quality.OverSharpened = true
			case "low_mask_coverage":
				report.Quality.LowMaskCoverage = true
			}
		}
		report.Errors = ce.validator.ConvertIssuesToMessages(issues)
		report.Quality.IsValid = !ce.validator.HasCriticalIssues(issues)
	}

	report.ProcessingTimeSec = time.Since(start).Seconds()
	return report, nil
}

// maskFrom builds a binary mask from a mask image; nil stays nil, which
// selects every pixel downstream.
func maskFrom(mask image.Image) *Mask {
	if mask == nil {
		return nil
	}
	return NewMaskFromImage(mask)
}

func validateImage(img image.Image) error {
	if img == nil {
		return errors.NewInvalidArgumentError("image is nil", nil)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return errors.NewInvalidArgumentError("image is empty", nil)
	}
	return nil
}

func validateMask(img, mask image.Image) error {
	if mask == nil {
		return nil
	}
	imgBounds := img.Bounds()
	maskBounds := mask.Bounds()
	if imgBounds.Dx() != maskBounds.Dx() || imgBounds.Dy() != maskBounds.Dy() {
		return errors.NewInvalidArgumentError(
			fmt.Sprintf("mask dimensions %dx%d do not match image dimensions %dx%d",
				maskBounds.Dx(), maskBounds.Dy(), imgBounds.Dx(), imgBounds.Dy()), nil)
	}
	return nil
}
