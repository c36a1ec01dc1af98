package sharpness

import (
	"testing"

	"go-image-sharpness/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.KernelSize != 3 {
		t.Errorf("Expected kernel size 3, got %d", opts.KernelSize)
	}
	if opts.MaxLongEdge != 0 {
		t.Errorf("Expected no downscale limit, got %d", opts.MaxLongEdge)
	}
	if opts.BlurThreshold != 100.0 {
		t.Errorf("Expected blur threshold 100, got %f", opts.BlurThreshold)
	}
	if opts.OverSharpenThreshold != 2000.0 {
		t.Errorf("Expected over-sharpen threshold 2000, got %f", opts.OverSharpenThreshold)
	}
	if opts.SkipValidation {
		t.Error("Expected validation enabled by default")
	}
	if opts.MaxWorkers != 0 {
		t.Errorf("Expected MaxWorkers 0, got %d", opts.MaxWorkers)
	}
}

func TestFastOptions(t *testing.T) {
	opts := FastOptions()

	if opts.MaxLongEdge != 1024 {
		t.Errorf("Expected downscale limit 1024, got %d", opts.MaxLongEdge)
	}
	if !opts.SkipValidation {
		t.Error("Expected validation skipped")
	}
}

func TestStrictOptions(t *testing.T) {
	opts := StrictOptions()

	if opts.BlurThreshold != 400.0 {
		t.Errorf("Expected blur threshold 400, got %f", opts.BlurThreshold)
	}
	if opts.SkipValidation {
		t.Error("Expected validation enabled")
	}
}

func TestOptionsModifiers(t *testing.T) {
	opts := DefaultOptions().
		WithKernelSize(5).
		WithMaxLongEdge(512).
		WithBlurThreshold(250.0).
		WithoutValidation()

	if opts.KernelSize != 5 {
		t.Errorf("Expected kernel size 5, got %d", opts.KernelSize)
	}
	if opts.MaxLongEdge != 512 {
		t.Errorf("Expected downscale limit 512, got %d", opts.MaxLongEdge)
	}
	if opts.BlurThreshold != 250.0 {
		t.Errorf("Expected blur threshold 250, got %f", opts.BlurThreshold)
	}
	if !opts.SkipValidation {
		t.Error("Expected validation skipped")
	}
}

func TestOptionsModifiersDoNotMutate(t *testing.T) {
	base := DefaultOptions()
	_ = base.WithKernelSize(5)

	if base.KernelSize != 3 {
		t.Errorf("Expected base options unchanged, got kernel size %d", base.KernelSize)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		KernelSize:           5,
		MaxLongEdge:          2048,
		BlurThreshold:        150.0,
		OverSharpenThreshold: 3000.0,
		MaxWorkers:           4,
	}

	opts := OptionsFromConfig(cfg)

	if opts.KernelSize != 5 {
		t.Errorf("Expected kernel size 5, got %d", opts.KernelSize)
	}
	if opts.MaxLongEdge != 2048 {
		t.Errorf("Expected downscale limit 2048, got %d", opts.MaxLongEdge)
	}
	if opts.BlurThreshold != 150.0 {
		t.Errorf("Expected blur threshold 150, got %f", opts.BlurThreshold)
	}
	if opts.OverSharpenThreshold != 3000.0 {
		t.Errorf("Expected over-sharpen threshold 3000, got %f", opts.OverSharpenThreshold)
	}
	if opts.MaxWorkers != 4 {
		t.Errorf("Expected MaxWorkers 4, got %d", opts.MaxWorkers)
	}
}
