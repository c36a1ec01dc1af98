package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries the evaluator defaults that operators tune per deployment.
// Every field has a safe default; the environment only overrides.
type Config struct {
	KernelSize           int
	MaxLongEdge          int
	BlurThreshold        float64
	OverSharpenThreshold float64
	MaxWorkers           int
}

func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		KernelSize:           parseIntOrDefault("SHARPNESS_KERNEL_SIZE", 3),
		MaxLongEdge:          parseIntOrDefault("SHARPNESS_MAX_LONG_EDGE", 0),
		BlurThreshold:        parseFloatOrDefault("SHARPNESS_BLUR_THRESHOLD", 100.0),
		OverSharpenThreshold: parseFloatOrDefault("SHARPNESS_OVERSHARPEN_THRESHOLD", 2000.0),
		MaxWorkers:           parseIntOrDefault("SHARPNESS_MAX_WORKERS", 0), // 0 = CPU count
	}

	switch cfg.KernelSize {
	case 1, 3, 5:
	default:
		return nil, fmt.Errorf("invalid SHARPNESS_KERNEL_SIZE: %d (want 1, 3 or 5)", cfg.KernelSize)
	}
	if cfg.MaxLongEdge < 0 {
		return nil, fmt.Errorf("SHARPNESS_MAX_LONG_EDGE must be >= 0 (got %d)", cfg.MaxLongEdge)
	}
	if cfg.BlurThreshold <= 0 || cfg.OverSharpenThreshold <= 0 {
		return nil, fmt.Errorf("thresholds must be > 0 (got blur=%f, oversharpen=%f)",
			cfg.BlurThreshold, cfg.OverSharpenThreshold)
	}
	if cfg.OverSharpenThreshold <= cfg.BlurThreshold {
		return nil, fmt.Errorf("SHARPNESS_OVERSHARPEN_THRESHOLD (%f) must exceed SHARPNESS_BLUR_THRESHOLD (%f)",
			cfg.OverSharpenThreshold, cfg.BlurThreshold)
	}
	if cfg.MaxWorkers < 0 {
		return nil, fmt.Errorf("SHARPNESS_MAX_WORKERS must be >= 0 (got %d)", cfg.MaxWorkers)
	}
	return cfg, nil
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
