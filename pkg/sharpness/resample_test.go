package sharpness

import (
	"testing"
)

func TestDownscaleToLongEdge_Disabled(t *testing.T) {
	img := verticalEdgeImage(100, 100)

	scaled, _ := downscaleToLongEdge(img, nil, 0)

	if scaled != img {
		t.Error("Expected maxLongEdge 0 to return the input untouched")
	}
}

func TestDownscaleToLongEdge_WithinLimit(t *testing.T) {
	img := verticalEdgeImage(100, 100)
	mask := leftHalfMask(100, 100)

	scaledImg, scaledMask := downscaleToLongEdge(img, mask, 200)

	if scaledImg != img {
		t.Error("Expected image within limit to be returned untouched")
	}
	if scaledMask != mask {
		t.Error("Expected mask within limit to be returned untouched")
	}
}

func TestDownscaleToLongEdge_Landscape(t *testing.T) {
	img := verticalEdgeImage(200, 100)

	scaled, _ := downscaleToLongEdge(img, nil, 50)

	bounds := scaled.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("Expected 50x25, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDownscaleToLongEdge_Portrait(t *testing.T) {
	img := verticalEdgeImage(100, 200)

	scaled, _ := downscaleToLongEdge(img, nil, 50)

	bounds := scaled.Bounds()
	if bounds.Dx() != 25 || bounds.Dy() != 50 {
		t.Errorf("Expected 25x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDownscaleToLongEdge_MaskStaysBinary(t *testing.T) {
	img := verticalEdgeImage(100, 100)
	mask := leftHalfMask(100, 100)

	_, scaledMask := downscaleToLongEdge(img, mask, 10)
	if scaledMask == nil {
		t.Fatal("Expected a scaled mask")
	}

	gray := toGray(scaledMask)
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := gray.GrayAt(x, y).Y
			if v != 0 && v != 255 {
				t.Fatalf("Expected binary mask after resize, got %d at (%d,%d)", v, x, y)
			}
		}
	}
}

func TestDownscaleToLongEdge_NilMask(t *testing.T) {
	img := verticalEdgeImage(100, 100)

	_, scaledMask := downscaleToLongEdge(img, nil, 10)

	if scaledMask != nil {
		t.Error("Expected nil mask to stay nil")
	}
}
