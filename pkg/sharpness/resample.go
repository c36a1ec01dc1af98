package sharpness

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// downscaleToLongEdge resizes img (and mask, when present) so that
// max(width, height) equals maxLongEdge, preserving aspect ratio. The image
// uses the Box (area) filter; the mask uses nearest-neighbor so it stays
// binary. Inputs already within the limit are returned untouched, which
// makes maxLongEdge=0 and an already-small image share the exact same
// pixel data.
func downscaleToLongEdge(img, mask image.Image, maxLongEdge int) (image.Image, image.Image) {
	if maxLongEdge <= 0 {
		return img, mask
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longEdge := width
	if height > longEdge {
		longEdge = height
	}
	if longEdge <= maxLongEdge {
		return img, mask
	}

	scale := float64(maxLongEdge) / float64(longEdge)
	newWidth := int(math.Round(float64(width) * scale))
	newHeight := int(math.Round(float64(height) * scale))
	// Pin the longer edge exactly to the target
	if width >= height {
		newWidth = maxLongEdge
	} else {
		newHeight = maxLongEdge
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	scaledImg := imaging.Resize(img, newWidth, newHeight, imaging.Box)
	var scaledMask image.Image
	if mask != nil {
		scaledMask = imaging.Resize(mask, newWidth, newHeight, imaging.NearestNeighbor)
	}
	return scaledImg, scaledMask
}
