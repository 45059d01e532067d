package visualization

import (
	"math"

	"aerospace-tamp-sim/internal/common"
)

// DefaultPadding is the margin in pixels between the world and the screen edge.
const DefaultPadding = 50.0

// Transform maps world coordinates to screen pixels. World Y grows upward,
// screen Y grows downward.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitTransform scales a width x height world into the screen with padding,
// preserving the aspect ratio and centering the result.
func FitTransform(width, height float64, screenWidth, screenHeight int, padding float64) Transform {
	sw, sh := float64(screenWidth), float64(screenHeight)
	if width <= 0 || height <= 0 || sw <= 2*padding || sh <= 2*padding {
		return Transform{Scale: 1, OffsetX: sw / 2, OffsetY: sh / 2}
	}

	scaleX := (sw - 2*padding) / width
	scaleY := (sh - 2*padding) / height
	scale := math.Min(scaleX, scaleY)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1.0
	}

	return Transform{
		Scale:   scale,
		OffsetX: sw/2 - width/2*scale,
		OffsetY: sh/2 + height/2*scale,
	}
}

// ToScreen converts a world point to screen coordinates.
func (t Transform) ToScreen(p common.Point) (float32, float32) {
	return float32(p.X*t.Scale + t.OffsetX), float32(t.OffsetY - p.Y*t.Scale)
}

// Length converts a world distance to pixels.
func (t Transform) Length(d float64) float32 {
	return float32(d * t.Scale)
}
