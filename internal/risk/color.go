package risk

import (
	"fmt"
	"math"
)

// RGB is an 8-bit-per-channel display color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	// NeutralGray is the fallback for missing or degenerate inputs.
	NeutralGray = RGB{R: 128, G: 128, B: 128}

	// Anchor colors for the flow gradient. The clamp branches and the
	// interpolation use the same anchors so the gradient is continuous at
	// the threshold boundary.
	flowRed   = RGB{R: 214, G: 39, B: 40}
	flowGreen = RGB{R: 44, G: 160, B: 44}
)

// Blue channel is held constant across the return gradient.
const returnBlue = 60

func clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ReturnColor maps a return linearly between its VaR bounds onto a red-green
// gradient. Missing inputs and zero-width bands yield NeutralGray. Values
// outside the band clamp to the boundary colors.
func ReturnColor(value, var95, var5 *float64) RGB {
	if missing(value) || missing(var95) || missing(var5) {
		return NeutralGray
	}
	span := *var5 - *var95
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return NeutralGray
	}
	t := clamp01((*value - *var95) / span)
	return RGB{
		R: uint8(math.Round(255 * (1 - t))),
		G: uint8(math.Round(255 * t)),
		B: returnBlue,
	}
}

// FlowColor maps a flow percentage onto the red-green gradient anchored at
// ±threshold. Beyond the band the anchor colors are returned directly.
func FlowColor(value *float64, threshold float64) RGB {
	if missing(value) || threshold <= 0 || math.IsNaN(threshold) {
		return NeutralGray
	}
	v := *value
	if v <= -threshold {
		return flowRed
	}
	if v >= threshold {
		return flowGreen
	}
	t := clamp01((v + threshold) / (2 * threshold))
	return lerpRGB(flowRed, flowGreen, t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}
