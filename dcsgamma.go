package godcs

import (
	"math"
)

// ----------------------------------------------------------------- Implementation

// LinearFromSRGB performs the sRGB gamma expansion of a value on the
// [0, 255] scale into linear light on [0, 1].
func LinearFromSRGB(value float64) float64 {
	if value <= gammaDecodeBreak {
		return value / gammaSlope
	}
	return math.Pow((value+gammaOffset)/gammaScale, gammaExponent)
}

// SRGBFromLinear performs the sRGB gamma compression of a linear value on
// [0, 1] into the [0, 255] scale. Negative input stays on the linear
// segment and comes out negative.
//
// The switch to the power segment happens at the same encoded value where
// LinearFromSRGB switches, so the two functions invert each other on both
// sides of the break. The usual sRGB curve on this scale switches at an
// encoded 10 instead. The two differ by up to 2.5e-3 for linear inputs in
// (10/3294.6, 10.31475/3294.6] and never in the rounded byte.
func SRGBFromLinear(value float64) float64 {
	if value*gammaSlope <= gammaDecodeBreak {
		return value * gammaSlope
	}
	return gammaScale*math.Pow(value, 5.0/12.0) - gammaOffset
}

// GammaTable memoizes LinearFromSRGB over every 8-bit input.
type GammaTable [256]float64

// NewGammaTable fills a table.
func NewGammaTable() *GammaTable {
	var t GammaTable
	for i := range t {
		t[i] = LinearFromSRGB(float64(i))
	}
	return &t
}

// Decode returns the linear value of an encoded byte.
func (t *GammaTable) Decode(b uint8) float64 {
	return t[b]
}
