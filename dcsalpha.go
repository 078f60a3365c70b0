package godcs

import (
	"math"
)

// Clamp to [0, 255] first, then round half away from zero. NaN goes to 0.
func dcsQuickSaturateByte(d float64) uint8 {
	if !(d > 0) {
		return 0
	}
	if d >= 255.0 {
		return 255
	}
	return uint8(math.Round(d))
}

// Encode a linear value, saturate it and store it as a channel byte
func dcsEncodeByte(linear float64) uint8 {
	return dcsQuickSaturateByte(SRGBFromLinear(linear))
}

// Reports whether every alpha byte of a packed RGBA buffer is 0xff
func dcsAllOpaque(pix []byte) bool {
	for i := colorChannels; i < len(pix); i += bytesPerPixel {
		if pix[i] != 0xff {
			return false
		}
	}
	return true
}
