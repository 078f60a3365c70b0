package godcs

// A matrix whose |det| falls under this times normInf^3 is treated as singular
const MATRIX_DET_TOLERANCE = 0.0001

// Infinity-norm condition number above which an inversion is refused.
const MATRIX_COND_LIMIT = 1e12

// Interleaved R,G,B,A
const bytesPerPixel = 4

// Number of colour channels touched per pixel. Alpha follows them.
const colorChannels = 3

// sRGB curve on the 0..255 scale.
const (
	gammaDecodeBreak = 10.31475 // encoded value where both directions switch segments
	gammaSlope       = 3294.6   // 12.92 * 255
	gammaScale       = 269.025  // 1.055 * 255
	gammaOffset      = 14.025   // 0.055 * 255
	gammaExponent    = 2.4
)

// The CIE lobes are tabulated in angstrom and share this amplitude
// normalisation.
const (
	cieWavelengthScale = 10.0
	cieNormalization   = 1.068
)

// Tolerance used when reporting whether a composed transform is the identity.
const identityTolerance = 1e-9
