package godcs

import (
	"math"
)

// Linear sRGB -> XYZ (D65), full precision.
var lrgb2xyz = NewTransformer(
	0.4123865632529917, 0.35759149092062537, 0.18045049120356368,
	0.21263682167732384, 0.7151829818412507, 0.07218019648142547,
	0.019330620152483987, 0.11919716364020845, 0.9503725870054354,
)

// XYZ (D65) -> linear sRGB, full precision. Specified on its own rather than
// derived from lrgb2xyz.
var xyz2lrgb = NewTransformer(
	3.2410032329763587, -1.5373989694887855, -0.4986158819963629,
	-0.9692242522025166, 1.875929983695176, 0.041554226340084724,
	0.055639419851975444, -0.20401120612390997, 1.0571489771875335,
)

// LinearRGBToXYZ returns the linear sRGB to XYZ matrix.
func LinearRGBToXYZ() Transformer { return lrgb2xyz }

// XYZToLinearRGB returns the XYZ to linear sRGB matrix.
func XYZToLinearRGB() Transformer { return xyz2lrgb }

// XYZFromSRGB maps a gamma encoded triplet in [0, 255] to XYZ.
func XYZFromSRGB(srgb Color) Color {
	var lin, r Color
	for i := 0; i < 3; i++ {
		lin.N[i] = LinearFromSRGB(srgb.N[i])
	}
	dcsMAT3eval(&r, &lrgb2xyz, &lin)
	return r
}

// SRGBFromXYZ maps XYZ to a gamma encoded triplet. Out of gamut values are
// returned as they are, not clamped.
func SRGBFromXYZ(xyz Color) Color {
	var lin, r Color
	dcsMAT3eval(&lin, &xyz2lrgb, &xyz)
	for i := 0; i < 3; i++ {
		r.N[i] = SRGBFromLinear(lin.N[i])
	}
	return r
}

// Composer holds the stationary integration matrix of a Model and its
// inverse, so that transforms for several velocities share one inversion.
// A Composer is immutable and safe for concurrent use.
type Composer struct {
	model      Model
	stationary Transformer // emitter -> XYZ at rest
	inverse    Transformer // XYZ -> emitter
}

// NewComposer integrates and inverts the stationary matrix of m.
func NewComposer(m Model) (*Composer, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	stationary := m.integrationMatrix(0)
	inverse, err := stationary.Inverse()
	if err != nil {
		return nil, err
	}
	dcsLogger.Load().Debug("stationary integration matrix",
		"det", dcsMAT3det(&stationary),
		"cond", dcsMAT3normInf(&stationary)*dcsMAT3normInf(&inverse))
	return &Composer{model: m, stationary: stationary, inverse: inverse}, nil
}

// Model returns the model the composer was built from.
func (c *Composer) Model() Model { return c.model }

// Stationary returns the emitter integration matrix at v = 0.
func (c *Composer) Stationary() Transformer { return c.stationary }

// Transform returns the matrix that maps a linear sRGB triplet to the linear
// sRGB triplet an observer moving at v perceives from the same display:
//
//	XYZ->lRGB * I(v) * I(0)^-1 * lRGB->XYZ
func (c *Composer) Transform(v float64) (Transformer, error) {
	if err := CheckVelocity(v); err != nil {
		return Transformer{}, err
	}
	moving := c.model.integrationMatrix(v)

	result := dcsMAT3per(&xyz2lrgb, &moving) // emitter' -> lRGB
	result = dcsMAT3per(&result, &c.inverse) // XYZ -> emitter
	result = dcsMAT3per(&result, &lrgb2xyz)  // lRGB -> XYZ

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(result.V[i].N[j]) || math.IsInf(result.V[i].N[j], 0) {
				return Transformer{}, dcsSignalError(&NumericDegeneracyError{Det: dcsMAT3det(&c.stationary), Cond: math.Inf(1)})
			}
		}
	}
	dcsLogger.Load().Debug("composed transform", "velocity", v, "doppler", DopplerFactor(v),
		"identity", dcsMAT3isIdentity(&result, identityTolerance))
	return result, nil
}

// BuildTransform returns the composed transform of m at velocity v. The
// velocity is checked before any integration is done.
func (m Model) BuildTransform(v float64) (Transformer, error) {
	if err := CheckVelocity(v); err != nil {
		return Transformer{}, err
	}
	c, err := NewComposer(m)
	if err != nil {
		return Transformer{}, err
	}
	return c.Transform(v)
}

// BuildTransform is Model.BuildTransform on the default model.
func BuildTransform(v float64) (Transformer, error) {
	return DefaultModel().BuildTransform(v)
}
