package godcs

import (
	"math"
)

// Gauss returns the value of an asymmetric gaussian
//
//	a exp((x-m)^2 / -2s^2)  where s = s1 if x < m else s2
func Gauss(x, a, m, s1, s2 float64) float64 {
	s := s2
	if x < m {
		s = s1
	}
	d := x - m
	return a * math.Exp(-(d*d)/2/(s*s))
}

// Eval evaluates the lobe at x.
func (l Lobe) Eval(x float64) float64 {
	return Gauss(x, l.A, l.M, l.S1, l.S2)
}

// Multi-lobe fit of the CIE 1931 colour matching functions. Means and
// widths are in angstrom, amplitudes are scaled by 1/cieNormalization at
// evaluation time.
var cieLobes = [3][]Lobe{
	{ // x-bar
		{A: 1.056, M: 5998, S1: 379, S2: 310},
		{A: 0.362, M: 4420, S1: 160, S2: 267},
		{A: -0.065, M: 5011, S1: 204, S2: 262},
	},
	{ // y-bar
		{A: 0.821, M: 5688, S1: 469, S2: 405},
		{A: 0.286, M: 5309, S1: 163, S2: 311},
	},
	{ // z-bar
		{A: 1.217, M: 4370, S1: 118, S2: 360},
		{A: 0.681, M: 4590, S1: 260, S2: 138},
	},
}

// XYZMatch returns the X, Y and Z colour matching function values at lam
// nanometres. Meaningful values sit between 380 and 780 nm; outside that
// the functions fall off towards zero.
func XYZMatch(lam float64) Color {
	var r Color
	x := lam * cieWavelengthScale
	for c := 0; c < 3; c++ {
		for _, l := range cieLobes[c] {
			r.N[c] += Gauss(x, l.A/cieNormalization, l.M, l.S1, l.S2)
		}
	}
	return r
}

// DefaultEmitters returns the red, green and blue bands: unit symmetric
// gaussians at 650, 550 and 450 nm, 20 nm wide.
func DefaultEmitters() [3]Lobe {
	return [3]Lobe{
		{A: 1, M: RedPeakNM, S1: EmitterWidthNM, S2: EmitterWidthNM},
		{A: 1, M: GreenPeakNM, S1: EmitterWidthNM, S2: EmitterWidthNM},
		{A: 1, M: BluePeakNM, S1: EmitterWidthNM, S2: EmitterWidthNM},
	}
}

// CheckVelocity returns a *DomainError unless -1 < v < 1. NaN is rejected.
func CheckVelocity(v float64) error {
	if !(v > -1 && v < 1) {
		return dcsSignalError(&DomainError{Velocity: v})
	}
	return nil
}

// DopplerFactor returns sqrt((1-v)/(1+v)). It does not guard its input:
// v must satisfy -1 < v < 1, see CheckVelocity.
func DopplerFactor(v float64) float64 {
	return math.Sqrt((1 - v) / (1 + v))
}

// Emitter returns the three emitter responses at lam nanometres.
func (m *Model) Emitter(lam float64) Color {
	return NewColor(
		m.Emitters[0].Eval(lam),
		m.Emitters[1].Eval(lam),
		m.Emitters[2].Eval(lam),
	)
}

// ShiftedEmitter is Emitter as seen by an observer moving at v. It equals
// Emitter at v = 0. v must satisfy -1 < v < 1.
func (m *Model) ShiftedEmitter(lam, v float64) Color {
	return m.Emitter(lam * DopplerFactor(v))
}

// ApparentPeaks returns the wavelengths at which an observer moving at v
// sees each emitter peak.
func (m *Model) ApparentPeaks(v float64) ([3]float64, error) {
	if err := CheckVelocity(v); err != nil {
		return [3]float64{}, err
	}
	g := DopplerFactor(v)
	return [3]float64{m.Emitters[0].M / g, m.Emitters[1].M / g, m.Emitters[2].M / g}, nil
}

// Emitter evaluates the default emitters.
func Emitter(lam float64) Color {
	m := DefaultModel()
	return m.Emitter(lam)
}

// ShiftedEmitter evaluates the default emitters seen at velocity v.
func ShiftedEmitter(lam, v float64) Color {
	m := DefaultModel()
	return m.ShiftedEmitter(lam, v)
}

// ApparentPeaks is Model.ApparentPeaks on the default model.
func ApparentPeaks(v float64) ([3]float64, error) {
	m := DefaultModel()
	return m.ApparentPeaks(v)
}

// validate checks that every emitter lobe can be evaluated.
func (m *Model) validate() error {
	for i, l := range m.Emitters {
		if !(l.S1 > 0) || !(l.S2 > 0) || math.IsInf(l.M, 0) || math.IsNaN(l.M) || math.IsNaN(l.A) {
			return dcsSignalError(&ConfigError{Field: "emitter", Msg: emitterName(i) + " lobe needs finite mean and positive widths"})
		}
	}
	return m.Quad.validate()
}

func emitterName(i int) string {
	switch i {
	case 0:
		return "red"
	case 1:
		return "green"
	default:
		return "blue"
	}
}
