package godcs

// DefaultQuadrature returns the standard rule:
// 350..800 nm inclusive at 10 samples per nm.
func DefaultQuadrature() Quadrature {
	return Quadrature{From: DefaultFromNM, To: DefaultToNM, PerNM: DefaultPerNM}
}

// Points returns the number of samples the rule evaluates.
func (q Quadrature) Points() int {
	if q.PerNM <= 0 || q.To < q.From {
		return 0
	}
	return (q.To-q.From)*q.PerNM + 1
}

func (q Quadrature) validate() error {
	if q.PerNM <= 0 {
		return dcsSignalError(&ConfigError{Field: "quadrature", Msg: "samples per nm must be positive"})
	}
	if q.To < q.From {
		return dcsSignalError(&ConfigError{Field: "quadrature", Msg: "range ends before it starts"})
	}
	return nil
}

// Integrate returns M[i][j] = ∫ f_i(λ) g_j(λ) dλ using the rectangle rule.
func (q Quadrature) Integrate(f, g SpectralFunc) Transformer {
	var result Transformer
	fp := float64(q.PerNM)

	for k := q.From * q.PerNM; k <= q.To*q.PerNM; k++ {
		lam := float64(k) / fp
		a := f(lam)
		b := g(lam)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				result.V[i].N[j] += a.N[i] * b.N[j] / fp
			}
		}
	}
	return result
}

// Sum returns ∫ f_i(λ) dλ per component using the rectangle rule.
func (q Quadrature) Sum(f SpectralFunc) Color {
	var result Color
	fp := float64(q.PerNM)

	for k := q.From * q.PerNM; k <= q.To*q.PerNM; k++ {
		c := f(float64(k) / fp)
		for i := 0; i < 3; i++ {
			result.N[i] += c.N[i] / fp
		}
	}
	return result
}

// IntegrationMatrix returns the matrix between the CIE matching functions
// and the emitters seen at velocity v:
//
//	| <XR>, <XG>, <XB> |
//	| <YR>, <YG>, <YB> |
//	| <ZR>, <ZG>, <ZB> |
//
// where <AB> is the integral of A*B over the quadrature range. It maps
// emitter intensities to XYZ.
func (m *Model) IntegrationMatrix(v float64) (Transformer, error) {
	if err := CheckVelocity(v); err != nil {
		return Transformer{}, err
	}
	if err := m.validate(); err != nil {
		return Transformer{}, err
	}
	return m.integrationMatrix(v), nil
}

// integrationMatrix skips validation; v must already be checked.
func (m *Model) integrationMatrix(v float64) Transformer {
	return m.Quad.Integrate(XYZMatch, func(lam float64) Color {
		return m.ShiftedEmitter(lam, v)
	})
}

// IntegrationMatrix is Model.IntegrationMatrix on the default model.
func IntegrationMatrix(v float64) (Transformer, error) {
	m := DefaultModel()
	return m.IntegrationMatrix(v)
}
