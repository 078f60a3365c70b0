package godcs

import (
	"errors"
	"math"
	"testing"
)

func TestDcsVEC3init(t *testing.T) {
	var v Color
	dcsVEC3init(&v, 1.1, 2.2, 3.3)
	if v.N[0] != 1.1 || v.N[1] != 2.2 || v.N[2] != 3.3 {
		t.Errorf("dcsVEC3init failed: got %v", v.N)
	}
}

func TestDcsVEC3minus(t *testing.T) {
	a := Color{N: [3]float64{3, 2, 1}}
	b := Color{N: [3]float64{1, 1, 1}}
	var r Color
	dcsVEC3minus(&r, &a, &b)
	if r.N != [3]float64{2, 1, 0} {
		t.Errorf("dcsVEC3minus failed: got %v", r.N)
	}
}

func TestDcsVEC3distance(t *testing.T) {
	a := Color{N: [3]float64{0, 0, 0}}
	b := Color{N: [3]float64{3, 4, 0}}
	if d := dcsVEC3distance(&a, &b); math.Abs(d-5.0) > 1e-12 {
		t.Errorf("dcsVEC3distance expected 5.0, got %f", d)
	}
	if d := ColorDistance(a, b); math.Abs(d-5.0) > 1e-12 {
		t.Errorf("ColorDistance expected 5.0, got %f", d)
	}
}

func TestDcsMAT3identity(t *testing.T) {
	var m Transformer
	dcsMAT3identity(&m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			if m.V[i].N[j] != expected {
				t.Errorf("identity[%d][%d] = %f, want %f", i, j, m.V[i].N[j], expected)
			}
		}
	}
	if !m.IsIdentity(0) {
		t.Error("IsIdentity(0) false on the identity")
	}
	m.V[1].N[2] = 1e-6
	if m.IsIdentity(1e-9) {
		t.Error("IsIdentity(1e-9) true with an off-diagonal 1e-6")
	}
	if !m.IsIdentity(1e-5) {
		t.Error("IsIdentity(1e-5) false with an off-diagonal 1e-6")
	}
}

func TestMulOrder(t *testing.T) {
	a := NewTransformer(1, 2, 0, 0, 1, 0, 0, 0, 1)
	b := NewTransformer(1, 0, 0, 3, 1, 0, 0, 0, 1)
	ab := a.Mul(b)
	want := NewTransformer(7, 2, 0, 3, 1, 0, 0, 0, 1)
	if Distance(ab, want) != 0 {
		t.Errorf("a*b = %v, want %v", ab, want)
	}
	ba := b.Mul(a)
	if Distance(ab, ba) == 0 {
		t.Error("a*b and b*a agree for non-commuting matrices")
	}
}

func TestApply(t *testing.T) {
	m := NewTransformer(1, 2, 3, 4, 5, 6, 7, 8, 9)
	got := m.Apply(NewColor(1, 0, -1))
	want := [3]float64{-2, -2, -2}
	if got.N != want {
		t.Errorf("Apply = %v, want %v", got.N, want)
	}

	// aliasing the output with the input must not corrupt the result
	v := NewColor(1, 0, -1)
	dcsMAT3eval(&v, &m, &v)
	if v.N != want {
		t.Errorf("aliased eval = %v, want %v", v.N, want)
	}
}

func TestDet(t *testing.T) {
	tests := []struct {
		m    Transformer
		want float64
	}{
		{Identity(), 1},
		{NewTransformer(2, 0, 0, 0, 3, 0, 0, 0, 4), 24},
		{NewTransformer(1, 2, 3, 4, 5, 6, 7, 8, 9), 0},
		{NewTransformer(0, 1, 0, 1, 0, 0, 0, 0, 1), -1},
	}
	for _, tt := range tests {
		if got := tt.m.Det(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Det(%v) = %g, want %g", tt.m, got, tt.want)
		}
	}
}

func TestInverse(t *testing.T) {
	// zero leading pivot, needs a row swap
	m := NewTransformer(
		0, 2, 1,
		1, 1, 0,
		3, 0, 1,
	)
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !m.Mul(inv).IsIdentity(1e-12) {
		t.Errorf("m * m^-1 = %v", m.Mul(inv))
	}
	if !inv.Mul(m).IsIdentity(1e-12) {
		t.Errorf("m^-1 * m = %v", inv.Mul(m))
	}
}

func TestInverseColorMatrices(t *testing.T) {
	inv, err := LinearRGBToXYZ().Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if d := Distance(inv, XYZToLinearRGB()); d > 1e-6 {
		t.Errorf("inverse of lRGB->XYZ is %g away from XYZ->lRGB", d)
	}
}

func TestInverseSingular(t *testing.T) {
	tests := []Transformer{
		{},
		NewTransformer(1, 2, 3, 4, 5, 6, 7, 8, 9),
		NewTransformer(1e-3, 0, 0, 0, 1e-3, 0, 0, 0, 1),
	}
	for _, m := range tests {
		_, err := m.Inverse()
		if !errors.Is(err, ErrNumericDegeneracy) {
			t.Errorf("Inverse(%v): err = %v, want ErrNumericDegeneracy", m, err)
		}
		var ne *NumericDegeneracyError
		if !errors.As(err, &ne) {
			t.Fatalf("Inverse(%v): err %T is not a *NumericDegeneracyError", m, err)
		}
		if math.Abs(ne.Det-m.Det()) > 1e-15 {
			t.Errorf("reported det %g, want %g", ne.Det, m.Det())
		}
	}
}

func TestInverseIllConditioned(t *testing.T) {
	// determinant is 1 but the condition number is about 1e14
	m := NewTransformer(
		1, 1e7, 0,
		0, 1, 0,
		0, 0, 1,
	)
	_, err := m.Inverse()
	var ne *NumericDegeneracyError
	if !errors.As(err, &ne) {
		t.Fatalf("err = %v, want *NumericDegeneracyError", err)
	}
	if math.IsInf(ne.Cond, 0) || ne.Cond < MATRIX_COND_LIMIT {
		t.Errorf("reported cond %g, want the measured value above %g", ne.Cond, MATRIX_COND_LIMIT)
	}
}

func TestInverseScaleInvariant(t *testing.T) {
	m := NewTransformer(
		0, 2, 1,
		1, 1, 0,
		3, 0, 1,
	)
	for _, k := range []float64{1e-3, 1e-6, 1e4} {
		var s Transformer
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s.V[i].N[j] = k * m.V[i].N[j]
			}
		}
		inv, err := s.Inverse()
		if err != nil {
			t.Errorf("Inverse of m scaled by %g: %v", k, err)
			continue
		}
		if !s.Mul(inv).IsIdentity(1e-9) {
			t.Errorf("scaled by %g: s * s^-1 = %v", k, s.Mul(inv))
		}
	}
}

func TestSolve(t *testing.T) {
	m := NewTransformer(
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	)
	x, err := m.Solve(NewColor(8, -11, -3))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := [3]float64{2, 3, -1}
	for i := range want {
		if math.Abs(x.N[i]-want[i]) > 1e-12 {
			t.Errorf("x[%d] = %g, want %g", i, x.N[i], want[i])
		}
	}

	if _, err := (Transformer{}).Solve(NewColor(1, 1, 1)); !errors.Is(err, ErrNumericDegeneracy) {
		t.Errorf("singular Solve: err = %v", err)
	}
}

func TestDistance(t *testing.T) {
	a := Identity()
	b := NewTransformer(1, 0, 0, 0, 1, 0, 3, 4, 1)
	if d := Distance(a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance = %g, want 5", d)
	}
}
