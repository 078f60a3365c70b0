package godcs

import (
	"errors"
	"math"
	"testing"
)

// Stationary matrix of the default model, 350..800 nm at 10 samples per nm.
var stationaryRef = NewTransformer(
	16.5067415263, 21.5779366241, 11.9810545175,
	6.9298748022, 42.5927604887, 2.4102193233,
	0.0000775554, 1.1739315952, 65.5365978287,
)

func TestQuadraturePoints(t *testing.T) {
	tests := []struct {
		q    Quadrature
		want int
	}{
		{DefaultQuadrature(), 4501},
		{Quadrature{From: 380, To: 780, PerNM: 100}, 40001},
		{Quadrature{From: 500, To: 500, PerNM: 1}, 1},
		{Quadrature{From: 500, To: 400, PerNM: 1}, 0},
		{Quadrature{From: 400, To: 500, PerNM: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.q.Points(); got != tt.want {
			t.Errorf("%+v.Points() = %d, want %d", tt.q, got, tt.want)
		}
	}
}

func TestIntegrateConstant(t *testing.T) {
	one := func(float64) Color { return NewColor(1, 1, 1) }
	q := Quadrature{From: 0, To: 10, PerNM: 4}
	m := q.Integrate(one, one)
	// 41 samples of weight 1/4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m.V[i].N[j]-10.25) > 1e-12 {
				t.Errorf("M[%d][%d] = %g, want 10.25", i, j, m.V[i].N[j])
			}
		}
	}
}

func TestIntegrateRowColumnOrder(t *testing.T) {
	f := func(float64) Color { return NewColor(1, 2, 3) }
	g := func(float64) Color { return NewColor(10, 20, 30) }
	m := Quadrature{From: 0, To: 0, PerNM: 1}.Integrate(f, g)
	if m.V[0].N[2] != 30 || m.V[2].N[0] != 30 || m.V[1].N[2] != 60 {
		t.Errorf("M = %v, want M[i][j] = f_i * g_j", m)
	}
}

func TestStationaryIntegrationMatrix(t *testing.T) {
	m, err := IntegrationMatrix(0)
	if err != nil {
		t.Fatal(err)
	}
	if d := Distance(m, stationaryRef); d > 1e-5 {
		t.Errorf("stationary matrix is %g from the reference:\n%v", d, m)
	}
	if dcsMAT3nearlySingular(&m) {
		t.Errorf("stationary det = %g", m.Det())
	}
}

func TestIntegrationMatrixDomain(t *testing.T) {
	for _, v := range []float64{1, -1, math.NaN()} {
		if _, err := IntegrationMatrix(v); !errors.Is(err, ErrDomain) {
			t.Errorf("IntegrationMatrix(%g): err = %v, want ErrDomain", v, err)
		}
	}
}

func TestIntegrationMatrixBadQuadrature(t *testing.T) {
	tests := []Quadrature{
		{From: 350, To: 800, PerNM: 0},
		{From: 800, To: 350, PerNM: 10},
	}
	for _, q := range tests {
		m := DefaultModel()
		m.Quad = q
		_, err := m.IntegrationMatrix(0)
		var ce *ConfigError
		if !errors.As(err, &ce) || ce.Field != "quadrature" {
			t.Errorf("%+v: err = %v, want quadrature ConfigError", q, err)
		}
		if ErrorCode(err) != dcsERROR_RANGE {
			t.Errorf("%+v: code = %d", q, ErrorCode(err))
		}
	}
}
