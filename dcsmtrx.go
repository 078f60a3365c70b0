package godcs

import (
	"math"
)

// Initiate a vector
func dcsVEC3init(r *Color, x float64, y float64, z float64) {
	r.N[VX] = x
	r.N[VY] = y
	r.N[VZ] = z
}

// Vector subtraction
func dcsVEC3minus(r *Color, a *Color, b *Color) {
	r.N[VX] = a.N[VX] - b.N[VX]
	r.N[VY] = a.N[VY] - b.N[VY]
	r.N[VZ] = a.N[VZ] - b.N[VZ]
}

// Euclidean length
func dcsVEC3length(a *Color) float64 {
	return math.Sqrt(a.N[VX]*a.N[VX] +
		a.N[VY]*a.N[VY] +
		a.N[VZ]*a.N[VZ])
}

// Euclidean distance
func dcsVEC3distance(a, b *Color) float64 {
	var d Color
	dcsVEC3minus(&d, a, b)
	return dcsVEC3length(&d)
}

// 3x3 Identity
func dcsMAT3identity(a *Transformer) {
	dcsVEC3init(&a.V[0], 1.0, 0.0, 0.0)
	dcsVEC3init(&a.V[1], 0.0, 1.0, 0.0)
	dcsVEC3init(&a.V[2], 0.0, 0.0, 1.0)
}

func dcsMAT3isIdentity(a *Transformer, tol float64) bool {
	var Identity Transformer

	dcsMAT3identity(&Identity)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a.V[i].N[j]-Identity.V[i].N[j]) > tol {
				return false
			}
		}
	}
	return true
}

// Multiply two matrices, r = a * b
func dcsMAT3per(a, b *Transformer) Transformer {
	rowCol := func(i, j int) float64 {
		return a.V[i].N[0]*b.V[0].N[j] + a.V[i].N[1]*b.V[1].N[j] + a.V[i].N[2]*b.V[2].N[j]
	}

	return Transformer{
		V: [3]Color{
			{N: [3]float64{rowCol(0, 0), rowCol(0, 1), rowCol(0, 2)}},
			{N: [3]float64{rowCol(1, 0), rowCol(1, 1), rowCol(1, 2)}},
			{N: [3]float64{rowCol(2, 0), rowCol(2, 1), rowCol(2, 2)}},
		},
	}
}

// Determinant by cofactor expansion along the first row. Only used for
// reporting and the singularity gate, never to build an inverse.
func dcsMAT3det(a *Transformer) float64 {
	c0 := a.V[1].N[1]*a.V[2].N[2] - a.V[1].N[2]*a.V[2].N[1]
	c1 := -a.V[1].N[0]*a.V[2].N[2] + a.V[1].N[2]*a.V[2].N[0]
	c2 := a.V[1].N[0]*a.V[2].N[1] - a.V[1].N[1]*a.V[2].N[0]

	return a.V[0].N[0]*c0 + a.V[0].N[1]*c1 + a.V[0].N[2]*c2
}

// Maximum absolute row sum
func dcsMAT3normInf(a *Transformer) float64 {
	var n float64
	for i := 0; i < 3; i++ {
		s := math.Abs(a.V[i].N[0]) + math.Abs(a.V[i].N[1]) + math.Abs(a.V[i].N[2])
		if s > n {
			n = s
		}
	}
	return n
}

// Frobenius norm of a - b
func dcsMAT3distance(a, b *Transformer) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := a.V[i].N[j] - b.V[i].N[j]
			s += d * d
		}
	}
	return math.Sqrt(s)
}

// dcsMAT3lu factors a into lu (unit lower L below the diagonal, U on and
// above it) with partial pivoting. perm[i] is the source row of row i.
// Returns false when a pivot vanishes.
func dcsMAT3lu(a *Transformer, lu *Transformer, perm *[3]int) bool {
	*lu = *a
	perm[0], perm[1], perm[2] = 0, 1, 2

	for k := 0; k < 3; k++ {
		p := k
		for i := k + 1; i < 3; i++ {
			if math.Abs(lu.V[i].N[k]) > math.Abs(lu.V[p].N[k]) {
				p = i
			}
		}
		if lu.V[p].N[k] == 0 {
			return false
		}
		if p != k {
			lu.V[p], lu.V[k] = lu.V[k], lu.V[p]
			perm[p], perm[k] = perm[k], perm[p]
		}
		for i := k + 1; i < 3; i++ {
			lu.V[i].N[k] /= lu.V[k].N[k]
			for j := k + 1; j < 3; j++ {
				lu.V[i].N[j] -= lu.V[i].N[k] * lu.V[k].N[j]
			}
		}
	}
	return true
}

// Forward and back substitution against an existing factorisation
func dcsMAT3luSolve(x *Color, lu *Transformer, perm *[3]int, b *Color) {
	var y Color
	for i := 0; i < 3; i++ {
		s := b.N[perm[i]]
		for j := 0; j < i; j++ {
			s -= lu.V[i].N[j] * y.N[j]
		}
		y.N[i] = s
	}
	for i := 2; i >= 0; i-- {
		s := y.N[i]
		for j := i + 1; j < 3; j++ {
			s -= lu.V[i].N[j] * x.N[j]
		}
		x.N[i] = s / lu.V[i].N[i]
	}
}

// dcsMAT3inverse inverts a column by column from its LU factorisation.
// Returns false only when a pivot is exactly zero.
func dcsMAT3inverse(a, b *Transformer) bool {
	var lu Transformer
	var perm [3]int

	if !dcsMAT3lu(a, &lu, &perm) {
		return false
	}

	var col Color
	for j := 0; j < 3; j++ {
		var e Color
		e.N[j] = 1
		dcsMAT3luSolve(&col, &lu, &perm, &e)
		for i := 0; i < 3; i++ {
			b.V[i].N[j] = col.N[i]
		}
	}
	return true
}

// dcsMAT3nearlySingular compares |det| against the cube of the infinity
// norm, so uniformly scaling a matrix does not change the verdict.
func dcsMAT3nearlySingular(a *Transformer) bool {
	n := dcsMAT3normInf(a)
	return math.Abs(dcsMAT3det(a)) < MATRIX_DET_TOLERANCE*n*n*n
}

// Solve a system in the form Ax = b
func dcsMAT3solve(x *Color, a *Transformer, b *Color) bool {
	var lu Transformer
	var perm [3]int

	if !dcsMAT3lu(a, &lu, &perm) {
		return false // Singular matrix
	}
	dcsMAT3luSolve(x, &lu, &perm, b)
	return true
}

// Evaluate a vector across a matrix
func dcsMAT3eval(r *Color, a *Transformer, v *Color) {
	x := a.V[0].N[VX]*v.N[VX] + a.V[0].N[VY]*v.N[VY] + a.V[0].N[VZ]*v.N[VZ]
	y := a.V[1].N[VX]*v.N[VX] + a.V[1].N[VY]*v.N[VY] + a.V[1].N[VZ]*v.N[VZ]
	z := a.V[2].N[VX]*v.N[VX] + a.V[2].N[VY]*v.N[VY] + a.V[2].N[VZ]*v.N[VZ]
	dcsVEC3init(r, x, y, z)
}

// Identity returns the 3x3 identity.
func Identity() Transformer {
	var t Transformer
	dcsMAT3identity(&t)
	return t
}

// Mul returns t * o.
func (t Transformer) Mul(o Transformer) Transformer {
	return dcsMAT3per(&t, &o)
}

// Apply returns t * c.
func (t Transformer) Apply(c Color) Color {
	var r Color
	dcsMAT3eval(&r, &t, &c)
	return r
}

// Det returns the determinant of t.
func (t Transformer) Det() float64 {
	return dcsMAT3det(&t)
}

// Inverse returns t^-1 computed with a pivoted LU factorisation. Singular
// and ill-conditioned matrices are rejected with a *NumericDegeneracyError.
func (t Transformer) Inverse() (Transformer, error) {
	var inv Transformer
	det := dcsMAT3det(&t)
	if !dcsMAT3inverse(&t, &inv) {
		return Transformer{}, dcsSignalError(&NumericDegeneracyError{Det: det, Cond: math.Inf(1)})
	}
	cond := dcsMAT3normInf(&t) * dcsMAT3normInf(&inv)
	if dcsMAT3nearlySingular(&t) || math.IsNaN(cond) || cond > MATRIX_COND_LIMIT {
		return Transformer{}, dcsSignalError(&NumericDegeneracyError{Det: det, Cond: cond})
	}
	return inv, nil
}

// Solve returns x such that t*x = b.
func (t Transformer) Solve(b Color) (Color, error) {
	var x Color
	if !dcsMAT3solve(&x, &t, &b) {
		return Color{}, dcsSignalError(&NumericDegeneracyError{Det: dcsMAT3det(&t), Cond: math.Inf(1)})
	}
	return x, nil
}

// IsIdentity reports whether every entry of t is within tol of the identity.
func (t Transformer) IsIdentity(tol float64) bool {
	return dcsMAT3isIdentity(&t, tol)
}

// Distance returns the Frobenius norm of a - b.
func Distance(a, b Transformer) float64 {
	return dcsMAT3distance(&a, &b)
}

// ColorDistance returns the Euclidean distance between two colours.
func ColorDistance(a, b Color) float64 {
	return dcsVEC3distance(&a, &b)
}
