package godcs

// Vector component indices. A Color is (X,Y,Z), linear RGB or gamma
// encoded RGB depending on where it came from; the index constants are
// shared by all three.
const (
	VX = 0
	VY = 1
	VZ = 2
)

// Color is a 3-component real vector. Nothing in the type says which
// space it is in, callers track that.
type Color struct {
	N [3]float64
}

// Transformer is a 3x3 linear map between two Color spaces, stored by rows.
type Transformer struct {
	V [3]Color
}

// NewColor builds a Color from its three components.
func NewColor(x, y, z float64) Color {
	var c Color
	dcsVEC3init(&c, x, y, z)
	return c
}

// NewTransformer builds a Transformer from nine values given row by row.
func NewTransformer(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Transformer {
	var t Transformer
	dcsVEC3init(&t.V[0], m00, m01, m02)
	dcsVEC3init(&t.V[1], m10, m11, m12)
	dcsVEC3init(&t.V[2], m20, m21, m22)
	return t
}

// Lobe is one asymmetric gaussian term A*exp(-(x-M)^2 / 2S^2) where S is S1
// left of the mean and S2 from the mean on.
type Lobe struct {
	A  float64 // amplitude
	M  float64 // mean
	S1 float64 // width left of M
	S2 float64 // width right of M
}

// Quadrature describes a fixed step rectangle rule. Samples are taken at
// k/PerNM nanometres for every integer k in [From*PerNM, To*PerNM].
type Quadrature struct {
	From  int // first wavelength, nm
	To    int // last wavelength, nm (inclusive)
	PerNM int // samples per nanometre
}

// Model bundles everything the integration needs: the three display
// emitters (red, green, blue order) and the quadrature rule.
type Model struct {
	Emitters [3]Lobe
	Quad     Quadrature
}

// SpectralFunc maps a wavelength in nanometres to a Color.
type SpectralFunc func(lam float64) Color

// Error codes carried by every error the package returns.
const (
	dcsERROR_UNDEFINED = 0 // Undefined error
	dcsERROR_RANGE     = 2 // Value out of its valid domain
	dcsERROR_INTERNAL  = 3 // Internal error
	dcsERROR_DIMENSION = 4 // Buffer size does not match its geometry
	dcsERROR_NUMERIC   = 5 // Singular or ill-conditioned matrix
)

// Emitter defaults: three narrow bands approximating display subpixels.
const (
	RedPeakNM      = 650.0
	GreenPeakNM    = 550.0
	BluePeakNM     = 450.0
	EmitterWidthNM = 20.0
)

// Default integration range and density.
const (
	DefaultFromNM = 350
	DefaultToNM   = 800
	DefaultPerNM  = 10
)

// DefaultModel returns the standard emitter set with the default
// quadrature rule.
func DefaultModel() Model {
	return Model{
		Emitters: DefaultEmitters(),
		Quad:     DefaultQuadrature(),
	}
}
