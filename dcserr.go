package godcs

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ---------------------------------------------------------------------------------------------------------

// The default logger discards everything, the same as a handler that does nothing.
var dcsLogger atomic.Pointer[slog.Logger]

func init() {
	dcsLogger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs the logger used for signalled errors and debug traces.
// A nil logger restores the discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	dcsLogger.Store(l)
}

// Logger returns the logger currently installed.
func Logger() *slog.Logger {
	return dcsLogger.Load()
}

// Sentinels matched by errors.Is on every typed error below.
var (
	ErrDomain            = errors.New("godcs: velocity outside (-1, 1)")
	ErrDimension         = errors.New("godcs: pixel buffer does not match its dimensions")
	ErrNumericDegeneracy = errors.New("godcs: singular or ill-conditioned matrix")
)

// coded is implemented by every error this package signals.
type coded interface {
	error
	Code() int
}

// DomainError reports a velocity outside the open interval (-1, 1), where
// the Doppler factor is infinite or imaginary.
type DomainError struct {
	Velocity float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("godcs: velocity %g outside (-1, 1)", e.Velocity)
}
func (e *DomainError) Code() int     { return dcsERROR_RANGE }
func (e *DomainError) Unwrap() error { return ErrDomain }

// DimensionError reports a pixel buffer whose length is not a multiple of 4
// or does not equal 4*Width*Height.
type DimensionError struct {
	Len    int
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("godcs: buffer of %d bytes does not hold %dx%d RGBA pixels", e.Len, e.Width, e.Height)
}
func (e *DimensionError) Code() int     { return dcsERROR_DIMENSION }
func (e *DimensionError) Unwrap() error { return ErrDimension }

// NumericDegeneracyError reports a matrix that cannot be inverted safely.
type NumericDegeneracyError struct {
	Det  float64 // determinant
	Cond float64 // infinity-norm condition number, +Inf when the inverse failed outright
}

func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("godcs: degenerate matrix (det=%g, cond=%g)", e.Det, e.Cond)
}
func (e *NumericDegeneracyError) Code() int     { return dcsERROR_NUMERIC }
func (e *NumericDegeneracyError) Unwrap() error { return ErrNumericDegeneracy }

// ConfigError reports a Model or Quadrature that cannot be evaluated.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("godcs: invalid %s: %s", e.Field, e.Msg)
}
func (e *ConfigError) Code() int { return dcsERROR_RANGE }

// ErrorCode extracts the numeric code of an error signalled by this package.
// Errors from elsewhere report dcsERROR_UNDEFINED.
func ErrorCode(err error) int {
	var c coded
	if errors.As(err, &c) {
		return c.Code()
	}
	return dcsERROR_UNDEFINED
}

// dcsSignalError logs the error with its code and hands it back, so call
// sites can write `return dcsSignalError(...)`.
func dcsSignalError(err coded) error {
	dcsLogger.Load().Error("GODCS error", "code", err.Code(), "err", err.Error())
	return err
}
