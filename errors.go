package tabstat

import (
	"errors"
	"math"
)

var (
	// ErrEmptySeries is returned when no numeric values survive extraction.
	ErrEmptySeries = errors.New("empty series")

	// ErrDivisionByZero is returned when a derived quantity divides by a
	// zero mean, standard deviation, scale or degree of freedom.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInsufficientData is returned when an operation needs more
	// observations than the series holds.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidSelection is returned for an unknown column, family, kind
	// or analysis view.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidParameter is returned for out-of-range operation
	// parameters such as a non-positive window.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUndefined is returned when a result would not be a finite number.
	ErrUndefined = errors.New("undefined result")
)

// Round rounds x to the given number of decimal places, half away from zero.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	if !IsFinite(x * p) {
		return x
	}
	r := math.Round(x*p) / p
	if r == 0 {
		// normalize -0
		return 0
	}
	return r
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
