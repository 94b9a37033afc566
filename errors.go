// Package samplableset: sentinel errors for construction and mutation
// failures. Every structural failure is surfaced to the caller as one of
// these sentinels; none is retried or silently recovered (see doc.go).
package samplableset

import (
	"errors"
	"fmt"
)

// Sentinel errors. Compare with errors.Is, never by string.
var (
	// ErrInvalidRange is returned by New/FromPairs when wMin/wMax are
	// non-positive, non-finite, or wMax < wMin.
	ErrInvalidRange = errors.New("samplableset: invalid weight range")

	// ErrOutOfRange is returned by Insert/SetWeight when w falls outside
	// [wMin, wMax].
	ErrOutOfRange = errors.New("samplableset: weight out of range")

	// ErrNotFound is returned by GetWeight/Erase/SetWeightStrict when the
	// element is absent.
	ErrNotFound = errors.New("samplableset: element not found")

	// ErrEmpty is returned by Sample/SampleN when no element is available
	// to draw.
	ErrEmpty = errors.New("samplableset: set is empty")

	// ErrIteratorExhausted is returned by Iterator.Current once the
	// cursor has passed the last entry or the parent Set was mutated.
	ErrIteratorExhausted = errors.New("samplableset: iterator exhausted")
)

// invalidRangef wraps ErrInvalidRange with the offending bounds.
func invalidRangef(wMin, wMax float64) error {
	return fmt.Errorf("%w: wMin=%v wMax=%v", ErrInvalidRange, wMin, wMax)
}

// outOfRangef wraps ErrOutOfRange with the offending weight and bounds.
func outOfRangef(w, wMin, wMax float64) error {
	return fmt.Errorf("%w: w=%v not in [%v, %v]", ErrOutOfRange, w, wMin, wMax)
}
