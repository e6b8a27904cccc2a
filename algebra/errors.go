// Package algebra is the field/group façade: scalars, G1/G2 points,
// pairing, evaluation domains and dense polynomials over the BLS12-381
// scalar field. Every other package treats it as a black box.
package algebra

import "github.com/cockroachdb/errors"

// ErrBadDomainSize is returned when a requested evaluation domain size
// is zero, not a power of two, or larger than the field supports.
var ErrBadDomainSize = errors.New("algebra: bad domain size")

// ErrDegreeTooLarge reports a polynomial degree above a supported bound.
// No function in this package returns it; the KZG engine reports an
// oversized polynomial with its own kzg.ErrDegreeTooLarge.
var ErrDegreeTooLarge = errors.New("algebra: degree too large")

// errDivisionByZeroPolynomial is returned by DivRem when the divisor
// is the zero polynomial; this never happens for the fixed divisors
// (X - root) used internally by this package.
var errDivisionByZeroPolynomial = errors.New("algebra: division by zero polynomial")
