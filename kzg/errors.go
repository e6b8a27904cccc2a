// Package kzg implements the polynomial commitment engine: commit,
// single-point witnesses, aggregated witnesses, and pairing-based
// verification, over the BLS12-381 curve.
package kzg

import "github.com/cockroachdb/errors"

// ErrDegreeTooLarge is returned when a polynomial's degree exceeds the
// SRS's committed power count.
var ErrDegreeTooLarge = errors.New("kzg: degree too large for srs")

// ErrSRSTooShort is returned when an imported SRS does not carry
// enough G1 powers for the requested range-proof parameter n.
var ErrSRSTooShort = errors.New("kzg: srs too short")
