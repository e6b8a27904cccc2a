// Package rangeproof implements a succinct KZG-based argument that a
// secret scalar z lies in [0, 2^n), via a bit-decomposition gadget
// whose three algebraic constraints are combined into a single
// vanishing polynomial and opened with two KZG proofs, one of them
// aggregated.
package rangeproof

import "github.com/cockroachdb/errors"

// ErrInvalidWitness is returned by Prove when z is not in [0, 2^n):
// the quotient polynomial fails to divide exactly, which is exactly
// the structural signal that the witness is out of range.
var ErrInvalidWitness = errors.New("rangeproof: witness out of range")
