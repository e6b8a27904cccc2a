package kzg

import (
	"github.com/aalps-labs/fde/algebra"
)

// Commit computes [p]_1 = sum_i p_i * tau^i * g via a multi-scalar
// multiplication against the SRS powers.
func Commit(p *Powers, poly algebra.Polynomial) (algebra.G1Affine, error) {
	if poly.Degree() > p.MaxDegree() {
		return algebra.G1Affine{}, ErrDegreeTooLarge
	}
	scalars := make([]algebra.Scalar, len(poly))
	copy(scalars, poly)
	if len(scalars) == 0 {
		return algebra.G1Affine{}, nil
	}
	return algebra.MultiExpG1(p.G1[:len(scalars)], scalars)
}

// Witness returns the quotient polynomial (p(X) - p(u)) / (X - u). The
// division is always exact: p(X)-p(u) has u as a root by construction.
func Witness(poly algebra.Polynomial, u algebra.Scalar) algebra.Polynomial {
	pu := poly.Evaluate(u)
	shifted := poly.AddConstant(negate(pu))
	var negU algebra.Scalar
	negU.Neg(&u)
	q, _, err := algebra.DivRem(shifted, algebra.Polynomial{negU, algebra.One()})
	if err != nil {
		panic(err) // divisor (X-u) is never zero
	}
	return q
}

// AggregateWitness returns the witness polynomial for the random
// linear combination sum(gamma^i * polys[i]) opened at u.
func AggregateWitness(polys []algebra.Polynomial, u, gamma algebra.Scalar) algebra.Polynomial {
	var combined algebra.Polynomial
	pow := algebra.One()
	for _, poly := range polys {
		combined = algebra.Add(combined, poly.ScaleBy(pow))
		pow.Mul(&pow, &gamma)
	}
	return Witness(combined, u)
}

// VerifyScalar checks the KZG opening equation
// e(pi, tau*h - u*h) == e([P]_1 - v*g, h).
func VerifyScalar(p *Powers, pi, commitment algebra.G1Affine, u, v algebra.Scalar) bool {
	uH := algebra.ScalarMulG2(p.G2Gen, u)
	tauMinusUH := algebra.SubG2(p.G2Tau, uH)

	vG := algebra.ScalarBaseMulG1(v)
	vgMinusCommitment := algebra.SubG1(vG, commitment)

	ok, err := algebra.PairingCheck(
		[]algebra.G1Affine{pi, vgMinusCommitment},
		[]algebra.G2Affine{tauMinusUH, p.G2Gen},
	)
	if err != nil {
		return false
	}
	return ok
}

func negate(s algebra.Scalar) algebra.Scalar {
	var out algebra.Scalar
	out.Neg(&s)
	return out
}
