package algebra

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1CompressedSize and G2CompressedSize are the byte lengths of the
// compressed-affine encoding used throughout this module's wire
// formats.
const (
	G1CompressedSize = bls12381.SizeOfG1AffineCompressed
	G2CompressedSize = bls12381.SizeOfG2AffineCompressed
)

// G1Affine and G1Jac are points of the first pairing group, in affine
// and Jacobian coordinates respectively. Affine is canonical for
// serialization and hashing; Jacobian is used internally for sums.
type (
	G1Affine = bls12381.G1Affine
	G1Jac    = bls12381.G1Jac
	G2Affine = bls12381.G2Affine
	G2Jac    = bls12381.G2Jac
)

// G1Gen returns the designated generator g of G1.
func G1Gen() G1Affine {
	var g G1Affine
	g.ScalarMultiplicationBase(big.NewInt(1))
	return g
}

// G2Gen returns the designated generator h of G2.
func G2Gen() G2Affine {
	var h G2Affine
	h.ScalarMultiplicationBase(big.NewInt(1))
	return h
}

// ScalarMulG1 computes s*p.
func ScalarMulG1(p G1Affine, s Scalar) G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var out G1Affine
	out.ScalarMultiplication(&p, &sBig)
	return out
}

// ScalarBaseMulG1 computes s*g.
func ScalarBaseMulG1(s Scalar) G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var out G1Affine
	out.ScalarMultiplicationBase(&sBig)
	return out
}

// ScalarMulG2 computes s*p.
func ScalarMulG2(p G2Affine, s Scalar) G2Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var out G2Affine
	out.ScalarMultiplication(&p, &sBig)
	return out
}

// AddG1 computes a+b in G1.
func AddG1(a, b G1Affine) G1Affine {
	var out G1Affine
	out.Add(&a, &b)
	return out
}

// SubG1 computes a-b in G1.
func SubG1(a, b G1Affine) G1Affine {
	var bNeg G1Affine
	bNeg.Neg(&b)
	var out G1Affine
	out.Add(&a, &bNeg)
	return out
}

// SubG2 computes a-b in G2.
func SubG2(a, b G2Affine) G2Affine {
	var bNeg G2Affine
	bNeg.Neg(&b)
	var out G2Affine
	out.Add(&a, &bNeg)
	return out
}

// PairingCheck returns true iff the product of e(g1[i], g2[i]) over all
// i is the identity in G_t, i.e. it checks a multi-pairing equation.
func PairingCheck(g1 []G1Affine, g2 []G2Affine) (bool, error) {
	return bls12381.PairingCheck(g1, g2)
}

// MultiExpG1 computes the multi-scalar multiplication sum(scalars[i]*points[i]).
func MultiExpG1(points []G1Affine, scalars []Scalar) (G1Affine, error) {
	var out G1Affine
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1Affine{}, err
	}
	return out, nil
}
