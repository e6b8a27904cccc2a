package algebra

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the BLS12-381 scalar field F_r.
type Scalar = fr.Element

// RandomScalar samples a uniformly random scalar using the process's
// cryptographic randomness source.
func RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := s.SetRandom(); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// ScalarFromUint64 converts a small unsigned integer into a scalar.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

// ScalarFromBigInt reduces v modulo the field order.
func ScalarFromBigInt(v *big.Int) Scalar {
	var s Scalar
	s.SetBigInt(v)
	return s
}

// ScalarFromBytes interprets buf as a big-endian integer and reduces it
// modulo the field order (a wide reduction, per the Fiat-Shamir scalar
// extraction scheme).
func ScalarFromBytes(buf []byte) Scalar {
	var s Scalar
	s.SetBytes(buf)
	return s
}

// One returns the multiplicative identity.
func One() Scalar {
	var s Scalar
	s.SetOne()
	return s
}

// Zero returns the additive identity.
func Zero() Scalar {
	return Scalar{}
}

// Pow raises base to the given non-negative exponent.
func Pow(base Scalar, exp uint64) Scalar {
	var e big.Int
	e.SetUint64(exp)
	var out Scalar
	out.Exp(base, &e)
	return out
}
