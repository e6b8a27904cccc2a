// Package elgamal implements Exponential ElGamal encryption over G1:
// an additively homomorphic public-key scheme in which the plaintext
// sits in the exponent, trading cheap homomorphic addition for a
// bounded discrete-log recovery on decryption.
package elgamal

import (
	"github.com/cockroachdb/errors"

	"github.com/aalps-labs/fde/algebra"
)

// MaxPlaintext is the inclusive upper bound on recoverable plaintexts:
// decryption never searches beyond this bound.
const MaxPlaintext = 1<<32 - 1

// Cipher is an Exponential ElGamal ciphertext (c0, c1) in G1^2.
type Cipher struct {
	C0, C1 algebra.G1Affine
}

// GenerateKey samples a secret key sk uniformly and derives pk = sk*g.
func GenerateKey() (pk algebra.G1Affine, sk algebra.Scalar, err error) {
	sk, err = algebra.RandomScalar()
	if err != nil {
		return algebra.G1Affine{}, algebra.Scalar{}, errors.Wrap(err, "sampling elgamal private key")
	}
	pk = algebra.ScalarBaseMulG1(sk)
	return pk, sk, nil
}

// Encrypt samples a fresh nonce r and returns EncryptWithRandomness(m,
// pk, r) along with the sampled r, so callers that need to tally
// nonces (e.g. when aggregating ciphertexts) can do so.
func Encrypt(m algebra.Scalar, pk algebra.G1Affine) (Cipher, algebra.Scalar, error) {
	r, err := algebra.RandomScalar()
	if err != nil {
		return Cipher{}, algebra.Scalar{}, errors.Wrap(err, "sampling elgamal nonce")
	}
	return EncryptWithRandomness(m, pk, r), r, nil
}

// EncryptWithRandomness computes c0 = r*g, c1 = m*g + r*pk for the
// given nonce r. Exposed separately from Encrypt so tests and the
// homomorphism law can fix r.
func EncryptWithRandomness(m algebra.Scalar, pk algebra.G1Affine, r algebra.Scalar) Cipher {
	c0 := algebra.ScalarBaseMulG1(r)
	mG := algebra.ScalarBaseMulG1(m)
	rPk := algebra.ScalarMulG1(pk, r)
	c1 := algebra.AddG1(mG, rPk)
	return Cipher{C0: c0, C1: c1}
}

// DecryptToPoint returns c1 - sk*c0 = m*g, without recovering the
// integer m.
func DecryptToPoint(c Cipher, sk algebra.Scalar) algebra.G1Affine {
	skC0 := algebra.ScalarMulG1(c.C0, sk)
	return algebra.SubG1(c.C1, skC0)
}

// Decrypt recovers the plaintext integer via a bounded baby-step/
// giant-step discrete-log search over [0, MaxPlaintext]. It returns
// ErrDecryptExceeded if no such plaintext exists in range; this is
// the "treat equality to the bound as failure" sentinel the exponent
// encoding requires.
func Decrypt(c Cipher, sk algebra.Scalar) (uint32, error) {
	point := DecryptToPoint(c, sk)
	return babyStepGiantStep(point, MaxPlaintext)
}

// Add returns the component-wise sum of two ciphertexts. Exponential
// ElGamal's additive homomorphism guarantees
// DecryptToPoint(a.Add(b), sk) = (m_a+m_b)*g, with the nonces also
// adding.
func (c Cipher) Add(other Cipher) Cipher {
	return Cipher{
		C0: algebra.AddG1(c.C0, other.C0),
		C1: algebra.AddG1(c.C1, other.C1),
	}
}
