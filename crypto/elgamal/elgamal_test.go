package elgamal_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/aalps-labs/fde/algebra"
	"github.com/aalps-labs/fde/crypto/elgamal"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := qt.New(t)

	pk, sk, err := elgamal.GenerateKey()
	c.Assert(err, qt.IsNil)

	m := algebra.ScalarFromUint64(12342526)
	cipher, _, err := elgamal.Encrypt(m, pk)
	c.Assert(err, qt.IsNil)

	got, err := elgamal.Decrypt(cipher, sk)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, uint32(12342526))
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	c := qt.New(t)

	pk, _, err := elgamal.GenerateKey()
	c.Assert(err, qt.IsNil)
	_, wrongSk, err := elgamal.GenerateKey()
	c.Assert(err, qt.IsNil)

	m := algebra.ScalarFromUint64(42)
	cipher, _, err := elgamal.Encrypt(m, pk)
	c.Assert(err, qt.IsNil)

	got, err := elgamal.Decrypt(cipher, wrongSk)
	if err == nil {
		c.Assert(got, qt.Not(qt.Equals), uint32(42))
	}
}

func TestHomomorphicAddition(t *testing.T) {
	c := qt.New(t)

	pk, sk, err := elgamal.GenerateKey()
	c.Assert(err, qt.IsNil)

	ms := []uint64{1, 10, 100}
	rs := []uint64{2, 20, 200}

	var combined elgamal.Cipher
	var total uint64
	for i, m := range ms {
		r := algebra.ScalarFromUint64(rs[i])
		cipher := elgamal.EncryptWithRandomness(algebra.ScalarFromUint64(m), pk, r)
		if i == 0 {
			combined = cipher
		} else {
			combined = combined.Add(cipher)
		}
		total += m
	}

	got, err := elgamal.Decrypt(combined, sk)
	c.Assert(err, qt.IsNil)
	c.Assert(uint64(got), qt.Equals, total)
}

func TestWireRoundTrip(t *testing.T) {
	c := qt.New(t)

	pk, _, err := elgamal.GenerateKey()
	c.Assert(err, qt.IsNil)
	m := algebra.ScalarFromUint64(7)
	cipher, _, err := elgamal.Encrypt(m, pk)
	c.Assert(err, qt.IsNil)

	b := cipher.Bytes()
	got, err := elgamal.CipherFromBytes(b)
	c.Assert(err, qt.IsNil)
	c.Assert(got.C0.Equal(&cipher.C0), qt.IsTrue)
	c.Assert(got.C1.Equal(&cipher.C1), qt.IsTrue)
}

func TestDecryptExceedsBoundFails(t *testing.T) {
	c := qt.New(t)

	pk, sk, err := elgamal.GenerateKey()
	c.Assert(err, qt.IsNil)

	// A uniformly random point is vanishingly unlikely to equal m*g for
	// any m in [0, MaxPlaintext], so decryption must fail with
	// ErrDecryptExceeded rather than loop forever.
	randomScalar, err := algebra.RandomScalar()
	c.Assert(err, qt.IsNil)
	bogus := elgamal.Cipher{
		C0: algebra.ScalarBaseMulG1(randomScalar),
		C1: algebra.ScalarMulG1(algebra.G1Gen(), randomScalar),
	}
	_, err = elgamal.Decrypt(bogus, sk)
	c.Assert(err, qt.ErrorIs, elgamal.ErrDecryptExceeded)
}
