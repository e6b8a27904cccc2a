package rangeproof_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/aalps-labs/fde/algebra"
	"github.com/aalps-labs/fde/kzg"
	"github.com/aalps-labs/fde/rangeproof"
)

func testPowers(c *qt.C, n uint64) *kzg.Powers {
	tau, err := algebra.RandomScalar()
	c.Assert(err, qt.IsNil)
	return kzg.UnsafeSetup(tau, 4*int(n))
}

func TestProveVerifyInRange(t *testing.T) {
	c := qt.New(t)
	const n = 8
	powers := testPowers(c, n)

	for _, z := range []uint64{0, 1, 100, 255} {
		z := z
		c.Run(qtName(z), func(c *qt.C) {
			proof, err := rangeproof.Prove(algebra.ScalarFromUint64(z), n, powers)
			c.Assert(err, qt.IsNil)
			ok := rangeproof.Verify(proof, n, powers)
			c.Assert(ok, qt.IsTrue)
		})
	}
}

func TestProveRejectsOutOfRange(t *testing.T) {
	c := qt.New(t)
	const n = 8
	powers := testPowers(c, n)

	for _, z := range []uint64{256, 300} {
		z := z
		c.Run(qtName(z), func(c *qt.C) {
			_, err := rangeproof.Prove(algebra.ScalarFromUint64(z), n, powers)
			c.Assert(err, qt.ErrorIs, rangeproof.ErrInvalidWitness)
		})
	}
}

func TestVerifyRejectsMismatchedN(t *testing.T) {
	c := qt.New(t)
	const n = 8
	const wrongN = 16
	powers := testPowers(c, wrongN)

	proof, err := rangeproof.Prove(algebra.ScalarFromUint64(100), n, powers)
	c.Assert(err, qt.IsNil)

	ok := rangeproof.Verify(proof, wrongN, powers)
	c.Assert(ok, qt.IsFalse)
}

func TestVerifyRejectsTamperedEvaluation(t *testing.T) {
	c := qt.New(t)
	const n = 8
	powers := testPowers(c, n)

	proof, err := rangeproof.Prove(algebra.ScalarFromUint64(100), n, powers)
	c.Assert(err, qt.IsNil)

	proof.Evaluations.GEval = algebra.ScalarFromUint64(999)
	ok := rangeproof.Verify(proof, n, powers)
	c.Assert(ok, qt.IsFalse)
}

func TestVerifyRejectsShortSRS(t *testing.T) {
	c := qt.New(t)
	const n = 8
	powers := testPowers(c, n)

	proof, err := rangeproof.Prove(algebra.ScalarFromUint64(100), n, powers)
	c.Assert(err, qt.IsNil)

	short := kzg.UnsafeSetup(algebra.ScalarFromUint64(1), 4)
	ok := rangeproof.Verify(proof, n, short)
	c.Assert(ok, qt.IsFalse)
}

func qtName(z uint64) string {
	switch z {
	case 0:
		return "zero"
	case 1:
		return "one"
	default:
		return "z"
	}
}
