package algebra_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/aalps-labs/fde/algebra"
)

func TestPolynomialArithmetic(t *testing.T) {
	c := qt.New(t)

	a := algebra.NewPolynomial([]algebra.Scalar{
		algebra.ScalarFromUint64(1), algebra.ScalarFromUint64(2),
	}) // 1 + 2X
	b := algebra.NewPolynomial([]algebra.Scalar{
		algebra.ScalarFromUint64(3), algebra.ScalarFromUint64(4),
	}) // 3 + 4X

	c.Run("add", func(c *qt.C) {
		sum := algebra.Add(a, b)
		x := algebra.ScalarFromUint64(5)
		want := algebra.ScalarFromUint64(1 + 2*5 + 3 + 4*5)
		got := sum.Evaluate(x)
		c.Assert(got.Equal(&want), qt.IsTrue)
	})

	c.Run("mul matches pointwise evaluation", func(c *qt.C) {
		prod := algebra.Mul(a, b)
		x := algebra.ScalarFromUint64(5)
		av, bv := a.Evaluate(x), b.Evaluate(x)
		var want algebra.Scalar
		want.Mul(&av, &bv)
		got := prod.Evaluate(x)
		c.Assert(got.Equal(&want), qt.IsTrue)
	})

	c.Run("div rem exact division", func(c *qt.C) {
		// (X-5) divides (X^2 - 25) exactly.
		five := algebra.ScalarFromUint64(5)
		var negFive algebra.Scalar
		negFive.Neg(&five)
		divisor := algebra.NewPolynomial([]algebra.Scalar{negFive, algebra.ScalarFromUint64(1)})

		twentyFive := algebra.ScalarFromUint64(25)
		var negTwentyFive algebra.Scalar
		negTwentyFive.Neg(&twentyFive)
		dividend := algebra.NewPolynomial([]algebra.Scalar{
			negTwentyFive, algebra.ScalarFromUint64(0), algebra.ScalarFromUint64(1),
		})

		q, r, err := algebra.DivRem(dividend, divisor)
		c.Assert(err, qt.IsNil)
		c.Assert(r.IsZero(), qt.IsTrue)

		ten := algebra.ScalarFromUint64(10)
		got := q.Evaluate(ten)
		want := algebra.ScalarFromUint64(15) // X+5 at X=10 is 15
		c.Assert(got.Equal(&want), qt.IsTrue)
	})
}

func TestDomainVanishingAndLagrange(t *testing.T) {
	c := qt.New(t)
	domain, err := algebra.NewDomain(8)
	c.Assert(err, qt.IsNil)

	c.Run("vanishing poly is zero on every domain element", func(c *qt.C) {
		zh := domain.VanishingPoly()
		for _, el := range domain.Elements() {
			v := zh.Evaluate(el)
			c.Assert(v.IsZero(), qt.IsTrue)
		}
	})

	c.Run("L0 is one at the first element and zero elsewhere", func(c *qt.C) {
		l0 := domain.LagrangeL0Poly()
		els := domain.Elements()
		one := l0.Evaluate(els[0])
		want := algebra.One()
		c.Assert(one.Equal(&want), qt.IsTrue)
		for _, el := range els[1:] {
			v := l0.Evaluate(el)
			c.Assert(v.IsZero(), qt.IsTrue)
		}
	})

	c.Run("L_{n-1} is one at the last element and zero elsewhere", func(c *qt.C) {
		last := domain.LagrangeLastPoly()
		els := domain.Elements()
		v := last.Evaluate(els[len(els)-1])
		want := algebra.One()
		c.Assert(v.Equal(&want), qt.IsTrue)
		for _, el := range els[:len(els)-1] {
			v := last.Evaluate(el)
			c.Assert(v.IsZero(), qt.IsTrue)
		}
	})

	c.Run("closed form evaluation matches polynomial evaluation off-domain", func(c *qt.C) {
		x := algebra.ScalarFromUint64(123456789)
		l0Poly := domain.LagrangeL0Poly()
		l0Closed := domain.LagrangeL0Eval(x)
		got := l0Poly.Evaluate(x)
		c.Assert(got.Equal(&l0Closed), qt.IsTrue)
	})

	c.Run("interpolate round-trips evaluations", func(c *qt.C) {
		els := domain.Elements()
		evals := make([]algebra.Scalar, len(els))
		for i := range evals {
			evals[i] = algebra.ScalarFromUint64(uint64(i*i + 1))
		}
		p := algebra.InterpolateOnDomain(domain, evals)
		for i, el := range els {
			got := p.Evaluate(el)
			c.Assert(got.Equal(&evals[i]), qt.IsTrue)
		}
	})

	c.Run("rejects non power of two size", func(c *qt.C) {
		_, err := algebra.NewDomain(6)
		c.Assert(err, qt.ErrorIs, algebra.ErrBadDomainSize)
	})
}

func TestGroupOperations(t *testing.T) {
	c := qt.New(t)

	c.Run("scalar mul base matches generator scaling", func(c *qt.C) {
		s := algebra.ScalarFromUint64(7)
		a := algebra.ScalarBaseMulG1(s)
		b := algebra.ScalarMulG1(algebra.G1Gen(), s)
		c.Assert(a.Equal(&b), qt.IsTrue)
	})

	c.Run("add then sub is identity", func(c *qt.C) {
		g := algebra.G1Gen()
		s := algebra.ScalarFromUint64(42)
		p := algebra.ScalarMulG1(g, s)
		sum := algebra.AddG1(g, p)
		back := algebra.SubG1(sum, p)
		c.Assert(back.Equal(&g), qt.IsTrue)
	})

	c.Run("multi exp matches repeated scalar mul sum", func(c *qt.C) {
		points := []algebra.G1Affine{algebra.G1Gen(), algebra.G1Gen()}
		scalars := []algebra.Scalar{algebra.ScalarFromUint64(3), algebra.ScalarFromUint64(4)}
		got, err := algebra.MultiExpG1(points, scalars)
		c.Assert(err, qt.IsNil)
		want := algebra.ScalarBaseMulG1(algebra.ScalarFromUint64(7))
		c.Assert(got.Equal(&want), qt.IsTrue)
	})
}
