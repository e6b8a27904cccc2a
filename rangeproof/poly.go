package rangeproof

import (
	"math/big"

	"github.com/aalps-labs/fde/algebra"
)

// buildF returns f(X) = z + r*Z_H(X): the constant-on-H polynomial
// encoding the witness, blinded so that opening it at a random point
// leaks nothing about z beyond what the proof already reveals.
func buildF(domain *algebra.Domain, z, r algebra.Scalar) algebra.Polynomial {
	f := domain.VanishingPoly().ScaleBy(r)
	return f.AddConstant(z)
}

// bitsOf returns the low n bits of z, least significant first.
func bitsOf(z algebra.Scalar, n uint64) []algebra.Scalar {
	var zBig big.Int
	z.BigInt(&zBig)
	bits := make([]algebra.Scalar, n)
	for i := uint64(0); i < n; i++ {
		bits[i] = algebra.ScalarFromUint64(uint64(zBig.Bit(int(i))))
	}
	return bits
}

// partialSums computes g_i = sum_{j>=i} b_j * 2^(j-i), so g_0 equals
// the low-n-bits value of z and g_{n-1} = b_{n-1}.
func partialSums(bits []algebra.Scalar) []algebra.Scalar {
	n := len(bits)
	g := make([]algebra.Scalar, n)
	two := algebra.ScalarFromUint64(2)
	g[n-1] = bits[n-1]
	for i := n - 2; i >= 0; i-- {
		var doubled algebra.Scalar
		doubled.Mul(&g[i+1], &two)
		g[i].Add(&bits[i], &doubled)
	}
	return g
}

// buildG interpolates the running-partial-sum evaluations on H and
// adds the degree-(n+1) blinding term (alpha + beta*X)*Z_H(X).
func buildG(domain *algebra.Domain, z, alpha, beta algebra.Scalar) algebra.Polynomial {
	bits := bitsOf(z, domain.Size)
	evals := partialSums(bits)
	g0 := algebra.InterpolateOnDomain(domain, evals)
	blindFactor := algebra.Polynomial{alpha, beta}
	blind := algebra.Mul(blindFactor, domain.VanishingPoly())
	return algebra.Add(g0, blind)
}

// buildW1 returns (f(X) - g(X)) * L0(X), forcing f(1) = g(1) = z.
func buildW1(domain *algebra.Domain, f, g algebra.Polynomial) algebra.Polynomial {
	diff := algebra.Sub(f, g)
	return algebra.Mul(diff, domain.LagrangeL0Poly())
}

// buildW2 returns g(X)*(1-g(X)) * L_{n-1}(X), forcing the last bit
// g(omega^{n-1}) to be 0 or 1.
func buildW2(domain *algebra.Domain, g algebra.Polynomial) algebra.Polynomial {
	one := algebra.NewPolynomial([]algebra.Scalar{algebra.One()})
	oneMinusG := algebra.Sub(one, g)
	bitCheck := algebra.Mul(g, oneMinusG)
	return algebra.Mul(bitCheck, domain.LagrangeLastPoly())
}

// buildW3 returns (g(X)-2g(omegaX))*(1-(g(X)-2g(omegaX)))*(1-L_{n-1}(X)):
// the bit-recurrence identity b_i = g_i - 2*g_{i+1}, masked off at
// omega^{n-1} where g(omega*X) wraps around to g(1) and is not a
// meaningful bit constraint. The (1-L_{n-1}) factor is what makes
// W = W1+tau*W2+tau^2*W3 vanish on all of H, which quotient() requires
// for an exact division by Z_H.
func buildW3(domain *algebra.Domain, g algebra.Polynomial) algebra.Polynomial {
	gOmega := g.ComposeScaled(domain.Generator)
	two := algebra.ScalarFromUint64(2)
	d := algebra.Sub(g, gOmega.ScaleBy(two))

	one := algebra.NewPolynomial([]algebra.Scalar{algebra.One()})
	oneMinusD := algebra.Sub(one, d)
	bitCheck := algebra.Mul(d, oneMinusD)

	mask := algebra.Sub(one, domain.LagrangeLastPoly())
	return algebra.Mul(bitCheck, mask)
}

// quotient combines the three constraints with the Fiat-Shamir scalar
// tau and divides by Z_H exactly. A non-zero remainder means the
// witness is out of range.
func quotient(domain *algebra.Domain, w1, w2, w3 algebra.Polynomial, tau algebra.Scalar) (algebra.Polynomial, error) {
	tauSq := algebra.Pow(tau, 2)
	w := algebra.Add(w1, algebra.Add(w2.ScaleBy(tau), w3.ScaleBy(tauSq)))
	q, r, err := algebra.DivRem(w, domain.VanishingPoly())
	if err != nil {
		return nil, err
	}
	if !r.IsZero() {
		return nil, ErrInvalidWitness
	}
	return q, nil
}

// buildWCap returns w_cap(X) = L0(rho)*f(X) - Z_H(rho)*q(X), the
// linearization polynomial whose commitment the verifier reconstructs
// directly from [F] and [Q] without learning f or q individually.
func buildWCap(domain *algebra.Domain, f, q algebra.Polynomial, rho algebra.Scalar) algebra.Polynomial {
	l0Rho := domain.LagrangeL0Eval(rho)
	zhRho := domain.VanishingEval(rho)
	return algebra.Sub(f.ScaleBy(l0Rho), q.ScaleBy(zhRho))
}
