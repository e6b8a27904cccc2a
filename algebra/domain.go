package algebra

import (
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// blsFrModulus is the order of the BLS12-381 scalar field.
var blsFrModulus, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// blsFrGenerator is a known generator of the BLS12-381 scalar field's
// multiplicative group (the same "known primitive root" technique used
// to find roots of unity for an NTT domain over a prime field).
var blsFrGenerator = big.NewInt(7)

// Domain is a multiplicative subgroup H_n of F of size n (n a power of
// two), with generator omega. It supports DFT/iDFT, the vanishing
// polynomial Z_H(X) = X^n - 1, and the two Lagrange selectors this
// module's range-proof gadget needs.
type Domain struct {
	Size      uint64
	Generator Scalar // omega, primitive n-th root of unity
	sizeInv   Scalar // n^-1

	elements []Scalar // omega^0 .. omega^(n-1), computed lazily
	mu       sync.Mutex
}

var domainCache, _ = lru.New[uint64, *Domain](64)

// NewDomain returns the cached domain of the requested size, building
// it if necessary. It fails with ErrBadDomainSize if n is zero, not a
// power of two, or does not divide |F*|.
func NewDomain(n uint64) (*Domain, error) {
	if cached, ok := domainCache.Get(n); ok {
		return cached, nil
	}
	d, err := buildDomain(n)
	if err != nil {
		return nil, err
	}
	domainCache.Add(n, d)
	return d, nil
}

func buildDomain(n uint64) (*Domain, error) {
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrBadDomainSize
	}
	pMinus1 := new(big.Int).Sub(blsFrModulus, big.NewInt(1))
	nBig := new(big.Int).SetUint64(n)
	if new(big.Int).Mod(pMinus1, nBig).Sign() != 0 {
		return nil, ErrBadDomainSize
	}
	exp := new(big.Int).Div(pMinus1, nBig)
	omegaBig := new(big.Int).Exp(blsFrGenerator, exp, blsFrModulus)

	check := new(big.Int).Exp(omegaBig, nBig, blsFrModulus)
	if check.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrBadDomainSize
	}

	var omega, sizeInv Scalar
	omega.SetBigInt(omegaBig)
	sizeInv.SetUint64(n)
	sizeInv.Inverse(&sizeInv)

	return &Domain{Size: n, Generator: omega, sizeInv: sizeInv}, nil
}

// Elements returns omega^0, omega^1, ..., omega^(n-1).
func (d *Domain) Elements() []Scalar {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.elements != nil {
		return d.elements
	}
	out := make([]Scalar, d.Size)
	out[0].SetOne()
	for i := uint64(1); i < d.Size; i++ {
		out[i].Mul(&out[i-1], &d.Generator)
	}
	d.elements = out
	return out
}

// LastElement returns omega^(n-1).
func (d *Domain) LastElement() Scalar {
	els := d.Elements()
	return els[len(els)-1]
}

// VanishingEval evaluates Z_H(x) = x^n - 1.
func (d *Domain) VanishingEval(x Scalar) Scalar {
	out := Pow(x, d.Size)
	one := One()
	out.Sub(&out, &one)
	return out
}

// VanishingPoly returns Z_H(X) = X^n - 1 in coefficient form.
func (d *Domain) VanishingPoly() Polynomial {
	coeffs := make([]Scalar, d.Size+1)
	var negOne Scalar
	negOne.SetOne()
	negOne.Neg(&negOne)
	coeffs[0] = negOne
	coeffs[d.Size].SetOne()
	return Polynomial(coeffs)
}

// lagrangeSelectorPoly returns root*Z_H(X) / (n*(X - root)), the Lagrange
// basis polynomial equal to 1 at root and 0 at every other point of H.
func (d *Domain) lagrangeSelectorPoly(root Scalar) Polynomial {
	var negRoot Scalar
	negRoot.Neg(&root)
	divisor := Polynomial{negRoot, One()}
	q, _, err := DivRem(d.VanishingPoly(), divisor)
	if err != nil {
		panic(err) // divisor is never zero: it is (X - root)
	}
	var scale Scalar
	scale.Mul(&d.sizeInv, &root)
	return q.ScaleBy(scale)
}

// LagrangeL0Poly returns L0(X) = Z_H(X)/(n*(X-1)).
func (d *Domain) LagrangeL0Poly() Polynomial {
	return d.lagrangeSelectorPoly(One())
}

// LagrangeLastPoly returns L_{n-1}(X) = omega^(n-1)*Z_H(X)/(n*(X-omega^(n-1))).
func (d *Domain) LagrangeLastPoly() Polynomial {
	return d.lagrangeSelectorPoly(d.LastElement())
}

// LagrangeL0Eval evaluates L0 at an arbitrary point x.
func (d *Domain) LagrangeL0Eval(x Scalar) Scalar {
	one := One()
	return d.lagrangeClosedForm(x, one)
}

// LagrangeLastEval evaluates L_{n-1} at an arbitrary point x.
func (d *Domain) LagrangeLastEval(x Scalar) Scalar {
	return d.lagrangeClosedForm(x, d.LastElement())
}

func (d *Domain) lagrangeClosedForm(x, root Scalar) Scalar {
	if x.Equal(&root) {
		return One()
	}
	num := d.VanishingEval(x)
	num.Mul(&num, &root)
	var denom Scalar
	denom.Sub(&x, &root)
	denom.Mul(&denom, &d.sizeInv)
	var denomInv Scalar
	denomInv.Inverse(&denom)
	var out Scalar
	out.Mul(&num, &denomInv)
	return out
}

// interpolate returns the unique polynomial of degree < Size agreeing
// with evals on every domain point, via Lagrange interpolation in
// coefficient form (evals must have exactly Size entries).
func (d *Domain) interpolate(evals []Scalar) Polynomial {
	n := int(d.Size)
	if len(evals) != n {
		panic("algebra: interpolate requires exactly Size evaluations")
	}
	elements := d.Elements()
	acc := make(Polynomial, n)
	for i := 0; i < n; i++ {
		if evals[i].IsZero() {
			continue
		}
		basis := d.lagrangeSelectorPoly(elements[i])
		scaled := basis.ScaleBy(evals[i])
		acc = Add(acc, scaled)
	}
	return acc
}

// evaluateAll evaluates p at every point of the domain.
func (d *Domain) evaluateAll(p Polynomial) []Scalar {
	elements := d.Elements()
	out := make([]Scalar, len(elements))
	for i, x := range elements {
		out[i] = p.Evaluate(x)
	}
	return out
}
