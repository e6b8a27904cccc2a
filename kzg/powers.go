package kzg

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/aalps-labs/fde/algebra"
)

// Powers is the structured reference string: (g, tau*g, ..., tau^k*g)
// in G1, plus (h, tau*h) in G2. tau is the secret trapdoor and must be
// forgotten once Powers is built; Powers itself is immutable.
type Powers struct {
	G1    []algebra.G1Affine // tau^i * g, i = 0..k
	G2Gen algebra.G2Affine   // h
	G2Tau algebra.G2Affine   // tau*h
}

// MaxDegree is the largest polynomial degree this SRS can commit to.
func (p *Powers) MaxDegree() int {
	return len(p.G1) - 1
}

// UnsafeSetup builds a test-only SRS from a known trapdoor tau. It
// must never be used outside tests: a real deployment needs tau to be
// produced (and forgotten) by a multi-party trusted setup ceremony,
// which is out of this module's scope.
func UnsafeSetup(tau algebra.Scalar, maxDegree int) *Powers {
	g1 := make([]algebra.G1Affine, maxDegree+1)
	g := algebra.G1Gen()
	acc := algebra.One()
	for i := 0; i <= maxDegree; i++ {
		g1[i] = algebra.ScalarMulG1(g, acc)
		acc.Mul(&acc, &tau)
	}
	return &Powers{
		G1:    g1,
		G2Gen: algebra.G2Gen(),
		G2Tau: algebra.ScalarMulG2(algebra.G2Gen(), tau),
	}
}

// RequireMinG1Powers returns ErrSRSTooShort if the SRS carries fewer
// than min G1 powers, per the range-proof wire format's SRS
// acceptance rule (a range proof of parameter n requires at least 4n).
func (p *Powers) RequireMinG1Powers(min int) error {
	if len(p.G1) < min {
		return errors.Wrapf(ErrSRSTooShort, "have %d g1 powers, need at least %d", len(p.G1), min)
	}
	return nil
}

// Marshal writes the compressed-affine wire encoding of Powers: the
// G1 power count, then each G1 power, then h, then tau*h.
func (p *Powers) Marshal(w io.Writer) error {
	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(p.G1)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	for i := range p.G1 {
		b := p.G1[i].Bytes()
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	hBytes := p.G2Gen.Bytes()
	if _, err := w.Write(hBytes[:]); err != nil {
		return err
	}
	tauHBytes := p.G2Tau.Bytes()
	if _, err := w.Write(tauHBytes[:]); err != nil {
		return err
	}
	return nil
}

// Unmarshal reads the wire encoding produced by Marshal.
func Unmarshal(r io.Reader) (*Powers, error) {
	var countBuf [8]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, errors.Wrap(err, "reading g1 power count")
	}
	count := binary.LittleEndian.Uint64(countBuf[:])

	g1 := make([]algebra.G1Affine, count)
	for i := range g1 {
		var b [algebra.G1CompressedSize]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, errors.Wrapf(err, "reading g1 power %d", i)
		}
		if _, err := g1[i].SetBytes(b[:]); err != nil {
			return nil, errors.Wrapf(err, "decoding g1 power %d", i)
		}
	}
	var hBuf, tauHBuf [algebra.G2CompressedSize]byte
	if _, err := io.ReadFull(r, hBuf[:]); err != nil {
		return nil, errors.Wrap(err, "reading g2 generator")
	}
	var g2Gen algebra.G2Affine
	if _, err := g2Gen.SetBytes(hBuf[:]); err != nil {
		return nil, errors.Wrap(err, "decoding g2 generator")
	}
	if _, err := io.ReadFull(r, tauHBuf[:]); err != nil {
		return nil, errors.Wrap(err, "reading g2 tau power")
	}
	var g2Tau algebra.G2Affine
	if _, err := g2Tau.SetBytes(tauHBuf[:]); err != nil {
		return nil, errors.Wrap(err, "decoding g2 tau power")
	}
	return &Powers{G1: g1, G2Gen: g2Gen, G2Tau: g2Tau}, nil
}
