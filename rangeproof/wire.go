package rangeproof

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/aalps-labs/fde/algebra"
)

// Marshal writes the wire encoding: (F,G,Q), then (pi_agg, pi_shift),
// then (g_eval, g_omega_eval, w_cap_eval), each scalar little-endian.
func (p *Proof) Marshal(w io.Writer) error {
	points := []algebra.G1Affine{
		p.Commitments.F, p.Commitments.G, p.Commitments.Q,
		p.Proofs.Aggregated, p.Proofs.Shift,
	}
	for i, pt := range points {
		b := pt.Bytes()
		if _, err := w.Write(b[:]); err != nil {
			return errors.Wrapf(err, "writing commitment/proof point %d", i)
		}
	}

	scalars := []algebra.Scalar{p.Evaluations.GEval, p.Evaluations.GOmegaEval, p.Evaluations.WCapEval}
	for i, s := range scalars {
		b := s.Bytes()
		reverseBytes(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return errors.Wrapf(err, "writing evaluation %d", i)
		}
	}
	return nil
}

// Unmarshal reads the wire encoding produced by Marshal. The caller
// supplies n (the bit width the proof is checked against) separately,
// since the wire format carries no n field: see Verify.
func Unmarshal(r io.Reader) (*Proof, error) {
	points := make([]algebra.G1Affine, 5)
	for i := range points {
		var b [algebra.G1CompressedSize]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, errors.Wrapf(err, "reading commitment/proof point %d", i)
		}
		if _, err := points[i].SetBytes(b[:]); err != nil {
			return nil, errors.Wrapf(err, "decoding commitment/proof point %d", i)
		}
	}

	scalars := make([]algebra.Scalar, 3)
	for i := range scalars {
		var b [32]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, errors.Wrapf(err, "reading evaluation %d", i)
		}
		reverseBytes(b[:])
		scalars[i] = algebra.ScalarFromBytes(b[:])
	}

	return &Proof{
		Commitments: Commitments{F: points[0], G: points[1], Q: points[2]},
		Proofs:      Proofs{Aggregated: points[3], Shift: points[4]},
		Evaluations: Evaluations{GEval: scalars[0], GOmegaEval: scalars[1], WCapEval: scalars[2]},
	}, nil
}

// reverseBytes reverses buf in place, converting between
// algebra.Scalar's native big-endian encoding and this wire format's
// little-endian encoding.
func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
