package rangeproof

import (
	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"

	"github.com/aalps-labs/fde/algebra"
)

// wireDTO is the CBOR-friendly transport shape for Proof: compressed
// point and scalar encodings as plain byte slices, since G1Affine and
// Scalar carry no cbor struct tags of their own. Unlike the flat
// Marshal/Unmarshal wire format, this envelope also carries n: a CLI
// export file or RPC payload has nowhere else to keep it, since the
// proof itself is n-independent.
type wireDTO struct {
	N          uint64 `cbor:"n"`
	F          []byte `cbor:"f"`
	G          []byte `cbor:"g"`
	Q          []byte `cbor:"q"`
	PiAgg      []byte `cbor:"pi_agg"`
	PiShift    []byte `cbor:"pi_shift"`
	GEval      []byte `cbor:"g_eval"`
	GOmegaEval []byte `cbor:"g_omega_eval"`
	WCapEval   []byte `cbor:"w_cap_eval"`
}

// MarshalCBOR encodes the proof, alongside the n it was constructed
// for, for transport over CBOR-based wire formats (e.g. a CLI export
// file or an RPC payload), as opposed to Marshal's flat fixed-width
// binary encoding.
func (p *Proof) MarshalCBOR(n uint64) ([]byte, error) {
	fB := p.Commitments.F.Bytes()
	gB := p.Commitments.G.Bytes()
	qB := p.Commitments.Q.Bytes()
	piAggB := p.Proofs.Aggregated.Bytes()
	piShiftB := p.Proofs.Shift.Bytes()
	gEvalB := p.Evaluations.GEval.Bytes()
	gOmegaEvalB := p.Evaluations.GOmegaEval.Bytes()
	wCapEvalB := p.Evaluations.WCapEval.Bytes()

	dto := wireDTO{
		N:          n,
		F:          fB[:],
		G:          gB[:],
		Q:          qB[:],
		PiAgg:      piAggB[:],
		PiShift:    piShiftB[:],
		GEval:      gEvalB[:],
		GOmegaEval: gOmegaEvalB[:],
		WCapEval:   wCapEvalB[:],
	}
	return cbor.Marshal(dto)
}

// UnmarshalProofCBOR decodes a proof and its n produced by MarshalCBOR.
func UnmarshalProofCBOR(data []byte) (*Proof, uint64, error) {
	var dto wireDTO
	if err := cbor.Unmarshal(data, &dto); err != nil {
		return nil, 0, errors.Wrap(err, "decoding cbor proof")
	}

	var f, g, q, piAgg, piShift algebra.G1Affine
	if _, err := f.SetBytes(dto.F); err != nil {
		return nil, 0, errors.Wrap(err, "decoding f")
	}
	if _, err := g.SetBytes(dto.G); err != nil {
		return nil, 0, errors.Wrap(err, "decoding g")
	}
	if _, err := q.SetBytes(dto.Q); err != nil {
		return nil, 0, errors.Wrap(err, "decoding q")
	}
	if _, err := piAgg.SetBytes(dto.PiAgg); err != nil {
		return nil, 0, errors.Wrap(err, "decoding aggregated proof")
	}
	if _, err := piShift.SetBytes(dto.PiShift); err != nil {
		return nil, 0, errors.Wrap(err, "decoding shift proof")
	}

	proof := &Proof{
		Commitments: Commitments{F: f, G: g, Q: q},
		Proofs:      Proofs{Aggregated: piAgg, Shift: piShift},
		Evaluations: Evaluations{
			GEval:      algebra.ScalarFromBytes(dto.GEval),
			GOmegaEval: algebra.ScalarFromBytes(dto.GOmegaEval),
			WCapEval:   algebra.ScalarFromBytes(dto.WCapEval),
		},
	}
	return proof, dto.N, nil
}
