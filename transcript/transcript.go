// Package transcript implements the Fiat-Shamir absorber used to
// derive the range proof's challenges deterministically from the
// committed data, wrapping gnark-crypto's fiat-shamir transcript.
package transcript

import (
	"crypto/sha256"
	"math/big"

	"github.com/cockroachdb/errors"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/aalps-labs/fde/algebra"
)

// DomainSeparator is the fixed ASCII label that begins every
// range-proof transcript.
const DomainSeparator = "fde range proof"

// Transcript absorbs canonically-serialized group/scalar/byte data
// under a label and derives a uniform scalar challenge for that label.
// Computing a challenge for one label folds it into the state used by
// every later label, giving the "reseed by hashing current state"
// chaining the range proof's challenge order relies on.
type Transcript struct {
	inner *fiatshamir.Transcript
}

// New builds a transcript that will expose exactly the given challenge
// labels, in the order they will be computed.
func New(labels ...string) *Transcript {
	return &Transcript{inner: fiatshamir.NewTranscript(sha256.New(), labels...)}
}

// NewRangeProofTranscript builds the transcript used by Prove/Verify,
// with the three labels the range proof derives, in derivation order.
func NewRangeProofTranscript() *Transcript {
	return New("tau", "rho", "aggregation_challenge")
}

// Append binds raw bytes under label, to be absorbed before that
// label's challenge is computed.
func (t *Transcript) Append(label string, data []byte) error {
	return t.inner.Bind(label, data)
}

// AppendUint64 binds a little-endian encoded uint64 under label.
func (t *Transcript) AppendUint64(label string, v uint64) error {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return t.Append(label, buf[:])
}

// AppendScalar binds a scalar's canonical encoding under label.
func (t *Transcript) AppendScalar(label string, s algebra.Scalar) error {
	b := s.Bytes()
	return t.Append(label, b[:])
}

// AppendG1 binds a G1 point's compressed affine encoding under label.
func (t *Transcript) AppendG1(label string, p algebra.G1Affine) error {
	b := p.Bytes()
	return t.Append(label, b[:])
}

// ChallengeScalar computes and returns the uniform scalar challenge
// for label, consuming it (it cannot be computed again).
func (t *Transcript) ChallengeScalar(label string) (algebra.Scalar, error) {
	digest, err := t.inner.ComputeChallenge(label)
	if err != nil {
		return algebra.Scalar{}, errors.Wrapf(err, "computing challenge %q", label)
	}
	var asBig big.Int
	asBig.SetBytes(digest)
	return algebra.ScalarFromBigInt(&asBig), nil
}
