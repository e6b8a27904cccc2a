package transcript_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/aalps-labs/fde/algebra"
	"github.com/aalps-labs/fde/transcript"
)

func TestChallengesAreDeterministic(t *testing.T) {
	c := qt.New(t)

	build := func() (algebra.Scalar, algebra.Scalar, algebra.Scalar) {
		tr := transcript.NewRangeProofTranscript()
		_ = tr.Append("tau", []byte(transcript.DomainSeparator))
		_ = tr.AppendUint64("tau", 8)
		_ = tr.AppendG1("tau", algebra.G1Gen())
		tau, err := tr.ChallengeScalar("tau")
		c.Assert(err, qt.IsNil)

		_ = tr.AppendScalar("rho", tau)
		rho, err := tr.ChallengeScalar("rho")
		c.Assert(err, qt.IsNil)

		_ = tr.AppendScalar("aggregation_challenge", rho)
		gamma, err := tr.ChallengeScalar("aggregation_challenge")
		c.Assert(err, qt.IsNil)

		return tau, rho, gamma
	}

	tau1, rho1, gamma1 := build()
	tau2, rho2, gamma2 := build()

	c.Assert(tau1.Equal(&tau2), qt.IsTrue)
	c.Assert(rho1.Equal(&rho2), qt.IsTrue)
	c.Assert(gamma1.Equal(&gamma2), qt.IsTrue)
}

func TestChallengesDifferWhenTranscriptDiffers(t *testing.T) {
	c := qt.New(t)

	tr1 := transcript.NewRangeProofTranscript()
	_ = tr1.AppendUint64("tau", 8)
	tau1, err := tr1.ChallengeScalar("tau")
	c.Assert(err, qt.IsNil)

	tr2 := transcript.NewRangeProofTranscript()
	_ = tr2.AppendUint64("tau", 16)
	tau2, err := tr2.ChallengeScalar("tau")
	c.Assert(err, qt.IsNil)

	c.Assert(tau1.Equal(&tau2), qt.IsFalse)
}
