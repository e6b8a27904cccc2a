package rangeproof

import (
	"github.com/cockroachdb/errors"

	"github.com/aalps-labs/fde/algebra"
	"github.com/aalps-labs/fde/kzg"
	"github.com/aalps-labs/fde/transcript"
)

// Commitments holds the three KZG commitments the prover sends: the
// witness polynomial and the bit-recurrence polynomial, both absorbed
// before tau is derived, and the constraint quotient, absorbed after
// tau and before rho.
type Commitments struct {
	F, G, Q algebra.G1Affine
}

// Evaluations holds the three scalar openings the prover reveals at
// the random point rho (and, for g, at rho*omega).
type Evaluations struct {
	GEval      algebra.Scalar
	GOmegaEval algebra.Scalar
	WCapEval   algebra.Scalar
}

// Proofs holds the two KZG opening proofs: one aggregated over G and
// WCap, and one single-point opening of G.
type Proofs struct {
	Aggregated algebra.G1Affine // opens {G, WCap} at rho
	Shift      algebra.G1Affine // opens G at rho*omega
}

// Proof is a complete range-proof artifact: a non-interactive argument
// that the witness committed into F lies in [0, 2^n). n is not part of
// the proof; the verifier supplies it independently, which is what
// lets Verify detect a proof checked against the wrong bit width.
type Proof struct {
	Commitments Commitments
	Evaluations Evaluations
	Proofs      Proofs
}

// Prove constructs a range proof that z lies in [0, 2^n), n a power of
// two. It returns ErrInvalidWitness if z is out of range: the
// bit-recurrence quotient then fails to divide Z_H exactly, which is
// the structural signal the construction uses to reject out-of-range
// witnesses. F and G are already committed at that point; the quotient
// and the opening proofs are not.
func Prove(z algebra.Scalar, n uint64, powers *kzg.Powers) (*Proof, error) {
	domain, err := algebra.NewDomain(n)
	if err != nil {
		return nil, errors.Wrap(err, "building evaluation domain")
	}
	if err := powers.RequireMinG1Powers(4 * int(n)); err != nil {
		return nil, err
	}

	r, err := algebra.RandomScalar()
	if err != nil {
		return nil, errors.Wrap(err, "sampling f blinding")
	}
	alpha, err := algebra.RandomScalar()
	if err != nil {
		return nil, errors.Wrap(err, "sampling g blinding (alpha)")
	}
	beta, err := algebra.RandomScalar()
	if err != nil {
		return nil, errors.Wrap(err, "sampling g blinding (beta)")
	}

	f := buildF(domain, z, r)
	g := buildG(domain, z, alpha, beta)

	fCommit, err := kzg.Commit(powers, f)
	if err != nil {
		return nil, errors.Wrap(err, "committing f")
	}
	gCommit, err := kzg.Commit(powers, g)
	if err != nil {
		return nil, errors.Wrap(err, "committing g")
	}

	tr := transcript.NewRangeProofTranscript()
	if err := tr.Append("tau", []byte(transcript.DomainSeparator)); err != nil {
		return nil, err
	}
	if err := tr.AppendUint64("tau", n); err != nil {
		return nil, err
	}
	if err := tr.AppendScalar("tau", domain.Generator); err != nil {
		return nil, err
	}
	if err := tr.AppendG1("tau", fCommit); err != nil {
		return nil, err
	}
	if err := tr.AppendG1("tau", gCommit); err != nil {
		return nil, err
	}
	tau, err := tr.ChallengeScalar("tau")
	if err != nil {
		return nil, err
	}

	w1 := buildW1(domain, f, g)
	w2 := buildW2(domain, g)
	w3 := buildW3(domain, g)
	q, err := quotient(domain, w1, w2, w3, tau)
	if err != nil {
		return nil, err
	}

	qCommit, err := kzg.Commit(powers, q)
	if err != nil {
		return nil, errors.Wrap(err, "committing quotient")
	}
	if err := tr.AppendG1("rho", qCommit); err != nil {
		return nil, err
	}
	rho, err := tr.ChallengeScalar("rho")
	if err != nil {
		return nil, err
	}

	gEval := g.Evaluate(rho)
	var rhoOmega algebra.Scalar
	rhoOmega.Mul(&rho, &domain.Generator)
	gOmegaEval := g.Evaluate(rhoOmega)

	wCap := buildWCap(domain, f, q, rho)
	wCapEval := wCap.Evaluate(rho)

	if err := tr.AppendScalar("aggregation_challenge", gEval); err != nil {
		return nil, err
	}
	if err := tr.AppendScalar("aggregation_challenge", gOmegaEval); err != nil {
		return nil, err
	}
	if err := tr.AppendScalar("aggregation_challenge", wCapEval); err != nil {
		return nil, err
	}
	gamma, err := tr.ChallengeScalar("aggregation_challenge")
	if err != nil {
		return nil, err
	}

	piAggPoly := kzg.AggregateWitness([]algebra.Polynomial{g, wCap}, rho, gamma)
	piAgg, err := kzg.Commit(powers, piAggPoly)
	if err != nil {
		return nil, errors.Wrap(err, "committing aggregated witness")
	}
	piShiftPoly := kzg.Witness(g, rhoOmega)
	piShift, err := kzg.Commit(powers, piShiftPoly)
	if err != nil {
		return nil, errors.Wrap(err, "committing shift witness")
	}

	return &Proof{
		Commitments: Commitments{F: fCommit, G: gCommit, Q: qCommit},
		Evaluations: Evaluations{GEval: gEval, GOmegaEval: gOmegaEval, WCapEval: wCapEval},
		Proofs:      Proofs{Aggregated: piAgg, Shift: piShift},
	}, nil
}

// Verify checks a range proof against the caller-supplied bit-width n,
// which is independent of the proof (the proof carries no n field).
// It returns false on any structural or cryptographic failure,
// including n not matching the n the proof was constructed for; it
// never panics on attacker-controlled input.
func Verify(proof *Proof, n uint64, powers *kzg.Powers) bool {
	if proof == nil {
		return false
	}
	domain, err := algebra.NewDomain(n)
	if err != nil {
		return false
	}
	if err := powers.RequireMinG1Powers(4 * int(n)); err != nil {
		return false
	}

	tr := transcript.NewRangeProofTranscript()
	if err := tr.Append("tau", []byte(transcript.DomainSeparator)); err != nil {
		return false
	}
	if err := tr.AppendUint64("tau", n); err != nil {
		return false
	}
	if err := tr.AppendScalar("tau", domain.Generator); err != nil {
		return false
	}
	if err := tr.AppendG1("tau", proof.Commitments.F); err != nil {
		return false
	}
	if err := tr.AppendG1("tau", proof.Commitments.G); err != nil {
		return false
	}
	tau, err := tr.ChallengeScalar("tau")
	if err != nil {
		return false
	}

	if err := tr.AppendG1("rho", proof.Commitments.Q); err != nil {
		return false
	}
	rho, err := tr.ChallengeScalar("rho")
	if err != nil {
		return false
	}

	gEval := proof.Evaluations.GEval
	gOmegaEval := proof.Evaluations.GOmegaEval
	wCapEval := proof.Evaluations.WCapEval

	one := algebra.One()
	lastEval := domain.LagrangeLastEval(rho)
	w2Rho := evalBitCheck(gEval, one)
	w2Rho.Mul(&w2Rho, &lastEval)

	two := algebra.ScalarFromUint64(2)
	var doubledOmega algebra.Scalar
	doubledOmega.Mul(&gOmegaEval, &two)
	var d algebra.Scalar
	d.Sub(&gEval, &doubledOmega)
	var oneMinusLast algebra.Scalar
	oneMinusLast.Sub(&one, &lastEval)
	w3Rho := evalBitCheck(d, one)
	w3Rho.Mul(&w3Rho, &oneMinusLast)

	l0Rho := domain.LagrangeL0Eval(rho)
	var expected algebra.Scalar
	expected.Mul(&l0Rho, &gEval)
	var tauTerm algebra.Scalar
	tauTerm.Mul(&tau, &w2Rho)
	expected.Sub(&expected, &tauTerm)
	tauSq := algebra.Pow(tau, 2)
	var tauSqTerm algebra.Scalar
	tauSqTerm.Mul(&tauSq, &w3Rho)
	expected.Sub(&expected, &tauSqTerm)

	if !expected.Equal(&wCapEval) {
		return false
	}

	if err := tr.AppendScalar("aggregation_challenge", gEval); err != nil {
		return false
	}
	if err := tr.AppendScalar("aggregation_challenge", gOmegaEval); err != nil {
		return false
	}
	if err := tr.AppendScalar("aggregation_challenge", wCapEval); err != nil {
		return false
	}
	gamma, err := tr.ChallengeScalar("aggregation_challenge")
	if err != nil {
		return false
	}

	zhRho := domain.VanishingEval(rho)
	l0F := algebra.ScalarMulG1(proof.Commitments.F, l0Rho)
	zhQ := algebra.ScalarMulG1(proof.Commitments.Q, zhRho)
	wCapCommitment := algebra.SubG1(l0F, zhQ)

	gammaWCap := algebra.ScalarMulG1(wCapCommitment, gamma)
	combinedCommitment := algebra.AddG1(proof.Commitments.G, gammaWCap)

	var combinedEval algebra.Scalar
	combinedEval.Mul(&gamma, &wCapEval)
	combinedEval.Add(&combinedEval, &gEval)

	if !kzg.VerifyScalar(powers, proof.Proofs.Aggregated, combinedCommitment, rho, combinedEval) {
		return false
	}

	var rhoOmega algebra.Scalar
	rhoOmega.Mul(&rho, &domain.Generator)
	if !kzg.VerifyScalar(powers, proof.Proofs.Shift, proof.Commitments.G, rhoOmega, gOmegaEval) {
		return false
	}

	return true
}

// evalBitCheck returns x*(c-x), the scalar form of X*(1-X) generalized
// so callers can reuse it for both (g-2g(omega*X)) and the bare bit
// check by passing c=1.
func evalBitCheck(x, c algebra.Scalar) algebra.Scalar {
	var diff algebra.Scalar
	diff.Sub(&c, &x)
	var out algebra.Scalar
	out.Mul(&x, &diff)
	return out
}
