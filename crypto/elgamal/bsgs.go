package elgamal

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"

	"github.com/aalps-labs/fde/algebra"
)

// ErrDecryptExceeded is returned when no plaintext in
// [0, MaxPlaintext] maps to the recovered point; the exponential
// encoding makes decryption a bounded search rather than an inversion,
// and this is the sentinel for "search exhausted, decryption failed".
var ErrDecryptExceeded = errors.New("elgamal: plaintext exceeds decryptable bound")

// babyStepGiantStep recovers the smallest non-negative integer m with
// m*g == point, searching only m in [0, max]. It trades the O(max)
// brute-force loop the exponential scheme's definition literally
// describes for an O(sqrt(max)) baby-step/giant-step table, without
// changing which plaintexts are recoverable.
func babyStepGiantStep(point algebra.G1Affine, max uint64) (uint32, error) {
	m := uint64(math.Ceil(math.Sqrt(float64(max) + 1)))

	table := make(map[string]uint64, m)
	baby := algebra.G1Affine{} // identity
	g := algebra.G1Gen()
	for j := uint64(0); j < m; j++ {
		table[pointKey(baby)] = j
		baby = algebra.AddG1(baby, g)
	}

	var mBig big.Int
	mBig.SetUint64(m)
	negMG := algebra.ScalarMulG1(g, algebra.ScalarFromBigInt(&mBig))
	negMG.Neg(&negMG)

	giant := point
	for i := uint64(0); i <= m; i++ {
		if j, ok := table[pointKey(giant)]; ok {
			candidate := i*m + j
			if candidate <= max {
				return uint32(candidate), nil
			}
		}
		giant = algebra.AddG1(giant, negMG)
	}
	return 0, ErrDecryptExceeded
}

func pointKey(p algebra.G1Affine) string {
	b := p.Bytes()
	return string(b[:])
}
