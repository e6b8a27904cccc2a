// Command fde-cli is a demo and benchmarking harness for the fair data
// exchange cryptographic core: it generates a test-only SRS, encrypts
// and decrypts Exponential ElGamal ciphertexts, and proves/verifies
// range proofs, reporting timings for each step.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aalps-labs/fde/algebra"
	"github.com/aalps-labs/fde/crypto/elgamal"
	"github.com/aalps-labs/fde/kzg"
	"github.com/aalps-labs/fde/log"
	"github.com/aalps-labs/fde/rangeproof"
	"github.com/aalps-labs/fde/srsstore"
)

var (
	logLevel  = flag.String("loglevel", "info", "log level: debug, info, warn, error")
	rangeBits = flag.Uint64("bits", 8, "range proof bit width n (power of two)")
	plaintext = flag.Uint64("value", 42, "plaintext value to encrypt / prove in range")
	srsCache  = flag.String("srscache", "", "directory for the pebble-backed SRS cache (empty disables caching)")
	proofOut  = flag.String("proofout", "", "path to write the CBOR-encoded proof to (empty disables export)")
)

func main() {
	flag.Parse()
	log.Init(*logLevel, "stdout", nil)

	viper.SetEnvPrefix("FDE")
	viper.AutomaticEnv()

	runID := uuid.New().String()
	log.Infow("starting run", "runID", runID, "bits", *rangeBits, "value", *plaintext)

	powers, err := loadOrBuildSRS(*rangeBits)
	if err != nil {
		log.Fatalf("building srs: %v", err)
	}

	demoElGamal(*plaintext)
	demoRangeProof(*plaintext, *rangeBits, powers)
}

func loadOrBuildSRS(n uint64) (*kzg.Powers, error) {
	maxDegree := 4 * int(n)
	if *srsCache == "" {
		tau, err := algebra.RandomScalar()
		if err != nil {
			return nil, err
		}
		return kzg.UnsafeSetup(tau, maxDegree), nil
	}

	store, err := srsstore.Open(*srsCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	tau, err := algebra.RandomScalar()
	if err != nil {
		return nil, err
	}
	powers := kzg.UnsafeSetup(tau, maxDegree)
	key, err := store.Put(powers)
	if err != nil {
		return nil, err
	}
	log.Infow("cached srs", "key", key)
	return powers, nil
}

func demoElGamal(value uint64) {
	start := time.Now()
	pk, sk, err := elgamal.GenerateKey()
	if err != nil {
		log.Fatalf("generating elgamal key: %v", err)
	}

	m := algebra.ScalarFromUint64(value)
	cipher, nonce, err := elgamal.Encrypt(m, pk)
	if err != nil {
		log.Fatalf("encrypting: %v", err)
	}
	encryptElapsed := time.Since(start)

	decryptStart := time.Now()
	got, err := elgamal.Decrypt(cipher, sk)
	decryptElapsed := time.Since(decryptStart)
	if err != nil {
		log.Errorw(err, "decrypt failed")
		return
	}

	nonceBytes := nonce.Bytes()
	log.Infow("elgamal round trip",
		"plaintext", value,
		"recovered", got,
		"nonce", hex.EncodeToString(nonceBytes[:]),
		"encryptMs", encryptElapsed.Milliseconds(),
		"decryptMs", decryptElapsed.Milliseconds(),
	)
}

func demoRangeProof(value, n uint64, powers *kzg.Powers) {
	z := algebra.ScalarFromUint64(value)

	proveStart := time.Now()
	proof, err := rangeproof.Prove(z, n, powers)
	proveElapsed := time.Since(proveStart)
	if err != nil {
		log.Errorw(err, fmt.Sprintf("range proof construction failed (value %d, bits %d)", value, n))
		return
	}

	verifyStart := time.Now()
	ok := rangeproof.Verify(proof, n, powers)
	verifyElapsed := time.Since(verifyStart)

	log.Infow("range proof round trip",
		"value", value,
		"bits", n,
		"verified", ok,
		"proveMs", proveElapsed.Milliseconds(),
		"verifyMs", verifyElapsed.Milliseconds(),
	)

	if !ok {
		fmt.Fprintln(os.Stderr, "range proof failed verification")
		os.Exit(1)
	}

	if err := exportProof(proof, n); err != nil {
		log.Errorw(err, "failed to export proof")
	}
}

func exportProof(proof *rangeproof.Proof, n uint64) error {
	if *proofOut == "" {
		return nil
	}
	data, err := proof.MarshalCBOR(n)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*proofOut, data, 0o644); err != nil {
		return err
	}
	log.Infow("exported proof", "path", *proofOut, "bytes", len(data))
	return nil
}
