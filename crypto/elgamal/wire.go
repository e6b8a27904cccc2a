package elgamal

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/aalps-labs/fde/algebra"
)

// Bytes returns the compressed-affine wire encoding: c0 then c1.
func (c Cipher) Bytes() []byte {
	c0 := c.C0.Bytes()
	c1 := c.C1.Bytes()
	out := make([]byte, 0, len(c0)+len(c1))
	out = append(out, c0[:]...)
	out = append(out, c1[:]...)
	return out
}

// CipherFromBytes decodes the wire encoding produced by Cipher.Bytes.
func CipherFromBytes(buf []byte) (Cipher, error) {
	want := 2 * algebra.G1CompressedSize
	if len(buf) != want {
		return Cipher{}, errors.Newf("elgamal: expected %d bytes, got %d", want, len(buf))
	}
	var c Cipher
	if _, err := c.C0.SetBytes(buf[:algebra.G1CompressedSize]); err != nil {
		return Cipher{}, errors.Wrap(err, "decoding c0")
	}
	if _, err := c.C1.SetBytes(buf[algebra.G1CompressedSize:]); err != nil {
		return Cipher{}, errors.Wrap(err, "decoding c1")
	}
	return c, nil
}

// WriteTo writes the wire encoding to w, prefixed by nothing (callers
// concatenate ciphertexts themselves per §6.3 of the specification).
func (c Cipher) WriteTo(w io.Writer) (int64, error) {
	b := c.Bytes()
	n, err := w.Write(b)
	return int64(n), err
}
