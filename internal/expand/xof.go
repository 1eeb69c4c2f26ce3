// Package expand implements RFC 9380's expand_message_xof, the
// variable-output-length message expansion hash-to-curve builds its
// field-element sampling on top of (spec.md §6, "expand_message").
//
// Grounded on the teacher's group/hash2curve.ExpandXOF /
// group/hash2curve/xmd.go shape (DST-prime construction, oversized-DST
// folding, I2OSP length encoding), specialized to a SHAKE256 extensible
// output function the way the teacher's hash.SHAKE256 wires
// golang.org/x/crypto/sha3.NewShake256 — since unlike expand_message_xmd
// an XOF needs no block-splitting loop, this is a single absorb/squeeze
// rather than the teacher's iterative b0/b1/.../b_ell construction.
package expand

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

const (
	dstMaxLength  = 255
	dstLongPrefix = "H2C-OVERSIZE-DST-"
)

// ErrZeroLengthDST indicates an empty domain-separation tag was supplied.
var ErrZeroLengthDST = errors.New("expand: zero-length DST")

// i2osp encodes n as a big-endian byte string of the given length, the
// same integer-to-octet-string primitive the teacher's
// encoding.I2OSP helper provides.
func i2osp(n, length int) []byte {
	out := make([]byte, length)
	for i := length - 1; i >= 0 && n > 0; i-- {
		out[i] = byte(n & 0xff)
		n >>= 8
	}

	return out
}

func vetDST(dst []byte) []byte {
	if len(dst) <= dstMaxLength {
		return dst
	}

	h := sha3.NewShake256()
	_, _ = h.Write([]byte(dstLongPrefix))
	_, _ = h.Write(dst)

	out := make([]byte, 32)
	_, _ = h.Read(out)

	return out
}

// MessageXOF implements expand_message_xof (RFC 9380 §5.3.2) over
// SHAKE256, returning length pseudorandom bytes derived from input under
// the domain separation tag dst.
func MessageXOF(input, dst []byte, length int) []byte {
	if len(dst) == 0 {
		panic(ErrZeroLengthDST)
	}

	dst = vetDST(dst)
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	h := sha3.NewShake256()
	_, _ = h.Write(input)
	_, _ = h.Write(i2osp(length, 2))
	_, _ = h.Write(dstPrime)

	out := make([]byte, length)
	_, _ = h.Read(out)

	return out
}
