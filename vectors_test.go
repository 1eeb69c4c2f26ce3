package edwards448

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drewstone/Ed448-Goldilocks/internal/field"
)

// hexFieldBE decodes a big-endian hex string, the form RFC 9380's test
// vectors publish field elements in, into a field element.
func hexFieldBE(t *testing.T, h string) *field.Element {
	t.Helper()

	b, err := hex.DecodeString(h)
	require.NoError(t, err)
	require.Len(t, b, field.Size)

	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	e, err := new(field.Element).SetBytes(b)
	require.NoError(t, err)

	return e
}

// pointFromAffineHex builds an extended-coordinate point from big-endian
// affine (x, y) hex coordinates, without going through Decompress or any
// isogeny — an independent construction path for cross-checking against.
func pointFromAffineHex(t *testing.T, xHex, yHex string) *Point {
	t.Helper()

	x := hexFieldBE(t, xHex)
	y := hexFieldBE(t, yHex)

	p := &Point{X: *x, Y: *y, Z: *field.One()}
	p.T.Mul(x, y)

	return p
}

// nonTorsionFreeEncoding is a 57-byte compressed point that decompresses
// successfully but does not lie in the prime-order subgroup.
var nonTorsionFreeEncoding = mustHexBytes(
	"13b6714c7a5f53101bbec88f2f17cd30f42e37fae363a5474efb4197ed6005d" +
		"f5861ae178a0c2c16ad378b7befed0d0904b7ced35e9f674180",
)

func mustHexBytes(h string) [EncodedSize]byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}

	var out [EncodedSize]byte
	copy(out[:], b)

	return out
}
