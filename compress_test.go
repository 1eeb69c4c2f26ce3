package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	g := Generator()

	enc := Compress(g)
	dec, ok := Decompress(enc)

	require.True(t, ok)
	require.True(t, dec.CtEqual(g))
}

func TestDecompressCompressRoundTrip(t *testing.T) {
	g := Generator()
	enc := Compress(g)

	dec, ok := Decompress(enc)
	require.True(t, ok)

	reenc := Compress(dec)
	require.Equal(t, enc, reenc)
}

func TestDecompressIdentity(t *testing.T) {
	var enc [EncodedSize]byte
	enc[0] = 1 // y = 1, sign = 0

	p, ok := Decompress(enc)
	require.True(t, ok)
	require.True(t, p.IsIdentity())
}

func TestDecompressedPointIsOnCurve(t *testing.T) {
	var h Point
	h.Double(Generator())

	enc := Compress(&h)
	dec, ok := Decompress(enc)

	require.True(t, ok)
	require.True(t, IsOnCurve(dec))
}

func TestDecompressKnownVector(t *testing.T) {
	enc := mustHexBytes(
		"649c6a53b109897d962d033f23d01fd4e1053dddf3746d2ddce9bd66aea38cc" +
			"fc3df061df03ca399eb806312ab3037c0c31523142956ada780",
	)

	p, ok := Decompress(enc)
	require.True(t, ok)

	wantX := hexFieldBE(t, "39c41cea305d737df00de8223a0d5f4d48c8e098e16e9b4b2f38ac353262e119cb5ff2afd6d02464702d9d01c9921243fc572f9c718e2527")
	wantY := hexFieldBE(t, "a7ad5629142315c3c03730ab126380eb99a33cf01d06dfc3cf8ca3ae66bde9dc2d6d74f3dd3d05e1d41fd0233f032d967d8909b1536a9c64")

	require.True(t, p.X.Equal(wantX))
	require.True(t, p.Y.Equal(wantY))

	recompressed := Compress(p)
	require.Equal(t, enc, recompressed)
}

func TestDecompressUncheckedMatchesDecompress(t *testing.T) {
	enc := Compress(Generator())

	p1, ok1 := Decompress(enc)
	p2, ok2 := DecompressUnchecked(enc)

	require.Equal(t, ok1, ok2)
	require.True(t, p1.CtEqual(p2))
}
