package edwards448

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddPanicsOnNilArgument(t *testing.T) {
	g := Generator()
	var out Point

	require.Panics(t, func() { out.Add(nil, g) })
	require.Panics(t, func() { out.Add(g, nil) })
}

func TestSubPanicsOnNilArgument(t *testing.T) {
	g := Generator()
	var out Point

	require.Panics(t, func() { out.Sub(nil, g) })
	require.Panics(t, func() { out.Sub(g, nil) })
}

func TestScalarMulPanicsOnNilArgument(t *testing.T) {
	require.Panics(t, func() { ScalarMul(nil, nil) })
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	p, err := Decode([]byte{1, 2, 3})

	require.Nil(t, p)
	require.True(t, errors.Is(err, ErrParamInvalidPointEncoding))
}

func TestDecodeAcceptsGenerator(t *testing.T) {
	enc := Compress(Generator())

	p, err := Decode(enc[:])

	require.NoError(t, err)
	require.True(t, p.CtEqual(Generator()))
}

func TestDecodeRejectsNonTorsionFreeEncoding(t *testing.T) {
	var enc [EncodedSize]byte
	copy(enc[:], nonTorsionFreeEncoding[:])

	p, err := Decode(enc[:])

	require.Nil(t, p)
	require.True(t, errors.Is(err, ErrNotTorsionFree))
}
