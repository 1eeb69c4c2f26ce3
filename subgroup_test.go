package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTorsionFreeGenerator(t *testing.T) {
	require.True(t, IsTorsionFree(Generator()))
}

func TestIsTorsionFreeIdentity(t *testing.T) {
	require.True(t, IsTorsionFree(Identity()))
}

func TestIsTorsionFreeTorquedGeneratorIsFalse(t *testing.T) {
	var torqued Point
	torqued.Torque(Generator())

	require.False(t, IsTorsionFree(&torqued))
}

func TestIsTorsionFreeRejectsKnownNonTorsionFreeEncoding(t *testing.T) {
	p, ok := Decompress(nonTorsionFreeEncoding)
	require.True(t, ok)
	require.False(t, IsTorsionFree(p))
}

func TestIsTorsionFreeScalarMultiplesOfGenerator(t *testing.T) {
	g := Generator()

	var doubled Point
	doubled.Double(g)

	require.True(t, IsTorsionFree(&doubled))
}
