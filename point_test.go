package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityIsOnCurve(t *testing.T) {
	require.True(t, IsOnCurve(Identity()))
}

func TestGeneratorIsOnCurve(t *testing.T) {
	require.True(t, IsOnCurve(Generator()))
}

func TestNegateTwiceIsIdentity(t *testing.T) {
	g := Generator()

	var neg, negNeg Point
	neg.Negate(g)
	negNeg.Negate(&neg)

	require.True(t, negNeg.CtEqual(g))
}

func TestTorqueTwiceIsIdentity(t *testing.T) {
	g := Generator()

	var torqued, torquedTwice Point
	torqued.Torque(g)
	torquedTwice.Torque(&torqued)

	require.True(t, torquedTwice.CtEqual(g))
}

func TestTorqueChangesThePoint(t *testing.T) {
	g := Generator()

	var torqued Point
	torqued.Torque(g)

	require.False(t, torqued.CtEqual(g))
	require.True(t, IsOnCurve(&torqued))
}

func TestConditionalSelect(t *testing.T) {
	g := Generator()
	id := Identity()

	var selected Point
	selected.ConditionalSelect(id, g, 0)
	require.True(t, selected.CtEqual(id))

	selected.ConditionalSelect(id, g, 1)
	require.True(t, selected.CtEqual(g))
}

func TestIsIdentity(t *testing.T) {
	require.True(t, Identity().IsIdentity())
	require.False(t, Generator().IsIdentity())
}
