package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drewstone/Ed448-Goldilocks/internal/scalar448"
)

func TestIdentityLaw(t *testing.T) {
	g := Generator()

	var sum Point
	sum.Add(g, Identity())
	require.True(t, sum.CtEqual(g))

	sum.Add(Identity(), g)
	require.True(t, sum.CtEqual(g))

	require.True(t, ScalarMul(g, scalar448.Zero()).IsIdentity())
}

func TestInverseLaw(t *testing.T) {
	g := Generator()

	var neg, sum Point
	neg.Negate(g)
	sum.Add(g, &neg)

	require.True(t, sum.IsIdentity())
}

func TestCommutativity(t *testing.T) {
	g := Generator()

	var h Point
	h.Double(g)

	var pq, qp Point
	pq.Add(g, &h)
	qp.Add(&h, g)

	require.True(t, pq.CtEqual(&qp))
}

func TestAssociativity(t *testing.T) {
	g := Generator()

	var q, r Point
	q.Double(g)
	r.Add(&q, g)

	var pq, pqr Point
	pq.Add(g, &q)
	pqr.Add(&pq, &r)

	var qr, pqr2 Point
	qr.Add(&q, &r)
	pqr2.Add(g, &qr)

	require.True(t, pqr.CtEqual(&pqr2))
}

func TestScalarCompatibilityDistributesOverPointAddition(t *testing.T) {
	g := Generator()

	var h Point
	h.Double(g)

	s := scalar448.FromUint64(7)

	var gPlusH Point
	gPlusH.Add(g, &h)

	lhs := ScalarMul(&gPlusH, s)

	sg := ScalarMul(g, s)
	sh := ScalarMul(&h, s)

	var rhs Point
	rhs.Add(sg, sh)

	require.True(t, lhs.CtEqual(&rhs))
}

func TestScalarCompatibilityDistributesOverScalarAddition(t *testing.T) {
	g := Generator()

	s := scalar448.FromUint64(11)
	u := scalar448.FromUint64(13)

	var sPlusU scalar448.Scalar
	sPlusU.Add(s, u)

	lhs := ScalarMul(g, &sPlusU)

	sg := ScalarMul(g, s)
	ug := ScalarMul(g, u)

	var rhs Point
	rhs.Add(sg, ug)

	require.True(t, lhs.CtEqual(&rhs))
}

func TestScalarCompatibilityIsAssociative(t *testing.T) {
	g := Generator()

	s := scalar448.FromUint64(5)
	u := scalar448.FromUint64(9)

	var su scalar448.Scalar
	su.Mul(s, u)

	lhs := ScalarMul(g, &su)

	tg := ScalarMul(g, u)
	rhs := ScalarMul(tg, s)

	require.True(t, lhs.CtEqual(rhs))
}

func TestDoublingConsistency(t *testing.T) {
	g := Generator()

	var doubled, added Point
	doubled.Double(g)
	added.Add(g, g)

	require.True(t, doubled.CtEqual(&added))

	two := ScalarMul(g, scalar448.FromUint64(2))
	require.True(t, doubled.CtEqual(two))
}

// TestDoublingOldBasepointYieldsRFC8032Basepoint checks that the
// curve's historical basepoint (used by older libdecaf-compatible test
// vectors) doubles to the RFC 8032 basepoint this module returns from
// Generator().
func TestDoublingOldBasepointYieldsRFC8032Basepoint(t *testing.T) {
	oldBP := pointFromAffineHex(t,
		"4F1970C66BED0DED221D15A622BF36DA9E146570470F1767EA6DE324A3D3A46412AE1AF72AB66511433B80E18B00938E2626A82BC70CC05E",
		"693F46716EB6BC248876203756C9C7624BEA73736CA3984087789C1E05A0C2D73AD3FF1CE67C39C4FDBD132C4ED7C8AD9808795BF230FA14",
	)
	newBP := pointFromAffineHex(t,
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa955555555555555555555555555555555555555555555555555555555",
		"ae05e9634ad7048db359d6205086c2b0036ed7a035884dd7b7e36d728ad8c4b80d6565833a2a3098bbbcb2bed1cda06bdaeafbcdea9386ed",
	)

	require.True(t, IsOnCurve(oldBP))
	require.True(t, IsOnCurve(newBP))

	var doubled Point
	doubled.Double(oldBP)

	require.True(t, doubled.CtEqual(newBP))
	require.True(t, Generator().CtEqual(newBP))
}

func TestMembershipAfterEveryOperation(t *testing.T) {
	g := Generator()

	var d, s, n Point
	d.Double(g)
	s.Add(g, &d)
	n.Negate(g)

	for _, p := range []*Point{g, &d, &s, &n, ScalarMul(g, scalar448.FromUint64(41))} {
		require.True(t, IsOnCurve(p))
	}
}
