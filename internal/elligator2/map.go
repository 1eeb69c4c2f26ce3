// Package elligator2 implements the Elligator2 map from a field element
// onto an internal Montgomery curve birationally paired with the
// twisted Edwards448 curve (internal/twisted448), and lifts the result
// onto that twisted curve.
//
// This realizes half of the spec's "map_to_curve_elligator2" /
// "iso448" external collaborator contracts (spec.md §6): the other
// half — the 4-isogeny from the twisted curve back to the untwisted,
// public Edwards448 curve — is the same dual isogeny the
// scalar-multiplication pipeline already needs (spec.md §4.3/§4.4), so
// it lives with the rest of the isogeny bridge in the root package
// instead of being duplicated here. Composed, Montgomery → (birational,
// degree 1) → twisted448 → (dual isogeny, degree 4) → Edwards448 is
// exactly the single degree-4 "iso448" map spec.md §4.6 calls for.
//
// The Elligator2 step itself is grounded on the teacher's
// group/hash2curve.Elligator2Montgomery (and its twistedEdwards448/map.go
// instance of the same algorithm), generalized to a non-unit Montgomery
// B coefficient since the curve paired with twisted448 does not happen
// to normalize to B = 1.
package elligator2

import (
	"github.com/drewstone/Ed448-Goldilocks/internal/field"
	"github.com/drewstone/Ed448-Goldilocks/internal/twisted448"
)

// z is the fixed non-square used by the Elligator2 map. p ≡ 3 (mod 4)
// for GF(2^448-2^224-1), so -1 is a non-residue — the same choice the
// teacher's edwards448 curve parameters make (see the z = -1 constant
// in group/edwards448/old/internal/curve.go).
var z = field.FromInt64(-1)

// montgomeryA and montgomeryB are the Montgomery-form coefficients of
// the curve birationally equivalent to twisted448 (a = -1, d'), derived
// from the standard relations A = 2(a+d)/(a-d), B = 4/(a-d).
var montgomeryA, montgomeryB = deriveMontgomeryParams()

func deriveMontgomeryParams() (*field.Element, *field.Element) {
	a := field.FromInt64(-1)
	d := twisted448.ParamD()

	var sum, diff, diffInv, aOut, bOut field.Element
	sum.Add(a, d)
	diff.Sub(a, d)
	diffInv.Invert(&diff)

	aOut.Mul(&sum, &diffInv)
	aOut.Mul(&aOut, field.FromInt64(2))

	bOut.Mul(field.FromInt64(4), &diffInv)

	return &aOut, &bOut
}

func cmov(cond bool, a, b *field.Element) *field.Element {
	c := 0
	if cond {
		c = 1
	}

	var out field.Element
	out.ConditionalSelect(a, b, c)

	return &out
}

// mapToMontgomery applies Elligator2 to t and returns the resulting
// affine Montgomery point (u, v).
func mapToMontgomery(t *field.Element) (u, v *field.Element) {
	var tv1, negOne field.Element
	negOne = *field.FromInt64(-1)

	tv1.Square(t)
	tv1.Mul(&tv1, z)

	e1 := tv1.Equal(&negOne)
	tv1 = *cmov(e1, &tv1, field.Zero())

	// Map onto s^2 = x^3 + (A/B)x^2 + x/B^2, then scale by B onto
	// B*v^2 = u^3 + A*u^2 + u.
	var bInv, c1, c2 field.Element
	bInv.Invert(montgomeryB)
	c1.Mul(montgomeryA, &bInv)
	c2.Square(&bInv)

	var x1, denom field.Element
	denom.Add(field.One(), &tv1)
	x1.Invert(&denom)
	x1.Mul(&x1, &c1)
	x1.Negate(&x1)

	var gx1 field.Element
	gx1.Add(&x1, &c1)
	gx1.Mul(&gx1, &x1)
	gx1.Add(&gx1, &c2)
	gx1.Mul(&gx1, &x1)

	var x2, gx2 field.Element
	x2.Negate(&x1)
	x2.Sub(&x2, &c1)
	gx2.Mul(&tv1, &gx1)

	e2 := gx1.IsSquare()

	var y1, y2 field.Element
	y1.Sqrt(&gx1)
	y2.Sqrt(&gx2)

	x := cmov(e2, &x2, &x1)
	y := cmov(e2, &y2, &y1)

	e3 := y.IsNegative() == 1

	var negY field.Element
	negY.Negate(y)
	y = cmov(e2 != e3, y, &negY)

	return x.Mul(x, montgomeryB), y.Mul(y, montgomeryB)
}

// MapToTwisted applies Elligator2 followed by the Montgomery-to-twisted
// birational map, returning a point on internal/twisted448.
func MapToTwisted(t *field.Element) *twisted448.Point {
	mu, mv := mapToMontgomery(t)

	// Birational map, Montgomery (u, v) -> twisted Edwards (x, y):
	//   x = u / v
	//   y = (u - 1) / (u + 1)
	var x, y, vInv, uPlus1, uPlus1Inv, uMinus1 field.Element

	vInv.Invert(mv)
	x.Mul(mu, &vInv)

	uMinus1.Sub(mu, field.One())
	uPlus1.Add(mu, field.One())
	uPlus1Inv.Invert(&uPlus1)
	y.Mul(&uMinus1, &uPlus1Inv)

	p := &twisted448.Point{}
	p.X = x
	p.Y = y
	p.Z = *field.One()
	p.T.Mul(&x, &y)

	return p
}
