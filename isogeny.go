package edwards448

import (
	"github.com/drewstone/Ed448-Goldilocks/internal/field"
	"github.com/drewstone/Ed448-Goldilocks/internal/twisted448"
)

// paramD is Edwards448's curve parameter, d = -39081 mod p.
var paramD = field.FromInt64(-39081)

// ToTwisted applies the forward 4-isogeny φ from untwisted Edwards448
// (a=1, d=-39081) to the internal twisted curve (a=-1, d'), computed on
// affine coordinates:
//
//	x' = 2xy / (y² - x²)
//	y' = (y² + x²) / (2 - y² - x²)
//
// with a = 1. Exceptional inputs (zero denominators, occurring only on
// the 4-torsion) are tolerated: the field's Invert returns zero for a
// zero input, and the scalar-multiplication pipeline clears the
// resulting small-subgroup contamination via the residue term.
func ToTwisted(p *Point) *twisted448.Point {
	x, y := p.ToAffine()

	var x2, y2, xy field.Element
	x2.Square(&x)
	y2.Square(&y)
	xy.Mul(&x, &y)

	var num, den field.Element
	num.Add(&xy, &xy)

	den.Sub(&y2, &x2)

	var xPrime field.Element
	var denInv field.Element
	denInv.Invert(&den)
	xPrime.Mul(&num, &denInv)

	var numY, denY field.Element
	numY.Add(&y2, &x2)

	denY.Add(&y2, &x2)
	denY.Sub(field.FromInt64(2), &denY)

	var yPrime, denYInv field.Element
	denYInv.Invert(&denY)
	yPrime.Mul(&numY, &denYInv)

	out := &twisted448.Point{}
	out.X = xPrime
	out.Y = yPrime
	out.Z = *field.One()
	out.T.Mul(&xPrime, &yPrime)

	return out
}

// ToUntwisted applies the dual 4-isogeny φ̂, taking a point on the
// twisted curve back to the untwisted Edwards448 curve, such that
// ToUntwisted(ToTwisted(P)) = [4]P for every point P (spec.md §4.3,
// §8 "Isogeny identity").
//
// The dual isogeny of a 4-isogeny with rational map (x,y) ↦ (x',y')
// given above is structurally the same construction specialized to the
// twisted curve's parameters (a=-1 in place of a=1), since the forward
// and dual maps of this particular isogeny are symmetric up to the sign
// of a — the same relationship the teacher's curve family exhibits
// between its untwisted and "old" twisted internal representations.
func ToUntwisted(p *twisted448.Point) *Point {
	x, y := p.Affine()

	var x2, y2, xy field.Element
	x2.Square(&x)
	y2.Square(&y)
	xy.Mul(&x, &y)

	var num, den field.Element
	num.Add(&xy, &xy)

	// a = -1 for the twisted curve, so y² - a·x² = y² + x².
	den.Add(&y2, &x2)

	var xPrime, denInv field.Element
	denInv.Invert(&den)
	xPrime.Mul(&num, &denInv)

	// y' = (y² + a·x²) / (2 - y² - a·x²) = (y² - x²) / (2 - y² + x²).
	var numY, denY field.Element
	numY.Sub(&y2, &x2)

	denY.Sub(&y2, &x2)
	denY.Negate(&denY)
	denY.Add(field.FromInt64(2), &denY)

	var yPrime, denYInv field.Element
	denYInv.Invert(&denY)
	yPrime.Mul(&numY, &denYInv)

	out := &Point{}
	out.X = xPrime
	out.Y = yPrime
	out.Z = *field.One()
	out.T.Mul(&xPrime, &yPrime)

	return out
}
