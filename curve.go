package edwards448

import (
	"github.com/drewstone/Ed448-Goldilocks/internal"
	"github.com/drewstone/Ed448-Goldilocks/internal/field"
)

// add computes the complete, unified Hisil-Wong-Carter-Dawson addition
// law for a = 1 (spec.md §4.2):
//
//	A = X1·X2,  B = Y1·Y2,  C = d·T1·T2,  D = Z1·Z2
//	E = X1·Y2 + Y1·X2
//	F = D - C,  G = D + C,  H = B - A
//	X3 = E·F,   Y3 = H·G,   T3 = H·E,   Z3 = F·G
//
// This formula has no exceptional inputs on Edwards448, so doubling is
// simply self-addition; there is no separate doubling formula.
func add(out, p, q *Point) *Point {
	var a, b, c, d, e, f, g, h field.Element

	a.Mul(&p.X, &q.X)
	b.Mul(&p.Y, &q.Y)
	c.Mul(paramD, new(field.Element).Mul(&p.T, &q.T))
	d.Mul(&p.Z, &q.Z)

	var x1y2, y1x2 field.Element
	x1y2.Mul(&p.X, &q.Y)
	y1x2.Mul(&p.Y, &q.X)
	e.Add(&x1y2, &y1x2)

	f.Sub(&d, &c)
	g.Add(&d, &c)
	h.Sub(&b, &a)

	out.X.Mul(&e, &f)
	out.Y.Mul(&h, &g)
	out.T.Mul(&h, &e)
	out.Z.Mul(&f, &g)

	return out
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	if a == nil || b == nil {
		panic(internal.ErrParamNilPoint)
	}

	return add(p, a, b)
}

// Sub sets p = a - b and returns p.
func (p *Point) Sub(a, b *Point) *Point {
	if a == nil || b == nil {
		panic(internal.ErrParamNilPoint)
	}

	var negB Point
	negB.Negate(b)

	return add(p, a, &negB)
}

// Double sets p = 2*a and returns p.
func (p *Point) Double(a *Point) *Point {
	return add(p, a, a)
}

// IsOnCurve reports whether p satisfies X·Y = Z·T and
// Y² + X² = Z² + d·T².
func IsOnCurve(p *Point) bool {
	var xy, tz field.Element
	xy.Mul(&p.X, &p.Y)
	tz.Mul(&p.T, &p.Z)

	if !xy.Equal(&tz) {
		return false
	}

	var x2, y2, z2, t2, dt2, lhs, rhs field.Element
	x2.Square(&p.X)
	y2.Square(&p.Y)
	z2.Square(&p.Z)
	t2.Square(&p.T)
	dt2.Mul(paramD, &t2)

	lhs.Add(&y2, &x2)
	rhs.Add(&z2, &dt2)

	return lhs.Equal(&rhs)
}
