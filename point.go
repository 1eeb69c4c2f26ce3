package edwards448

import (
	"encoding/hex"

	"github.com/drewstone/Ed448-Goldilocks/internal/field"
)

// Point is an Edwards448 point in extended homogeneous coordinates
// (X:Y:Z:T), satisfying the invariant T·Z = X·Y. The affine point is
// (X/Z, Y/Z).
type Point struct {
	X, Y, Z, T field.Element
}

// Identity returns the curve's neutral element, (0, 1, 1, 0).
func Identity() *Point {
	p := &Point{}
	p.Y = *field.One()
	p.Z = *field.One()

	return p
}

// Generator returns the Ed448 base point, built from the little-endian
// encodings of its affine coordinates. It is the double of the
// historical base point; ToUntwisted(twisted448.Generator()) is twice
// Generator(), not Generator() itself.
func Generator() *Point {
	xBytes, _ := hex.DecodeString("55555555555555555555555555555555555555555555555555555555a9aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	yBytes, _ := hex.DecodeString("ed8693eacdfbeada6ba0cdd1beb2bcbb98302a3a8365650db8c4d88a726de3b7d74d8835a0d76e03b0c2865020d659b38d04d74a63e905ae")

	p := &Point{Z: *field.One()}
	_, _ = p.X.SetBytes(xBytes)
	_, _ = p.Y.SetBytes(yBytes)
	p.T.Mul(&p.X, &p.Y)

	return p
}

// Copy returns a deep copy of p.
func (p *Point) Copy() *Point {
	c := &Point{}
	c.X.Set(&p.X)
	c.Y.Set(&p.Y)
	c.Z.Set(&p.Z)
	c.T.Set(&p.T)

	return c
}

// Set sets p to q and returns p.
func (p *Point) Set(q *Point) *Point {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.Z.Set(&q.Z)
	p.T.Set(&q.T)

	return p
}

// Negate sets p = -a and returns p: (-X, Y, Z, -T).
func (p *Point) Negate(a *Point) *Point {
	p.X.Negate(&a.X)
	p.Y.Set(&a.Y)
	p.Z.Set(&a.Z)
	p.T.Negate(&a.T)

	return p
}

// Torque sets p to a plus the curve's unique point of order 2,
// (-X, -Y, Z, T); repeated application cycles between the two cosets of
// the 2-torsion subgroup.
func (p *Point) Torque(a *Point) *Point {
	p.X.Negate(&a.X)
	p.Y.Negate(&a.Y)
	p.Z.Set(&a.Z)
	p.T.Set(&a.T)

	return p
}

// ToAffine returns the affine (x, y) coordinates of p.
func (p *Point) ToAffine() (x, y field.Element) {
	var zInv field.Element
	zInv.Invert(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)

	return x, y
}

// ConditionalSelect sets p to a if c == 0, or b if c == 1, evaluated
// coordinate-wise so the choice never branches on secret data.
func (p *Point) ConditionalSelect(a, b *Point, c int) *Point {
	p.X.ConditionalSelect(&a.X, &b.X, c)
	p.Y.ConditionalSelect(&a.Y, &b.Y, c)
	p.Z.ConditionalSelect(&a.Z, &b.Z, c)
	p.T.ConditionalSelect(&a.T, &b.T, c)

	return p
}

// CtEqual reports whether p and q represent the same affine point,
// evaluated via cross-multiplication so no inversion (and hence no
// branch on a zero denominator) is needed.
func (p *Point) CtEqual(q *Point) bool {
	var l, r field.Element

	l.Mul(&p.X, &q.Z)
	r.Mul(&q.X, &p.Z)
	xEqual := l.Equal(&r)

	l.Mul(&p.Y, &q.Z)
	r.Mul(&q.Y, &p.Z)
	yEqual := l.Equal(&r)

	return xEqual && yEqual
}

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool {
	return p.CtEqual(Identity())
}
