// Package twisted448 implements the twisted Edwards448 curve (a = -1),
// isogenous to Edwards448, used internally as the faster curve the
// scalar-multiplication pipeline runs its variable-base ladder on
// (spec.md §4.4 / §6 "variable_base").
//
// This package plays the role the teacher keeps in
// group/twistedEdwards448 (constants, extended-coordinate point,
// ScalarMult ladder) — the extended-coordinate layout and the complete
// unified addition formula are adapted from the same
// Hisil-Wong-Carter-Dawson construction the teacher uses for the
// untwisted curve, specialized here to a = -1.
package twisted448

import "github.com/drewstone/Ed448-Goldilocks/internal/field"

// Point is a twisted Edwards448 point in extended homogeneous
// coordinates (X:Y:Z:T), with T·Z = X·Y.
type Point struct {
	X, Y, Z, T field.Element
}

// Identity returns the twisted curve's identity element.
func Identity() *Point {
	p := &Point{}
	p.Y = *field.One()
	p.Z = *field.One()

	return p
}

// Generator returns the twisted curve's canonical base point.
func Generator() *Point {
	p := &Point{
		X: *genX(),
		Y: *genY(),
		Z: *field.One(),
	}
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

// Affine returns the affine (x, y) coordinates of p.
func (p *Point) Affine() (x, y field.Element) {
	var zInv field.Element
	zInv.Invert(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)

	return x, y
}

// Equal reports whether p and q represent the same affine point.
func (p *Point) Equal(q *Point) bool {
	var l, r field.Element

	l.Mul(&p.X, &q.Z)
	r.Mul(&q.X, &p.Z)

	if !l.Equal(&r) {
		return false
	}

	l.Mul(&p.Y, &q.Z)
	r.Mul(&q.Y, &p.Z)

	return l.Equal(&r)
}

// ConditionalSwap exchanges p and q in place iff cond == 1, evaluated
// coordinate-wise so the operation is branch-free.
func ConditionalSwap(p, q *Point, cond int) {
	condSwapElement(&p.X, &q.X, cond)
	condSwapElement(&p.Y, &q.Y, cond)
	condSwapElement(&p.Z, &q.Z, cond)
	condSwapElement(&p.T, &q.T, cond)
}

func condSwapElement(a, b *field.Element, cond int) {
	var t field.Element
	t.ConditionalSelect(a, b, cond)

	var other field.Element
	other.ConditionalSelect(b, a, cond)

	a.Set(&t)
	b.Set(&other)
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.Equal(Identity())
}
