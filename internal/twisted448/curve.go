package twisted448

import "github.com/drewstone/Ed448-Goldilocks/internal/field"

// genXBytes and genYBytes are the little-endian canonical encodings of
// the twisted Edwards448 generator's affine coordinates.
var genXBytes = [56]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x80, 0xfe, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
}

var genYBytes = [56]byte{
	0x64, 0x4a, 0xdd, 0xdf, 0xb4, 0x79, 0x60, 0xc8,
	0xa1, 0x70, 0xb4, 0x3a, 0x1e, 0x0c, 0x9b, 0x19,
	0xe5, 0x48, 0x3f, 0xd7, 0x44, 0x18, 0x18, 0x14,
	0x14, 0x27, 0x45, 0x50, 0x2c, 0x24, 0xd5, 0x93,
	0xc3, 0x74, 0x4c, 0x50, 0x70, 0x43, 0x26, 0x05,
	0x08, 0x24, 0xca, 0x78, 0x30, 0xc1, 0x06, 0x8d,
	0xd4, 0x86, 0x42, 0xf0, 0x14, 0xde, 0x08, 0x85,
}

func genX() *field.Element {
	var e field.Element
	_, _ = e.SetBytes(genXBytes[:])
	return &e
}

func genY() *field.Element {
	var e field.Element
	_, _ = e.SetBytes(genYBytes[:])
	return &e
}

// paramD is the twisted curve's d parameter, -39082 mod p. It is the
// image of Edwards448's d = -39081 under the 4-isogeny (spec.md §4.3).
var paramD = field.FromInt64(-39082)

// ParamD returns the twisted curve's d parameter, exported so the
// isogeny bridge and the Elligator2 map (internal/elligator2) can
// derive curves paired with this one without duplicating the constant.
func ParamD() *field.Element {
	return paramD
}

// add computes the complete, unified twisted-Edwards addition law
// (a = -1), the same Hisil-Wong-Carter-Dawson formula spec.md §4.2
// gives for a = 1, specialized by H = B + A instead of H = B - A.
func add(out, p, q *Point) *Point {
	var a, b, c, d, e, f, g, h field.Element

	a.Mul(&p.X, &q.X)
	b.Mul(&p.Y, &q.Y)
	c.Mul(paramD, new(field.Element).Mul(&p.T, &q.T))
	d.Mul(&p.Z, &q.Z)

	var sx, sy field.Element
	sx.Add(&p.X, &p.Y)
	sy.Add(&q.X, &q.Y)
	e.Mul(&sx, &sy)
	e.Sub(&e, &a)
	e.Sub(&e, &b)

	f.Sub(&d, &c)
	g.Add(&d, &c)
	h.Add(&b, &a)

	out.X.Mul(&e, &f)
	out.Y.Mul(&g, &h)
	out.T.Mul(&e, &h)
	out.Z.Mul(&f, &g)

	return out
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	return add(p, a, b)
}

// Double sets p = 2*a and returns p. Unified addition is complete, so
// doubling is simply self-addition (spec.md §4.2).
func (p *Point) Double(a *Point) *Point {
	return add(p, a, a)
}

// Negate sets p = -a and returns p.
func (p *Point) Negate(a *Point) *Point {
	p.X.Negate(&a.X)
	p.Y.Set(&a.Y)
	p.Z.Set(&a.Z)
	p.T.Negate(&a.T)

	return p
}

// IsOnCurve reports whether p satisfies -X² + Y² = Z² + d·T² and
// T·Z = X·Y.
func IsOnCurve(p *Point) bool {
	var x2, y2, z2, t2, dt2, lhs, rhs, xy, tz field.Element

	x2.Square(&p.X)
	y2.Square(&p.Y)
	z2.Square(&p.Z)
	t2.Square(&p.T)
	dt2.Mul(paramD, &t2)

	lhs.Sub(&y2, &x2)
	rhs.Add(&z2, &dt2)

	xy.Mul(&p.X, &p.Y)
	tz.Mul(&p.T, &p.Z)

	return lhs.Equal(&rhs) && xy.Equal(&tz)
}
