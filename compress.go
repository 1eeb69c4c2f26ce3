package edwards448

import "github.com/drewstone/Ed448-Goldilocks/internal/field"

// EncodedSize is the length in bytes of a compressed point.
const EncodedSize = field.Size + 1

// Compress encodes p as the canonical 57-byte form: y little-endian in
// bytes 0..55, with sign(x) in the top bit of byte 56 (spec.md §4.5).
func Compress(p *Point) [EncodedSize]byte {
	x, y := p.ToAffine()

	var out [EncodedSize]byte
	yBytes := y.Bytes()
	copy(out[:field.Size], yBytes[:])

	out[field.Size] = byte(x.IsNegative() << 7)

	return out
}

// Decompress decodes a 57-byte compressed point, recovering x via
// sqrt_ratio. ok is false when y does not admit a curve point with this
// encoding, in which case the returned point is not meaningful.
func Decompress(data [EncodedSize]byte) (p *Point, ok bool) {
	sign := int(data[field.Size] >> 7)

	y, _ := new(field.Element).SetBytes(data[:field.Size])

	var y2, num, dy2, den field.Element
	y2.Square(y)
	num.Sub(field.One(), &y2)

	dy2.Mul(paramD, &y2)
	den.Sub(field.One(), &dy2)

	var x field.Element
	rootOK := x.SqrtRatio(&num, &den)

	negSign := sign ^ x.IsNegative()
	x.ConditionalNegate(&x, negSign)

	out := &Point{}
	out.X = x
	out.Y = *y
	out.Z = *field.One()
	out.T.Mul(&x, y)

	return out, rootOK
}
