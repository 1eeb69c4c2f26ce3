package edwards448

import "github.com/drewstone/Ed448-Goldilocks/internal/field"

// ToMontgomery returns the Montgomery-model u-coordinate corresponding
// to p, via the standard birational map used to bridge an Edwards448
// point onto the Curve448/X448 Diffie-Hellman model:
//
//	u = y² · (1 - d·y²) / (1 - y²)
//
// The map only needs p's affine y; the sign of x is dropped, matching
// X448's own convention of encoding only u. Performing the X448
// exchange itself is out of scope (spec.md's Non-goals exclude
// Diffie-Hellman key exchange), but the single coordinate conversion a
// caller bridging the two models needs is cheap to expose.
func ToMontgomery(p *Point) [field.Size]byte {
	_, y := p.ToAffine()

	var y2, dy2, numerator, denominator, u field.Element
	y2.Square(&y)
	dy2.Mul(paramD, &y2)

	numerator.Sub(field.One(), &dy2)
	numerator.Mul(&y2, &numerator)

	denominator.Sub(field.One(), &y2)

	var denominatorInv field.Element
	denominatorInv.Invert(&denominator)
	u.Mul(&numerator, &denominatorInv)

	return u.Bytes()
}
