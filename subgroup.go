package edwards448

import "github.com/drewstone/Ed448-Goldilocks/internal/scalar448"

// IsTorsionFree reports whether p lies in the prime-order subgroup,
// i.e. [ℓ]P = O (spec.md §4.7).
//
// This cannot go through ScalarMul/scalar448.Scalar: that type, and the
// q=s div 4 / r=s mod 4 decomposition ScalarMul builds on, represent
// integers mod ℓ — exactly the reduction that would make the literal
// value ℓ indistinguishable from 0 and turn this check into a tautology.
// A point outside the prime subgroup can have order up to 4ℓ, so [ℓ]P
// must use ℓ's true integer value. A plain variable-time double-and-add
// suffices: both the input and the answer are public (spec.md §5), so
// there is nothing to protect by routing through the constant-time
// twisted-curve ladder.
func IsTorsionFree(p *Point) bool {
	order := scalar448.Order()

	result := Identity()
	base := p.Copy()

	for i := 0; i < order.BitLen(); i++ {
		if order.Bit(i) == 1 {
			result.Add(result, base)
		}

		var doubled Point
		doubled.Double(base)
		base = &doubled
	}

	return result.IsIdentity()
}
