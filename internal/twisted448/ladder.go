package twisted448

import "github.com/drewstone/Ed448-Goldilocks/internal/scalar448"

// VariableBase computes s·P on the twisted curve in constant time: the
// scalar's bit pattern only ever drives ConditionalSwap, never a branch
// or a memory index, satisfying the "variable_base" contract spec.md
// §6 requires of the twisted-curve ladder.
//
// This is a textbook Montgomery-ladder walk over the complete unified
// addition law rather than the teacher's windowed, precomputed-table
// ScalarMult (group/twistedEdwards448.ScalarMult) — fixed-base tables
// are an explicit non-goal here (spec.md §1 Non-goals: "precomputed
// tables for fixed-base acceleration").
func VariableBase(p *Point, s *scalar448.Scalar) *Point {
	bytes := s.Bytes()

	r0 := Identity()
	r1 := p.Copy()

	for i := len(bytes)*8 - 1; i >= 0; i-- {
		bit := int((bytes[i/8] >> uint(i%8)) & 1)

		ConditionalSwap(r0, r1, bit)
		r1.Add(r0, r1)
		r0.Double(r0)
		ConditionalSwap(r0, r1, bit)
	}

	return r0
}
