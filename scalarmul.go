package edwards448

import (
	"crypto/subtle"

	"github.com/drewstone/Ed448-Goldilocks/internal"
	"github.com/drewstone/Ed448-Goldilocks/internal/scalar448"
	"github.com/drewstone/Ed448-Goldilocks/internal/twisted448"
)

// ScalarMul computes s·P in constant time (spec.md §4.4), splitting the
// scalar as s = 4q + r and routing the expensive part of the
// multiplication through the twisted curve's faster ladder:
//
//	q  = s div 4
//	r  = s mod 4  (0..3)
//	P' = ToTwisted(P)
//	R' = variable_base(P', q)
//	R  = ToUntwisted(R')           // = [4q]·P
//	result = R + [r]·P
//
// Correctness relies on ToUntwisted(variable_base(ToTwisted(P), q)) =
// [4q]·P, the dual-isogeny identity tested in isogeny_test.go. Neither
// q, r, nor any intermediate coordinate may influence control flow: the
// residue term is selected from {O, P, 2P, 3P} via four constant-time
// conditional selections.
func ScalarMul(p *Point, s *scalar448.Scalar) *Point {
	if p == nil || s == nil {
		panic(internal.ErrParamNilPoint)
	}

	q := scalar448.Scalar{}
	q.DivByFour(s)
	r := s.Mod4()

	twistedP := ToTwisted(p)
	ladderResult := twisted448.VariableBase(twistedP, &q)
	quotientTerm := ToUntwisted(ladderResult)

	residue := residueMultiple(p, r)

	result := &Point{}
	result.Add(quotientTerm, residue)

	return result
}

// residueMultiple returns [r]·p for r in {0,1,2,3}, selected in constant
// time from the four precomputed small multiples.
func residueMultiple(p *Point, r int) *Point {
	o := Identity()
	onePt := p.Copy()

	var twoPt, threePt Point
	twoPt.Double(p)
	threePt.Add(&twoPt, p)

	result := &Point{}
	result.ConditionalSelect(o, onePt, subtle.ConstantTimeEq(int32(r), 1))

	var sel2, sel3 Point
	sel2.ConditionalSelect(result, &twoPt, subtle.ConstantTimeEq(int32(r), 2))
	sel3.ConditionalSelect(&sel2, &threePt, subtle.ConstantTimeEq(int32(r), 3))

	return &sel3
}
