package edwards448

import "github.com/drewstone/Ed448-Goldilocks/internal"

// ErrNotOnCurve, ErrNotTorsionFree, ErrParamNilPoint, and
// ErrParamInvalidPointEncoding are re-exported so callers can compare
// against them with errors.Is without importing the internal package
// directly, matching the teacher's re-export convention for its own
// sentinels.
var (
	ErrNotOnCurve                = internal.ErrNotOnCurve
	ErrNotTorsionFree            = internal.ErrNotTorsionFree
	ErrParamNilPoint             = internal.ErrParamNilPoint
	ErrParamInvalidPointEncoding = internal.ErrParamInvalidPointEncoding
)

// DecompressUnchecked behaves identically to Decompress: decompression
// already performs the square-root check unconditionally, so there is
// no meaningful "unchecked" fast path to offer (spec.md §9, Open
// Questions). The alias exists for callers migrating from APIs that
// distinguish the two.
func DecompressUnchecked(data [EncodedSize]byte) (p *Point, ok bool) {
	return Decompress(data)
}

// Decode decodes a variable-length byte slice, rather than a fixed
// [EncodedSize]byte array, validating along the way that the input is
// the right length, decodes to a point on the curve, and lies in the
// prime-order subgroup. This is the strict decode most callers building
// on top of this engine want (composing Decompress's curve check with
// IsTorsionFree), mirroring the teacher's own Element.Decode, which
// similarly rejects malformed input before callers ever see a *Point.
func Decode(data []byte) (*Point, error) {
	if len(data) != EncodedSize {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	var arr [EncodedSize]byte
	copy(arr[:], data)

	p, ok := Decompress(arr)
	if !ok {
		return nil, internal.ErrNotOnCurve
	}

	if !IsTorsionFree(p) {
		return nil, internal.ErrNotTorsionFree
	}

	return p, nil
}
