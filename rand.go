package edwards448

import "github.com/drewstone/Ed448-Goldilocks/utils"

// randomSeedLength is the number of random bytes fed into hash-to-curve
// to produce a uniform subgroup point (spec.md §4.8).
const randomSeedLength = 32

// Random draws a uniform point from the prime-order subgroup by hashing
// 32 bytes from the system RNG through HashToCurve with the default DST.
func Random() *Point {
	seed := utils.RandomBytes(randomSeedLength)
	return HashToCurve(seed, DefaultHashDST)
}
