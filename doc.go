// SPDX-License-Identifier: MIT

/*
Package edwards448 implements group arithmetic on the Edwards448
("Goldilocks") elliptic curve, the untwisted Edwards curve

	x² + y² = 1 + d·x²·y²

over GF(2^448 - 2^224 - 1) with d = -39081.

Scalar multiplication runs on an internal isogenous twisted curve for
speed, points compress to and decompress from the canonical 57-byte
encoding, and arbitrary strings map to curve points through the RFC 9380
hash-to-curve and encode-to-curve constructions.
*/
package edwards448
