// Package scalar448 implements integers modulo ℓ, the order of the
// Edwards448 prime-order subgroup, grounded on the same big.Int-backed
// pattern as internal/field.
package scalar448

import (
	"crypto/rand"
	"math/big"
)

// Size is the canonical byte length of an encoded scalar.
const Size = 56

var orderDecimal = "181709681073901722637330951972001133588410340171829515070372549795146003961539585716195755291692375963310293709091662304773755859649779"

var order, _ = new(big.Int).SetString(orderDecimal, 10)

// Order returns a copy of ℓ, the prime subgroup order.
func Order() *big.Int {
	return new(big.Int).Set(order)
}

// Scalar is an integer modulo ℓ.
type Scalar struct {
	v big.Int
}

func (s *Scalar) reduce() *Scalar {
	s.v.Mod(&s.v, order)
	return s
}

// Zero returns the scalar 0.
func Zero() *Scalar {
	return &Scalar{}
}

// FromUint64 returns the scalar representing the given small integer.
func FromUint64(n uint64) *Scalar {
	s := &Scalar{}
	s.v.SetUint64(n)
	return s.reduce()
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v.Add(&a.v, &b.v)
	return s.reduce()
}

// Sub sets s = a - b and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.v.Sub(&a.v, &b.v)
	return s.reduce()
}

// Mul sets s = a * b and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	return s.reduce()
}

// Equal reports whether s and other are the same residue mod ℓ.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.v.Cmp(&other.v) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Copy returns a new scalar equal to s.
func (s *Scalar) Copy() *Scalar {
	c := &Scalar{}
	c.v.Set(&s.v)
	return c
}

// ByteAt returns byte i (0 = least significant) of s's canonical
// little-endian representative. The scalar-multiplication pipeline only
// ever needs byte 0, to recover s mod 4.
func (s *Scalar) ByteAt(i int) byte {
	b := s.Bytes()
	if i < 0 || i >= len(b) {
		return 0
	}

	return b[i]
}

// Mod4 returns s mod 4, the residue absorbed on the untwisted curve by
// the scalar-multiplication decomposition (spec.md §4.4).
func (s *Scalar) Mod4() int {
	return int(s.ByteAt(0) & 0x3)
}

// DivByFour sets s = (a - a mod 4) / 4, the exact integer division used
// to obtain the twisted-curve ladder scalar. The caller must have
// already reduced a modulo ℓ (spec.md §4.4 / §6).
func (s *Scalar) DivByFour(a *Scalar) *Scalar {
	var q big.Int
	four := big.NewInt(4)
	q.Div(&a.v, four)
	s.v.Set(&q)

	return s
}

// Bytes returns the 56-byte little-endian canonical encoding of s.
func (s *Scalar) Bytes() [Size]byte {
	var out [Size]byte
	s.reduce()

	b := s.v.Bytes()
	for i := 0; i < len(b); i++ {
		out[i] = b[len(b)-1-i]
	}

	return out
}

// SetBytes sets s to the little-endian encoded integer in data, reduced
// modulo ℓ.
func (s *Scalar) SetBytes(data []byte) *Scalar {
	be := make([]byte, len(data))
	for i := range data {
		be[i] = data[len(data)-1-i]
	}

	s.v.SetBytes(be)

	return s.reduce()
}

// SetWideBytes sets s to the wide (e.g. 114-byte, RFC 8032 Ed448-style)
// little-endian integer in data, reduced modulo ℓ.
func (s *Scalar) SetWideBytes(data []byte) *Scalar {
	return s.SetBytes(data)
}

// Random sets s to a uniformly random scalar mod ℓ.
func (s *Scalar) Random() *Scalar {
	v, err := rand.Int(rand.Reader, order)
	if err != nil {
		panic(err)
	}

	s.v.Set(v)

	return s
}
