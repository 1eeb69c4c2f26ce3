// Package utils provides the random byte generation wrapper used by the
// RNG adapter (C8).
package utils

import (
	"crypto/rand"
	"fmt"
)

// RandomBytes returns length random bytes (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	r := make([]byte, length)
	for {
		if _, err := rand.Read(r); err != nil {
			// We can as well not panic and try again through the loop
			panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
		}

		break
	}

	return r
}
