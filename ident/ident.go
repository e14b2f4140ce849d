// Package ident supplies opaque unique identifiers for symbols.
package ident

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"sync"
)

// DefaultLength is the number of characters in a Random identifier.
const DefaultLength = 100

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Supplier hands out identifiers. Implementations must be safe for
// concurrent use.
type Supplier interface {
	Next() string
}

// Random generates random alphanumeric identifiers. The zero value
// produces DefaultLength character identifiers.
type Random struct {
	Length int

	mu sync.Mutex
}

// Next returns a fresh random identifier.
func (r *Random) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.Length
	if n <= 0 {
		n = DefaultLength
	}
	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		k, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		b[i] = alphabet[k.Int64()]
	}
	return string(b)
}

// Sequence hands out predictable identifiers, "<prefix>1", "<prefix>2"
// and so on. It is useful for reproducible output.
type Sequence struct {
	Prefix string

	mu sync.Mutex
	n  uint64
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.Prefix + strconv.FormatUint(s.n, 10)
}

// Default is the process wide random supplier.
var Default Supplier = &Random{}
