// Package word implements modular arithmetic and circular rotation over words of a runtime width.
package word

import "math/bits"

// Max is the widest supported word, in bits.
const Max Width = 64

// Width is the number of bits in a word. Words are stored in the low bits of a uint64.
type Width uint

// Valid reports whether w is in [1, Max].
func (w Width) Valid() bool {
	return w >= 1 && w <= Max
}

// Mask returns a value with the low w bits set.
func (w Width) Mask() uint64 {
	if w >= Max {
		return ^uint64(0)
	}
	return 1<<w - 1
}

// Fits reports whether x has no bits set above the low w bits.
func (w Width) Fits(x uint64) bool {
	return x&^w.Mask() == 0
}

// Add returns a+b mod 2^w.
func (w Width) Add(a, b uint64) uint64 {
	return (a + b) & w.Mask()
}

// Sub returns a-b mod 2^w.
func (w Width) Sub(a, b uint64) uint64 {
	return (a - b) & w.Mask()
}

// RotateLeft returns x rotated left by n mod w bits.
func (w Width) RotateLeft(x, n uint64) uint64 {
	x &= w.Mask()
	n %= uint64(w)
	if w == Max {
		return bits.RotateLeft64(x, int(n)) //nolint:gosec // n < 64
	}
	if n == 0 {
		return x
	}
	return (x<<n | x>>(uint64(w)-n)) & w.Mask()
}

// RotateRight returns x rotated right by n mod w bits.
func (w Width) RotateRight(x, n uint64) uint64 {
	n %= uint64(w)
	if n == 0 {
		return x & w.Mask()
	}
	return w.RotateLeft(x, uint64(w)-n)
}
