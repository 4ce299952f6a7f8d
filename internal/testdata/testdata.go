// Package testdata provides a deterministic source of test inputs.
package testdata

import (
	"crypto/sha3"
	"encoding/binary"
)

// DRBG is a deterministic random bit generator backed by SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG seeded with the given domain string.
func New(domain string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(domain))
	return &DRBG{h: h}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Uint64 returns the next 8 bytes of output as a little-endian integer.
func (d *DRBG) Uint64() uint64 {
	return binary.LittleEndian.Uint64(d.Data(8))
}

// Words returns n words of the given width in bits (1..64).
func (d *DRBG) Words(n int, width uint) []uint64 {
	mask := ^uint64(0)
	if width < 64 {
		mask = 1<<width - 1
	}

	words := make([]uint64, n)
	for i := range words {
		words[i] = d.Uint64() & mask
	}
	return words
}
