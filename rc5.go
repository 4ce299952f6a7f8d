// Package rc5 implements the RC5 block cipher with a runtime word width, round count, and key length (RC5-w/r/b).
//
// Messages and keys are sequences of words. A word is w bits wide, 1 <= w <= 64, and is carried in the low bits of a
// uint64. Messages are split into two-word blocks which are transformed independently of each other; there is no
// chaining, padding, or authentication. Decrypting with the wrong parameters or key silently produces the wrong
// words.
//
// Encrypt and Decrypt rebuild the key schedule on every call. Callers which transform many messages under one key
// should build a Schedule once with NewSchedule and reuse it. Callers which need a crypto/cipher.Block over bytes
// should use NewCipher.
//
// As RC5 uses data-dependent rotations over variable-time arithmetic, none of this package runs in constant time.
package rc5

import (
	"errors"

	"github.com/kostyansa/rc5/internal/magic"
	"github.com/kostyansa/rc5/internal/word"
)

const (
	// MaxWidth is the widest supported word, in bits.
	MaxWidth = uint(word.Max)

	// MaxRounds is the largest number of rounds accepted by NewSchedule, Encrypt, Decrypt, and BuildSubkeys. Its
	// subkey array takes 16 MiB.
	MaxRounds = uint(1 << 20)
)

var (
	// ErrInvalidMessageLength is returned when a message does not consist of whole two-word blocks.
	ErrInvalidMessageLength = errors.New("rc5: message length is not even")

	// ErrInvalidKey is returned when the key has no words.
	ErrInvalidKey = errors.New("rc5: empty key")

	// ErrInvalidWidth is returned when the word width is outside of [1, MaxWidth] or, for NewCipher, is not a
	// multiple of 8.
	ErrInvalidWidth = errors.New("rc5: invalid word width")

	// ErrWordOverflow is returned when a message or key word does not fit in the word width.
	ErrWordOverflow = errors.New("rc5: word does not fit in word width")

	// ErrInvalidRounds is returned when the number of rounds is over MaxRounds or, for NewCipher, over 255.
	ErrInvalidRounds = errors.New("rc5: invalid number of rounds")
)

// GenerateMagicNumbers returns the odd constants P_w and Q_w for the given word width, derived from e and the golden
// ratio respectively.
func GenerateMagicNumbers(width uint) (p, q uint64, err error) {
	w := word.Width(width)
	if !w.Valid() {
		return 0, 0, ErrInvalidWidth
	}
	p, q = magic.Numbers(w)
	return p, q, nil
}

// BuildSubkeys returns the key-mixed subkey array of 2*(rounds+1) words for the given parameters.
func BuildSubkeys(width, rounds uint, key []uint64) ([]uint64, error) {
	s, err := NewSchedule(width, rounds, key)
	if err != nil {
		return nil, err
	}
	return s.subkeys, nil
}

// Encrypt encrypts message, which must have an even number of words, and returns the ciphertext as a new slice.
func Encrypt(message, key []uint64, width, rounds uint) ([]uint64, error) {
	s, err := newScheduleFor(message, width, rounds, key)
	if err != nil {
		return nil, err
	}
	return s.Encrypt(nil, message)
}

// Decrypt decrypts ciphertext, which must have an even number of words, and returns the plaintext as a new slice.
func Decrypt(ciphertext, key []uint64, width, rounds uint) ([]uint64, error) {
	s, err := newScheduleFor(ciphertext, width, rounds, key)
	if err != nil {
		return nil, err
	}
	return s.Decrypt(nil, ciphertext)
}

// newScheduleFor checks the message length before the key so that an odd message is reported before any key work.
func newScheduleFor(message []uint64, width, rounds uint, key []uint64) (*Schedule, error) {
	if !word.Width(width).Valid() {
		return nil, ErrInvalidWidth
	}
	if len(message)%2 != 0 {
		return nil, ErrInvalidMessageLength
	}
	return NewSchedule(width, rounds, key)
}

func checkWords(w word.Width, words []uint64) error {
	for _, x := range words {
		if !w.Fits(x) {
			return ErrWordOverflow
		}
	}
	return nil
}
