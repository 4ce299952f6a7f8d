package rc5

import (
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kostyansa/rc5/internal/mem"
	"github.com/kostyansa/rc5/internal/schedule"
	"github.com/kostyansa/rc5/internal/word"
)

// A Schedule is an expanded RC5 key: the subkey array for a given word width, number of rounds, and key.
//
// A Schedule is immutable once built and is safe for concurrent use.
type Schedule struct {
	w       word.Width
	rounds  uint
	subkeys []uint64
}

// NewSchedule expands key into a Schedule. The key must have at least one word and every word must fit in width
// bits. A rounds value of zero is valid: blocks are then only offset by the first two subkeys. Rounds over MaxRounds
// return ErrInvalidRounds.
func NewSchedule(width, rounds uint, key []uint64) (*Schedule, error) {
	w := word.Width(width)
	if !w.Valid() {
		return nil, ErrInvalidWidth
	}

	if rounds > MaxRounds {
		return nil, ErrInvalidRounds
	}

	if len(key) == 0 {
		return nil, ErrInvalidKey
	}

	if err := checkWords(w, key); err != nil {
		return nil, err
	}

	return &Schedule{
		w:       w,
		rounds:  rounds,
		subkeys: schedule.Expand(w, rounds, key),
	}, nil
}

// Width returns the word width, in bits.
func (s *Schedule) Width() uint {
	return uint(s.w)
}

// Rounds returns the number of rounds.
func (s *Schedule) Rounds() uint {
	return s.rounds
}

// Subkeys returns a copy of the subkey array.
func (s *Schedule) Subkeys() []uint64 {
	return slices.Clone(s.subkeys)
}

// EncryptBlock encrypts a single block. Bits above the word width are ignored.
func (s *Schedule) EncryptBlock(left, right uint64) (uint64, uint64) {
	m := s.w.Mask()
	return encryptBlock(s.w, s.subkeys, left&m, right&m)
}

// DecryptBlock decrypts a single block. Bits above the word width are ignored.
func (s *Schedule) DecryptBlock(left, right uint64) (uint64, uint64) {
	m := s.w.Mask()
	return decryptBlock(s.w, s.subkeys, left&m, right&m)
}

// Encrypt encrypts message and appends the ciphertext to dst, returning the resulting slice. The message must have
// an even number of words, each of which fits in the word width; otherwise, nothing is appended.
//
// To encrypt in place, use message[:0] as dst. If the remaining capacity of dst overlaps message in any other way,
// message is copied before it is encrypted.
func (s *Schedule) Encrypt(dst, message []uint64) ([]uint64, error) {
	return s.transform(dst, message, 1, encryptBlock)
}

// Decrypt decrypts ciphertext and appends the plaintext to dst, returning the resulting slice. The ciphertext must
// have an even number of words, each of which fits in the word width; otherwise, nothing is appended.
//
// To decrypt in place, use ciphertext[:0] as dst. If the remaining capacity of dst overlaps ciphertext in any other
// way, ciphertext is copied before it is decrypted.
func (s *Schedule) Decrypt(dst, ciphertext []uint64) ([]uint64, error) {
	return s.transform(dst, ciphertext, 1, decryptBlock)
}

// EncryptParallel is Encrypt with the blocks split over up to workers goroutines. If workers is less than one,
// GOMAXPROCS is used. The result and the overlap rules are identical to Encrypt.
func (s *Schedule) EncryptParallel(dst, message []uint64, workers int) ([]uint64, error) {
	return s.transform(dst, message, workers, encryptBlock)
}

// DecryptParallel is Decrypt with the blocks split over up to workers goroutines. If workers is less than one,
// GOMAXPROCS is used. The result and the overlap rules are identical to Decrypt.
func (s *Schedule) DecryptParallel(dst, ciphertext []uint64, workers int) ([]uint64, error) {
	return s.transform(dst, ciphertext, workers, decryptBlock)
}

type blockFunc func(w word.Width, s []uint64, a, b uint64) (uint64, uint64)

func (s *Schedule) transform(dst, in []uint64, workers int, f blockFunc) ([]uint64, error) {
	if len(in)%2 != 0 {
		return dst, ErrInvalidMessageLength
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := mem.Chunks(len(in), workers, 2)

	if err := s.check(in, chunks); err != nil {
		return dst, err
	}

	ret, out := mem.SliceForAppend(dst, len(in))
	if mem.InexactOverlap(out, in) {
		in = slices.Clone(in)
	}

	if len(chunks) <= 1 {
		s.blocks(out, in, f)
		return ret, nil
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Go(func() {
			s.blocks(out[c[0]:c[1]], in[c[0]:c[1]], f)
		})
	}
	wg.Wait()

	return ret, nil
}

// check verifies that every word of in fits in the word width, one goroutine per chunk. Nothing is written until
// every chunk has passed.
func (s *Schedule) check(in []uint64, chunks [][2]int) error {
	if len(chunks) <= 1 {
		return checkWords(s.w, in)
	}

	var g errgroup.Group
	for _, c := range chunks {
		g.Go(func() error {
			return checkWords(s.w, in[c[0]:c[1]])
		})
	}
	return g.Wait()
}

// blocks transforms whole blocks of in into out, in order. in and out may be the same slice.
func (s *Schedule) blocks(out, in []uint64, f blockFunc) {
	for i := 0; i < len(in); i += 2 {
		out[i], out[i+1] = f(s.w, s.subkeys, in[i], in[i+1])
	}
}
