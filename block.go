package rc5

import (
	"crypto/cipher"
	"strconv"

	"github.com/kostyansa/rc5/internal/schedule"
	"github.com/kostyansa/rc5/internal/word"
)

const (
	maxKeyBytes     = 255
	maxCipherRounds = 255
)

// KeySizeError is returned by NewCipher for keys longer than 255 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc5: invalid key size " + strconv.Itoa(int(k))
}

type blockCipher struct {
	w       word.Width
	u       int // bytes per word
	subkeys []uint64
}

// NewCipher returns a cipher.Block implementing RC5-w/r/b over bytes, where w is width, r is rounds, and b is
// len(key). The width must be a multiple of 8 up to MaxWidth, rounds at most 255, and the key at most 255 bytes long.
//
// Key bytes are loaded into little-endian words, and each block is two little-endian words, so the block size is
// width/4 bytes. An empty key is loaded as a single zero word.
func NewCipher(key []byte, width, rounds uint) (cipher.Block, error) {
	w := word.Width(width)
	if !w.Valid() || w%8 != 0 {
		return nil, ErrInvalidWidth
	}

	if rounds > maxCipherRounds {
		return nil, ErrInvalidRounds
	}

	if len(key) > maxKeyBytes {
		return nil, KeySizeError(len(key))
	}

	u := int(w / 8)
	return &blockCipher{
		w:       w,
		u:       u,
		subkeys: schedule.Expand(w, rounds, loadKey(key, u)),
	}, nil
}

func (c *blockCipher) BlockSize() int {
	return 2 * c.u
}

func (c *blockCipher) Encrypt(dst, src []byte) {
	c.check(dst, src)
	a, b := encryptBlock(c.w, c.subkeys, load(src[:c.u]), load(src[c.u:2*c.u]))
	store(dst[:c.u], a)
	store(dst[c.u:2*c.u], b)
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	c.check(dst, src)
	a, b := decryptBlock(c.w, c.subkeys, load(src[:c.u]), load(src[c.u:2*c.u]))
	store(dst[:c.u], a)
	store(dst[c.u:2*c.u], b)
}

func (c *blockCipher) check(dst, src []byte) {
	if len(src) < c.BlockSize() {
		panic("rc5: input not full block")
	}
	if len(dst) < c.BlockSize() {
		panic("rc5: output not full block")
	}
}

// loadKey packs key into max(1, ceil(len(key)/u)) little-endian words of u bytes.
func loadKey(key []byte, u int) []uint64 {
	l := make([]uint64, max(1, (len(key)+u-1)/u))
	for i := len(key) - 1; i >= 0; i-- {
		l[i/u] = l[i/u]<<8 | uint64(key[i])
	}
	return l
}

func load(b []byte) uint64 {
	var x uint64
	for i := len(b) - 1; i >= 0; i-- {
		x = x<<8 | uint64(b[i])
	}
	return x
}

func store(b []byte, x uint64) {
	for i := range b {
		b[i] = byte(x)
		x >>= 8
	}
}

var _ cipher.Block = (*blockCipher)(nil)
