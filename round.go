package rc5

import "github.com/kostyansa/rc5/internal/word"

// encryptBlock applies the whitening step and rounds = len(s)/2 - 1 rounds to a block. Within a round, the right
// half is updated with the left half's new value.
func encryptBlock(w word.Width, s []uint64, a, b uint64) (uint64, uint64) {
	a = w.Add(a, s[0])
	b = w.Add(b, s[1])
	for i := 2; i < len(s); i += 2 {
		a = w.Add(w.RotateLeft(a^b, b), s[i])
		b = w.Add(w.RotateLeft(b^a, a), s[i+1])
	}
	return a, b
}

// decryptBlock inverts encryptBlock, undoing the rounds from last to first.
func decryptBlock(w word.Width, s []uint64, a, b uint64) (uint64, uint64) {
	for i := len(s) - 2; i >= 2; i -= 2 {
		b = w.RotateRight(w.Sub(b, s[i+1]), a) ^ a
		a = w.RotateRight(w.Sub(a, s[i]), b) ^ b
	}
	b = w.Sub(b, s[1])
	a = w.Sub(a, s[0])
	return a, b
}
