// Package schedule implements the RC5 key schedule: the expansion of the magic constants into the subkey array
// and the mixing of the secret key into it.
package schedule

import (
	"slices"

	"github.com/kostyansa/rc5/internal/magic"
	"github.com/kostyansa/rc5/internal/word"
)

// Size returns the number of subkeys used by the given number of rounds. Callers bound rounds well below the point
// where the size would overflow an int.
func Size(rounds uint) int {
	return 2 * (int(rounds) + 1) //nolint:gosec // rounds is bounded by rc5.MaxRounds
}

// Initialize returns the unmixed subkey array: S[0] = p, S[i] = S[i-1] + q.
func Initialize(w word.Width, p, q uint64, rounds uint) []uint64 {
	s := make([]uint64, Size(rounds))
	s[0] = p
	for i := 1; i < len(s); i++ {
		s[i] = w.Add(s[i-1], q)
	}
	return s
}

// Mix mixes key into s in place over 3·max(len(s), len(key)) steps. key must not be empty and is left unmodified.
func Mix(w word.Width, s, key []uint64) {
	k := slices.Clone(key)
	defer clear(k)

	t, c := len(s), len(k)

	var a, b uint64
	for z, i, j := 0, 0, 0; z < 3*max(t, c); z++ {
		a = w.RotateLeft(w.Add(s[i], w.Add(a, b)), 3)
		s[i] = a

		// The rotation amount is the sum before rotation, reduced mod w by RotateLeft.
		ab := w.Add(a, b)
		b = w.RotateLeft(w.Add(k[j], ab), ab)
		k[j] = b

		i = (i + 1) % t
		j = (j + 1) % c
	}
}

// Expand returns the mixed subkey array for the given width, number of rounds, and key.
func Expand(w word.Width, rounds uint, key []uint64) []uint64 {
	p, q := magic.Numbers(w)
	s := Initialize(w, p, q, rounds)
	Mix(w, s, key)
	return s
}
