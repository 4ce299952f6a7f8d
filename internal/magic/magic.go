// Package magic derives the RC5 magic constants P_w and Q_w.
package magic

import (
	"math/big"
	"sync"

	"github.com/kostyansa/rc5/internal/word"
)

// prec is the mantissa size, in bits, of the intermediate values. It leaves far more than 64 bits of fraction
// for the widest word.
const prec = 256

// Numbers returns the odd magic constants (P, Q) for the given word width. w must be valid.
func Numbers(w word.Width) (p, q uint64) {
	pair := table()[w]
	return pair[0], pair[1]
}

var table = sync.OnceValue(func() (t [word.Max + 1][2]uint64) { //nolint:gochecknoglobals // read-only after init
	e, phi := euler(), golden()
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	ePart := new(big.Float).SetPrec(prec).Sub(e, two)
	phiPart := new(big.Float).SetPrec(prec).Sub(phi, two) // negative

	for w := word.Width(1); w <= word.Max; w++ {
		t[w] = [2]uint64{derive(ePart, w, +1), derive(phiPart, w, -1)}
	}
	return t
})

// derive truncates x·2^w toward zero, reduces it mod 2^w, and forces the low bit to one by moving in the given
// direction.
func derive(x *big.Float, w word.Width, dir int) uint64 {
	scaled := new(big.Float).SetPrec(prec).SetMantExp(x, int(w)) //nolint:gosec // w <= 64
	n, _ := scaled.Int(nil)

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(w))
	v := n.Mod(n, modulus).Uint64()

	if dir > 0 {
		v += 1 - v%2
	} else {
		v -= 1 - v%2
	}
	return v & w.Mask()
}

// euler returns e as the sum of 1/k! until the terms vanish at prec bits.
func euler() *big.Float {
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	for k := int64(1); ; k++ {
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(k))
		if term.MantExp(nil) < -prec-8 {
			return sum
		}
		sum.Add(sum, term)
	}
}

// golden returns φ = (1 + √5) / 2.
func golden() *big.Float {
	phi := new(big.Float).SetPrec(prec).SetInt64(5)
	phi.Sqrt(phi)
	phi.Add(phi, new(big.Float).SetPrec(prec).SetInt64(1))
	return phi.Quo(phi, new(big.Float).SetPrec(prec).SetInt64(2))
}
