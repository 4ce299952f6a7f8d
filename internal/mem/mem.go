// Package mem provides slice helpers shared by the word codecs.
package mem

import (
	"slices"
	"unsafe"
)

// SliceForAppend takes a slice and a requested number of elements. It returns a slice with the contents of the given
// slice followed by that many elements and a second slice that aliases into it and contains only the extra elements.
// If the original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend[S ~[]E, E any](in S, n int) (head, tail S) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}

// Chunks splits n items into at most parts contiguous ranges of near-equal size, each a multiple of align items, and
// returns their [start, end) bounds.
func Chunks(n, parts, align int) [][2]int {
	if n == 0 || parts < 1 {
		return nil
	}

	units := (n + align - 1) / align
	parts = min(parts, units)
	per := (units + parts - 1) / parts

	bounds := make([][2]int, 0, parts)
	for start := 0; start < n; start += per * align {
		bounds = append(bounds, [2]int{start, min(start+per*align, n)})
	}
	return bounds
}

// AnyOverlap reports whether x and y share memory at any (not necessarily corresponding) index.
func AnyOverlap[E any](x, y []E) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// InexactOverlap reports whether x and y share memory at any non-corresponding index. Slices which start at the same
// element may be used in place of each other.
func InexactOverlap[E any](x, y []E) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return AnyOverlap(x, y)
}
