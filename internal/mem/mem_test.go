package mem

import (
	"slices"
	"testing"
)

func TestSliceForAppend(t *testing.T) {
	in := make([]uint64, 2, 8)
	in[0], in[1] = 1, 2

	head, tail := SliceForAppend(in, 4)
	if got, want := len(head), 6; got != want {
		t.Errorf("len(head) = %d, want = %d", got, want)
	}
	if got, want := len(tail), 4; got != want {
		t.Errorf("len(tail) = %d, want = %d", got, want)
	}
	if &head[0] != &in[0] {
		t.Error("SliceForAppend allocated despite sufficient capacity")
	}

	tail[0] = 3
	if got, want := head[:3], []uint64{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("head = %v, want = %v", got, want)
	}
}

func TestChunks(t *testing.T) {
	for _, tc := range []struct {
		n, parts, align int
		want            [][2]int
	}{
		{0, 4, 2, nil},
		{8, 0, 2, nil},
		{8, 1, 2, [][2]int{{0, 8}}},
		{8, 4, 2, [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{10, 3, 2, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{4, 16, 2, [][2]int{{0, 2}, {2, 4}}},
	} {
		if got, want := Chunks(tc.n, tc.parts, tc.align), tc.want; !slices.Equal(got, want) {
			t.Errorf("Chunks(%d, %d, %d) = %v, want = %v", tc.n, tc.parts, tc.align, got, want)
		}
	}
}

func TestOverlap(t *testing.T) {
	buf := make([]uint64, 8)

	for _, tc := range []struct {
		name         string
		x, y         []uint64
		any, inexact bool
	}{
		{"same", buf, buf, true, false},
		{"same start", buf[:2], buf[:6], true, false},
		{"offset", buf[:4], buf[2:], true, true},
		{"touching", buf[:4], buf[3:], true, true},
		{"disjoint", buf[:4], buf[4:], false, false},
		{"separate", buf, make([]uint64, 8), false, false},
		{"empty", buf[:0], buf, false, false},
	} {
		if got, want := AnyOverlap(tc.x, tc.y), tc.any; got != want {
			t.Errorf("AnyOverlap(%s) = %v, want = %v", tc.name, got, want)
		}
		if got, want := InexactOverlap(tc.x, tc.y), tc.inexact; got != want {
			t.Errorf("InexactOverlap(%s) = %v, want = %v", tc.name, got, want)
		}
	}
}
