package chunk

import (
	"bytes"
	"testing"
)

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestSplit_Coverage(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 100, 256} {
		data := seq(n)
		groups := Split(data)

		if len(groups) != Count(n) {
			t.Fatalf("n=%d: groups=%d, want %d", n, len(groups), Count(n))
		}

		var joined []byte
		for i, g := range groups {
			if g.Index != i {
				t.Fatalf("n=%d: group %d has index %d", n, i, g.Index)
			}
			if g.Offset() != len(joined) {
				t.Fatalf("n=%d: group %d offset=%d, want %d", n, i, g.Offset(), len(joined))
			}
			if i < len(groups)-1 && len(g.Bytes) != Size {
				t.Fatalf("n=%d: group %d len=%d, want %d", n, i, len(g.Bytes), Size)
			}
			joined = append(joined, g.Bytes...)
		}
		if !bytes.Equal(joined, data) {
			t.Fatalf("n=%d: concatenated groups differ from input", n)
		}
	}
}

func TestSplit_Remainder(t *testing.T) {
	tests := []struct {
		n       int
		lastLen int
	}{
		{1, 1},
		{15, 15},
		{16, 16},
		{17, 1},
		{32, 16},
		{45, 13},
	}
	for _, tt := range tests {
		groups := Split(seq(tt.n))
		last := groups[len(groups)-1]
		if len(last.Bytes) != tt.lastLen {
			t.Fatalf("n=%d: last len=%d, want %d", tt.n, len(last.Bytes), tt.lastLen)
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(nil); len(got) != 0 {
		t.Fatalf("split(nil)=%d groups, want 0", len(got))
	}
	if _, ok := NewReader([]byte{}).Next(); ok {
		t.Fatalf("empty reader should not yield a group")
	}
}

func TestReader_DoesNotMutateOrLeak(t *testing.T) {
	data := seq(20)
	orig := append([]byte(nil), data...)

	r := NewReader(data)
	g, _ := r.Next()
	g.Bytes = append(g.Bytes, 0xFF)

	if !bytes.Equal(data, orig) {
		t.Fatalf("appending to a group overwrote the source buffer")
	}
	g, ok := r.Next()
	if !ok || !bytes.Equal(g.Bytes, orig[16:]) {
		t.Fatalf("second group=%v, want %v", g.Bytes, orig[16:])
	}
	if _, ok := r.Next(); ok {
		t.Fatalf("reader should be exhausted after the remainder")
	}
}

func TestCount(t *testing.T) {
	tests := map[int]int{0: 0, -1: 0, 1: 1, 16: 1, 17: 2, 48: 3}
	for n, want := range tests {
		if got := Count(n); got != want {
			t.Fatalf("count(%d)=%d, want %d", n, got, want)
		}
	}
}
