package chunk

// Size is the fixed width of one group.
const Size = 16

// Group is one contiguous slice of the source buffer.
// Index is the zero-based line index, so the group starts at Index*Size.
type Group struct {
	Index int
	Bytes []byte
}

// Offset: byte offset of the group inside the source buffer
func (g Group) Offset() int {
	return g.Index * Size
}

type Reader struct {
	data    []byte
	byteIdx int
	index   int // index of the next group
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Next returns the next group, or false once the buffer is exhausted.
// The last group may be shorter than Size. An empty buffer yields nothing.
func (r *Reader) Next() (Group, bool) {
	if r.byteIdx >= len(r.data) {
		return Group{}, false
	}

	end := r.byteIdx + Size
	if end > len(r.data) {
		end = len(r.data)
	}

	// 3-index slice: caller cannot append into the next group
	g := Group{Index: r.index, Bytes: r.data[r.byteIdx:end:end]}
	r.byteIdx = end
	r.index++

	return g, true
}

// Count returns the number of groups a buffer of n bytes splits into.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + Size - 1) / Size
}

// Split collects every group of data in order.
func Split(data []byte) []Group {
	groups := make([]Group, 0, Count(len(data)))
	r := NewReader(data)
	for {
		g, ok := r.Next()
		if !ok {
			break
		}
		groups = append(groups, g)
	}
	return groups
}
