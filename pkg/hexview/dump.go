package hexview

import (
	"fmt"
	"strings"
)

const (
	rowSize  = 16
	hexWidth = rowSize * 3 // "xx " per byte
)

// FormatHex renders every byte as two lowercase hex digits and a space.
func FormatHex(row []byte) string {
	var sb strings.Builder
	sb.Grow(len(row) * 3)
	for _, b := range row {
		fmt.Fprintf(&sb, "%02x ", b)
	}
	return sb.String()
}

// FormatText renders the ASCII gutter: printable graphic characters as-is,
// everything else (space and control bytes included) as '.'.
func FormatText(row []byte) string {
	out := make([]byte, len(row))
	for i, b := range row {
		if isGraphic(b) {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Line renders one Graphical-mode line including the trailing newline.
// The hex field is padded to the width of a full row so the gutter stays
// aligned for a short last row.
func Line(index int, row []byte) string {
	return fmt.Sprintf("%07x0: %-*s %s\n", index, hexWidth, FormatHex(row), FormatText(row))
}

// Fragment renders one Hex-mode piece. No newline: rows are glued together.
func Fragment(row []byte) string {
	return FormatHex(row)
}

// 0x21 ~ 0x7E
func isGraphic(b byte) bool {
	return b > ' ' && b < 0x7f
}
