// Package hextext turns hex dump text back into bytes.
//
// Input is scanned once as a stream. Anything that is not a hex digit is
// dropped, and everything from ';' or '/' up to the end of the line is a
// comment. Digits that survive are paired up into bytes.
package hextext

import "encoding/hex"

// State of the scanner between two characters.
type State uint8

const (
	Normal State = iota
	InComment
)

// Next: transition for one input character
func (s State) Next(c byte) State {
	switch c {
	case '\n':
		return Normal
	case ';', '/':
		return InComment
	}
	return s
}

// Filter returns the hex digits of text that sit outside comments, in order.
func Filter(text []byte) []byte {
	digits := make([]byte, 0, len(text))

	st := Normal
	for _, c := range text {
		st = st.Next(c)
		if st == Normal && isHexDigit(c) {
			digits = append(digits, c)
		}
	}
	return digits
}

// Parse decodes hex text into bytes. It never fails: non-digits are
// filtered out and an odd trailing digit is dropped.
func Parse(text []byte) []byte {
	digits := Filter(text)

	// 1. odd trailing digit is dropped
	digits = digits[:len(digits)&^1]

	// 2. pairs -> bytes. Filter only keeps hex digits, so Decode cannot fail
	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, digits); err != nil {
		panic("hextext: filtered input is not hex: " + err.Error())
	}
	return out
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
