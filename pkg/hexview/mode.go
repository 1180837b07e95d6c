package hexview

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the transform applied to the input buffer.
type Mode int

const (
	Graphical Mode = iota // address + padded hex + ASCII gutter
	Hex                   // bare "xx " triples, no line breaks
	Reverse               // hex text back to bytes
)

var ErrInvalidMode = errors.New("invalid mode")

var modeNames = map[Mode]string{
	Graphical: "graphical",
	Hex:       "hex",
	Reverse:   "reverse",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a configuration value to a Mode. Matching ignores case and
// surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want graphical, hex or reverse)", ErrInvalidMode, s)
}
