package hexview

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/kirinokirino/xxd/pkg/chunk"
)

// Printer turns groups into output text for the Graphical and Hex modes.
type Printer struct {
	mode    Mode
	colored bool

	addr *color.Color
	text *color.Color
	dot  *color.Color
}

func NewPrinter(mode Mode, colored bool) (*Printer, error) {
	if mode != Graphical && mode != Hex {
		return nil, fmt.Errorf("%w: %s has no text rendering", ErrInvalidMode, mode)
	}

	p := &Printer{
		mode:    mode,
		colored: colored,
		addr:    color.New(color.FgCyan),
		text:    color.New(color.FgGreen),
		dot:     color.New(color.Faint),
	}
	if colored {
		// ignore the global tty check, the caller already decided
		p.addr.EnableColor()
		p.text.EnableColor()
		p.dot.EnableColor()
	}
	return p, nil
}

// Render returns the text for one group.
func (p *Printer) Render(g chunk.Group) string {
	if p.mode == Hex {
		return Fragment(g.Bytes)
	}
	if !p.colored {
		return Line(g.Index, g.Bytes)
	}

	// pad before colouring, escape codes have no width
	hex := fmt.Sprintf("%-*s", hexWidth, FormatHex(g.Bytes))
	return p.addr.Sprintf("%07x0:", g.Index) + " " + hex + " " + p.gutter(g.Bytes) + "\n"
}

// gutter colours runs of printable and substituted characters separately.
func (p *Printer) gutter(row []byte) string {
	text := FormatText(row)

	var sb strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && isGraphic(row[i]) == isGraphic(row[start]) {
			continue
		}
		run := text[start:i]
		if isGraphic(row[start]) {
			sb.WriteString(p.text.Sprint(run))
		} else {
			sb.WriteString(p.dot.Sprint(run))
		}
		start = i
	}
	return sb.String()
}
