package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/dezgeg/shenzen-solitaire/game"
)

const (
	emptySlot   = "  "
	flippedSlot = "XX"
	columnWidth = 4
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Render draws the board as text: free cells, the flower slot and the piles
// on the first line, then the tableau column by column.
func Render(pf game.Playfield) string {
	var lines []string

	var top strings.Builder
	for _, cell := range pf.FreeCells {
		top.WriteString("[" + freeCellText(cell) + "]")
	}
	top.WriteString("  (" + slotText(pf.Flower) + ")  ")
	for _, card := range pf.Piles {
		top.WriteString("<" + slotText(card) + ">")
	}
	lines = append(lines, top.String(), "", tableauHeader())

	height := 0
	for _, col := range pf.Tableau {
		if len(col) > height {
			height = len(col)
		}
	}
	for row := 0; row < height; row++ {
		var line strings.Builder
		for _, col := range pf.Tableau {
			if row < len(col) {
				line.WriteString(pad(col[row].String()))
			} else {
				line.WriteString(pad(""))
			}
		}
		lines = append(lines, line.String())
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.TrimRight(l, " ") + "\n")
	}
	return b.String()
}

func tableauHeader() string {
	var b strings.Builder
	for i := 0; i < game.NumColumns; i++ {
		b.WriteString(pad(fmt.Sprintf("t%d", i)))
	}
	return b.String()
}

func freeCellText(cell game.FreeCell) string {
	switch cell.State {
	case game.InUse:
		return cell.Card.String()
	case game.Flipped:
		return flippedSlot
	}
	return emptySlot
}

func slotText(c deck.Card) string {
	if c.IsZero() {
		return emptySlot
	}
	return c.String()
}

func pad(s string) string {
	return fmt.Sprintf(" %-*s", columnWidth-1, s)
}
