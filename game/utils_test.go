package game

import (
	"github.com/dezgeg/shenzen-solitaire/deck"
)

var (
	red   = func(rank int) deck.Card { return deck.Number(deck.Red, rank) }
	green = func(rank int) deck.Card { return deck.Number(deck.Green, rank) }
	black = func(rank int) deck.Card { return deck.Number(deck.Black, rank) }
)

func cards(cs ...deck.Card) []deck.Card {
	return cs
}

// boardWithColumns returns an otherwise empty board with the given columns
// filled in from column 0 onwards
func boardWithColumns(cols ...[]deck.Card) Playfield {
	var pf Playfield
	for i, col := range cols {
		pf.Tableau[i] = col
	}
	return pf
}

func boardWithCells(a, b, c FreeCell) Playfield {
	var pf Playfield
	pf.FreeCells = [NumFreeCells]FreeCell{a, b, c}
	return pf
}
