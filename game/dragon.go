package game

import (
	"github.com/dezgeg/shenzen-solitaire/deck"
)

// FlipDragon removes the four dragons of suit from play once all of them are
// exposed, either sitting in a free cell or on top of a tableau column, and
// locks one free cell in their place.
//
// The locked cell is the highest-index free cell that is either free or held
// one of the collected dragons, so a cell emptied by the collection can be the
// one that gets locked.
func (r Rules) FlipDragon(pf Playfield, suit deck.Suit) (Playfield, error) {
	dragon := deck.Dragon(suit)
	next := pf.Clone()

	count, dst := 0, -1
	for i := range next.FreeCells {
		cell := &next.FreeCells[i]
		switch {
		case cell.State == InUse && cell.Card == dragon:
			*cell = FreeSlot()
			count++
			dst = i
		case cell.State == Free:
			dst = i
		}
	}

	for i := range next.Tableau {
		if top, ok := next.top(i); ok && top == dragon {
			next.Tableau[i] = next.Tableau[i][:len(next.Tableau[i])-1]
			count++
		}
	}

	if count != deck.DragonsPerSuit {
		return Playfield{}, ErrDragonsNotExposed
	}
	if dst < 0 {
		return Playfield{}, ErrNoFreeCell
	}

	next.FreeCells[dst] = FlippedSlot(suit)
	return next, nil
}
