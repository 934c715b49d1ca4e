package game

import (
	"github.com/dezgeg/shenzen-solitaire/deck"
)

// PickUp removes count cards from from and returns the new board together
// with the lifted run, ordered bottom to top as it sat in the zone.
//
// Only free cells and tableau columns are sources. A free cell yields its one
// card. A column yields its top count cards, which must form a run in which
// every card can rest on the one below it.
func (r Rules) PickUp(pf Playfield, count int, from Position) (Playfield, []deck.Card, error) {
	if err := from.check(); err != nil {
		return Playfield{}, nil, err
	}

	next := pf.Clone()
	run, err := next.pickUp(count, from)
	if err != nil {
		return Playfield{}, nil, err
	}
	return next, run, nil
}

// pickUp lifts the run from a board the caller owns. On error pf is unchanged.
func (pf *Playfield) pickUp(count int, from Position) ([]deck.Card, error) {
	if count < 1 {
		return nil, ErrBadCount
	}

	switch from.Zone {
	case FlowerZone, PileZone:
		return nil, ErrNotASource

	case FreeCellZone:
		cell := &pf.FreeCells[from.Index]
		switch cell.State {
		case Flipped:
			return nil, ErrCellLocked
		case Free:
			return nil, ErrEmptySource
		}
		if count != 1 {
			return nil, ErrTooManyCards
		}
		card := cell.Card
		*cell = FreeSlot()
		return []deck.Card{card}, nil

	case TableauZone:
		col := pf.Tableau[from.Index]
		if len(col) == 0 {
			return nil, ErrEmptySource
		}
		if count > len(col) {
			return nil, ErrNotEnoughCards
		}

		split := len(col) - count
		for i := split; i < len(col)-1; i++ {
			if !CanPlaceOnTop(col[i+1], col[i]) {
				return nil, ErrIncoherentRun
			}
		}

		run := append([]deck.Card(nil), col[split:]...)
		pf.Tableau[from.Index] = col[:split]
		return run, nil
	}

	return nil, ErrInvalidPosition
}
