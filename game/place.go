package game

import (
	"github.com/dezgeg/shenzen-solitaire/deck"
)

// Place puts run onto to and returns the new board. The run is assumed to be
// coherent already; only its bottom card is checked against the destination.
//
// A tableau column takes a run of any length: anything goes on an empty
// column, otherwise the run's bottom card must be able to rest on the top
// card. Every other zone takes exactly one card: a free cell must be free,
// the flower slot takes only the flower, and a pile takes the next number of
// its suit.
func (r Rules) Place(pf Playfield, run []deck.Card, to Position) (Playfield, error) {
	if err := to.check(); err != nil {
		return Playfield{}, err
	}

	next := pf.Clone()
	if err := r.place(&next, run, to); err != nil {
		return Playfield{}, err
	}
	return next, nil
}

// place puts the run on a board the caller owns. On error pf is unchanged.
func (r Rules) place(pf *Playfield, run []deck.Card, to Position) error {
	if len(run) == 0 {
		return ErrNoCards
	}

	if to.Zone == TableauZone {
		if top, ok := pf.top(to.Index); ok && !CanPlaceOnTop(run[0], top) {
			return ErrIncompatibleCard
		}
		pf.Tableau[to.Index] = append(pf.Tableau[to.Index], run...)
		return nil
	}

	if len(run) != 1 {
		return ErrTooManyCards
	}
	card := run[0]

	switch to.Zone {
	case FreeCellZone:
		cell := &pf.FreeCells[to.Index]
		switch cell.State {
		case InUse:
			return ErrCellOccupied
		case Flipped:
			return ErrCellLocked
		}
		*cell = InUseSlot(card)
		return nil

	case FlowerZone:
		if !card.IsFlower() {
			return ErrIncompatibleCard
		}
		pf.Flower = card
		return nil

	case PileZone:
		if !r.fitsPile(card, pf.Piles[to.Index]) {
			return ErrIncompatibleCard
		}
		pf.Piles[to.Index] = card
		return nil
	}

	return ErrIncompatibleCard
}

// fitsPile reports whether card may go on a pile whose top is top
func (r Rules) fitsPile(card, top deck.Card) bool {
	if !card.IsNumber() {
		return false
	}
	if top.IsZero() {
		return r.EmptyPileAnyRank || card.Rank == deck.MinRank
	}
	return top.IsNumber() && card.Suit == top.Suit && card.Rank == top.Rank+1
}
