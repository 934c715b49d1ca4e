package game

import (
	"fmt"
	"math/rand"

	"github.com/dezgeg/shenzen-solitaire/deck"
)

// Deal lays out a full deck in the order given: card i goes to column i mod 8,
// so the columns fill row by row and each ends up with five cards.
func Deal(d deck.Deck) (Playfield, error) {
	if !d.IsComplete() {
		return Playfield{}, ErrBadDeal
	}

	var pf Playfield
	for i := range pf.Tableau {
		pf.Tableau[i] = make([]deck.Card, 0, DealRows)
	}
	for i, c := range d {
		col := i % NumColumns
		pf.Tableau[col] = append(pf.Tableau[col], c)
	}
	return pf, nil
}

// NewShuffledPlayfield shuffles a new deck with r and deals it
func NewShuffledPlayfield(r *rand.Rand) Playfield {
	d := deck.New()
	d.Shuffle(r)
	pf, err := Deal(d)
	if err != nil {
		// a freshly built deck is always complete
		panic(err)
	}
	return pf
}

// Validate checks that every card of the deck is on the board exactly once.
// Cards buried in a pile are implied by its top card when piles start at 1;
// when any rank may start a pile, buried cards cannot be known and only
// duplicates are reported.
func (r Rules) Validate(pf Playfield) error {
	if !pf.Flower.IsZero() && !pf.Flower.IsFlower() {
		return fmt.Errorf("flower slot holds %s", pf.Flower)
	}

	seen := map[deck.Card]int{}
	for i, cell := range pf.FreeCells {
		switch cell.State {
		case InUse:
			if cell.Card.IsZero() {
				return fmt.Errorf("free cell %d is in use but empty", i)
			}
			seen[cell.Card]++
		case Flipped:
			if !cell.Card.IsDragon() {
				return fmt.Errorf("free cell %d is flipped without a dragon", i)
			}
			seen[cell.Card] += deck.DragonsPerSuit
		}
	}
	if pf.Flower.IsFlower() {
		seen[pf.Flower]++
	}
	for i, top := range pf.Piles {
		if top.IsZero() {
			continue
		}
		if !top.IsNumber() {
			return fmt.Errorf("pile %d holds %s", i, top)
		}
		if r.EmptyPileAnyRank {
			seen[top]++
			continue
		}
		for rank := deck.MinRank; rank <= top.Rank; rank++ {
			seen[deck.Number(top.Suit, rank)]++
		}
	}
	for _, col := range pf.Tableau {
		for _, c := range col {
			seen[c]++
		}
	}

	for c, want := range deck.New().Counts() {
		got := seen[c]
		if got > want || (got < want && !r.EmptyPileAnyRank) {
			return fmt.Errorf("card %s appears %d times, want %d", c, got, want)
		}
		delete(seen, c)
	}
	for c := range seen {
		return fmt.Errorf("unexpected card %s", c)
	}
	return nil
}
