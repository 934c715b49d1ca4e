package game

import (
	"fmt"

	"github.com/dezgeg/shenzen-solitaire/deck"
)

// FreeCellState is the state of a single free cell
type FreeCellState int

const (
	Free FreeCellState = iota
	InUse
	// Flipped is terminal: the cell holds a collected set of dragons
	Flipped
)

var freeCellStateNames = []string{"Free", "InUse", "Flipped"}

func (s FreeCellState) String() string {
	if s < Free || s > Flipped {
		return fmt.Sprintf("FreeCellState(%d)", int(s))
	}
	return freeCellStateNames[s]
}

// FreeCell holds at most one card. A flipped cell remembers the suit of the
// dragons it collected, but that card can never be read or moved out.
type FreeCell struct {
	State FreeCellState
	Card  deck.Card
}

func FreeSlot() FreeCell { return FreeCell{State: Free} }

func InUseSlot(c deck.Card) FreeCell { return FreeCell{State: InUse, Card: c} }

func FlippedSlot(suit deck.Suit) FreeCell {
	return FreeCell{State: Flipped, Card: deck.Dragon(suit)}
}

// Playfield is the complete board. The last card of a tableau column is its top.
type Playfield struct {
	FreeCells [NumFreeCells]FreeCell
	// Flower is either the zero card or the flower
	Flower deck.Card
	// Piles hold only the topmost card of each discard pile
	Piles   [NumPiles]deck.Card
	Tableau [NumColumns][]deck.Card
}

// Clone returns a copy that shares no memory with pf
func (pf Playfield) Clone() Playfield {
	out := pf
	for i, col := range pf.Tableau {
		if col == nil {
			continue
		}
		out.Tableau[i] = append(make([]deck.Card, 0, len(col)), col...)
	}
	return out
}

// Equal compares two boards, treating nil and empty columns as the same
func (pf Playfield) Equal(other Playfield) bool {
	if pf.FreeCells != other.FreeCells || pf.Flower != other.Flower || pf.Piles != other.Piles {
		return false
	}
	for i := range pf.Tableau {
		a, b := pf.Tableau[i], other.Tableau[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// top returns the top card of column i, if any
func (pf *Playfield) top(i int) (deck.Card, bool) {
	col := pf.Tableau[i]
	if len(col) == 0 {
		return deck.Card{}, false
	}
	return col[len(col)-1], true
}

// CardAt returns the card visible at pos. Free and flipped cells, an empty
// flower slot or pile, an empty column and an out-of-range index all report
// no card.
func CardAt(pf Playfield, pos Position) (deck.Card, bool) {
	if !pos.Valid() {
		return deck.Card{}, false
	}

	switch pos.Zone {
	case FreeCellZone:
		cell := pf.FreeCells[pos.Index]
		if cell.State == InUse {
			return cell.Card, true
		}
		return deck.Card{}, false
	case FlowerZone:
		return pf.Flower, !pf.Flower.IsZero()
	case PileZone:
		c := pf.Piles[pos.Index]
		return c, !c.IsZero()
	case TableauZone:
		return pf.top(pos.Index)
	}
	return deck.Card{}, false
}

// FlippedSuits returns the suits that have been collected into free cells
func (pf Playfield) FlippedSuits() []deck.Suit {
	suits := []deck.Suit{}
	for _, cell := range pf.FreeCells {
		if cell.State == Flipped {
			suits = append(suits, cell.Card.Suit)
		}
	}
	return suits
}
