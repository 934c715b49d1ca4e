package deck

import (
	"math/rand"
)

const (
	DragonsPerSuit = 4
	// Size is the number of cards in a full deck
	Size = 1 + (MaxRank+DragonsPerSuit)*3
)

// Deck represents a deck of cards
type Deck []Card

// New creates a deck of cards in canonical order:
// the flower, then for each suit its numbers 1-9 followed by its four dragons.
func New() Deck {
	cards := Deck{Flower()}
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Number(suit, rank))
		}
		for i := 0; i < DragonsPerSuit; i++ {
			cards = append(cards, Dragon(suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck in place using the given source.
// The deck never seeds its own randomness so that a deal can be replayed.
func (d Deck) Shuffle(r *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Counts returns how many of each card the deck holds
func (d Deck) Counts() map[Card]int {
	counts := map[Card]int{}
	for _, c := range d {
		counts[c]++
	}
	return counts
}

// KindCounts returns the number of numbers, dragons and flowers
func (d Deck) KindCounts() (numbers, dragons, flowers int) {
	for _, c := range d {
		switch c.Kind {
		case NumberKind:
			numbers++
		case DragonKind:
			dragons++
		case FlowerKind:
			flowers++
		}
	}
	return numbers, dragons, flowers
}

// IsComplete reports whether d holds exactly the cards of New(), in any order
func (d Deck) IsComplete() bool {
	if len(d) != Size {
		return false
	}
	want := New().Counts()
	got := d.Counts()
	if len(got) != len(want) {
		return false
	}
	for c, n := range want {
		if got[c] != n {
			return false
		}
	}
	return true
}
