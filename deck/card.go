package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents one of the three suits
type Suit int

const (
	Red Suit = iota
	Green
	Black
)

// Suits lists every suit in deal order
var Suits = []Suit{Red, Green, Black}

var suitNames = []string{"Red", "Green", "Black"}
var suitLetters = []string{"R", "G", "B"}

func (s Suit) String() string {
	if s < Red || s > Black {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Letter returns the one-letter code used in card notation
func (s Suit) Letter() string {
	if s < Red || s > Black {
		return "?"
	}
	return suitLetters[s]
}

var ErrUnknownSuit = errors.New("unknown suit")

// ParseSuit accepts a suit name or its letter, in any case
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	for i := range suitNames {
		if strings.EqualFold(s, suitNames[i]) || strings.EqualFold(s, suitLetters[i]) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

// Kind tells the three card variants apart.
// The zero Kind means "no card".
type Kind int

const (
	NumberKind Kind = iota + 1
	DragonKind
	FlowerKind
)

const (
	MinRank = 1
	MaxRank = 9
)

// Card is a Number, a Dragon or the Flower.
// Suit and Rank are only meaningful for the variants that carry them.
type Card struct {
	Kind Kind
	Suit Suit
	Rank int
}

// Number constructs a numbered card. It panics if rank is out of range.
func Number(suit Suit, rank int) Card {
	if rank < MinRank || rank > MaxRank || suit < Red || suit > Black {
		panic(fmt.Sprintf("card out of range: suit %d rank %d", suit, rank))
	}
	return Card{Kind: NumberKind, Suit: suit, Rank: rank}
}

// Dragon constructs a dragon of the given suit
func Dragon(suit Suit) Card {
	if suit < Red || suit > Black {
		panic(fmt.Sprintf("suit out of range: %d", suit))
	}
	return Card{Kind: DragonKind, Suit: suit}
}

// Flower returns the flower card
func Flower() Card {
	return Card{Kind: FlowerKind}
}

// IsZero reports whether c is the absence of a card
func (c Card) IsZero() bool {
	return c.Kind == 0
}

func (c Card) IsNumber() bool { return c.Kind == NumberKind }
func (c Card) IsDragon() bool { return c.Kind == DragonKind }
func (c Card) IsFlower() bool { return c.Kind == FlowerKind }

// String returns the short notation: R4, GD, FL
func (c Card) String() string {
	switch c.Kind {
	case NumberKind:
		return fmt.Sprintf("%s%d", c.Suit.Letter(), c.Rank)
	case DragonKind:
		return c.Suit.Letter() + "D"
	case FlowerKind:
		return "FL"
	}
	return "--"
}

var ErrBadCard = errors.New("cannot parse card")

// ParseCard is the inverse of Card.String
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "FL" {
		return Flower(), nil
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}

	suit, err := ParseSuit(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}

	if s[1] == 'D' {
		return Dragon(suit), nil
	}
	rank := int(s[1] - '0')
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	return Number(suit, rank), nil
}
