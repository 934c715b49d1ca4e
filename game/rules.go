package game

import (
	"github.com/dezgeg/shenzen-solitaire/deck"
)

// Rules holds the configurable parts of the rule set
type Rules struct {
	// EmptyPileAnyRank lets any number start an empty discard pile.
	// When false only a 1 may start a pile.
	EmptyPileAnyRank bool
}

// DefaultRules returns the standard rules: piles start at 1
func DefaultRules() Rules {
	return Rules{}
}

// CanPlaceOnTop reports whether upper may rest directly on lower: both must be
// numbers of different suits, with lower exactly one rank higher.
func CanPlaceOnTop(upper, lower deck.Card) bool {
	if !upper.IsNumber() || !lower.IsNumber() {
		return false
	}
	return upper.Suit != lower.Suit && lower.Rank == upper.Rank+1
}

// PickUp lifts count cards from a zone under the default rules. See Rules.PickUp.
func PickUp(pf Playfield, count int, from Position) (Playfield, []deck.Card, error) {
	return DefaultRules().PickUp(pf, count, from)
}

// Place puts run on to under the default rules. See Rules.Place.
func Place(pf Playfield, run []deck.Card, to Position) (Playfield, error) {
	return DefaultRules().Place(pf, run, to)
}

// ApplyMove applies m under the default rules. See Rules.ApplyMove.
func ApplyMove(pf Playfield, m Move) (Playfield, error) {
	return DefaultRules().ApplyMove(pf, m)
}

// IsLegalMove reports whether m is legal under the default rules
func IsLegalMove(pf Playfield, m Move) bool {
	return DefaultRules().IsLegalMove(pf, m)
}

// FlipDragon collects the dragons of suit under the default rules. See Rules.FlipDragon.
func FlipDragon(pf Playfield, suit deck.Suit) (Playfield, error) {
	return DefaultRules().FlipDragon(pf, suit)
}

// LegalMoves lists the legal moves under the default rules
func LegalMoves(pf Playfield) []Move {
	return DefaultRules().LegalMoves(pf)
}
