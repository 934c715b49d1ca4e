// Package game implements the rules of a three-suit solitaire: moving runs of
// cards between free cells, the flower slot, the discard piles and the
// tableau, and collecting exposed dragons into a locked free cell.
//
// Every operation takes a Playfield by value and returns a new one. A rejected
// operation returns the zero Playfield together with an error, and the board
// that was passed in is left exactly as it was.
package game

import (
	"errors"
	"fmt"
)

const (
	NumFreeCells = 3
	NumPiles     = 3
	NumColumns   = 8
	DealRows     = 5
)

// ErrRejected is the single category for illegal moves. Every reason below
// wraps it, so errors.Is(err, ErrRejected) holds for all of them.
var ErrRejected = errors.New("move rejected")

var (
	ErrNotASource        = reject("cards cannot be taken from the flower slot or a pile")
	ErrEmptySource       = reject("there is no card to take")
	ErrCellLocked        = reject("free cell is locked by a dragon flip")
	ErrBadCount          = reject("must move at least one card")
	ErrNotEnoughCards    = reject("column does not have that many cards")
	ErrIncoherentRun     = reject("cards do not form a run")
	ErrNoCards           = reject("no cards to place")
	ErrTooManyCards      = reject("only one card fits there")
	ErrCellOccupied      = reject("free cell is occupied")
	ErrIncompatibleCard  = reject("card does not fit there")
	ErrDragonsNotExposed = reject("all four dragons must be exposed")
	ErrNoFreeCell        = reject("no free cell for the dragons")
)

// ErrInvalidPosition reports a zone index outside its range. It is a caller
// error and does not wrap ErrRejected.
var ErrInvalidPosition = errors.New("invalid position")

// ErrBadDeal is returned when a deal is attempted with anything other than a full deck
var ErrBadDeal = errors.New("deck must hold the full set of 40 cards")

func reject(reason string) error {
	return fmt.Errorf("%w: %s", ErrRejected, reason)
}
