package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/dezgeg/shenzen-solitaire/game"
)

type CommandKind int

const (
	MoveCommand CommandKind = iota + 1
	FlipCommand
	HintCommand
	NewDealCommand
	QuitCommand
)

// Command is one line of player input
type Command struct {
	Kind CommandKind
	Move game.Move
	Suit deck.Suit
}

var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand reads one of
//
//	m <count> <from> <to>   move cards
//	d <suit>                collect the dragons of a suit
//	h                       list legal moves
//	n                       deal a new game
//	q                       quit
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	rest := strings.Join(fields[1:], " ")
	switch strings.ToLower(fields[0]) {
	case "m":
		m, err := game.ParseMove(rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: MoveCommand, Move: m}, nil

	case "d":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("expected \"d <suit>\", got %q", line)
		}
		suit, err := deck.ParseSuit(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: FlipCommand, Suit: suit}, nil
	}

	if len(fields) != 1 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	switch strings.ToLower(fields[0]) {
	case "h":
		return Command{Kind: HintCommand}, nil
	case "n":
		return Command{Kind: NewDealCommand}, nil
	case "q":
		return Command{Kind: QuitCommand}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}
