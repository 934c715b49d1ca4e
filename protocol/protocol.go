package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/dezgeg/shenzen-solitaire/game"
)

// FlippedToken marks a locked free cell in a BoardView
const FlippedToken = "XX"

// BoardView is the JSON shape of a Playfield. Cards use their short notation
// and an empty string stands for an empty slot.
type BoardView struct {
	FreeCells []string   `json:"freeCells"`
	Flower    string     `json:"flower"`
	Piles     []string   `json:"piles"`
	Tableau   [][]string `json:"tableau"`
}

// NewBoardView converts a board for the wire
func NewBoardView(pf game.Playfield) *BoardView {
	v := &BoardView{
		FreeCells: make([]string, 0, game.NumFreeCells),
		Flower:    cardToken(pf.Flower),
		Piles:     make([]string, 0, game.NumPiles),
		Tableau:   make([][]string, 0, game.NumColumns),
	}

	for _, cell := range pf.FreeCells {
		switch cell.State {
		case game.Free:
			v.FreeCells = append(v.FreeCells, "")
		case game.InUse:
			v.FreeCells = append(v.FreeCells, cell.Card.String())
		case game.Flipped:
			v.FreeCells = append(v.FreeCells, FlippedToken)
		}
	}
	for _, top := range pf.Piles {
		v.Piles = append(v.Piles, cardToken(top))
	}
	for _, col := range pf.Tableau {
		tokens := make([]string, 0, len(col))
		for _, c := range col {
			tokens = append(tokens, c.String())
		}
		v.Tableau = append(v.Tableau, tokens)
	}

	return v
}

func cardToken(c deck.Card) string {
	if c.IsZero() {
		return ""
	}
	return c.String()
}

// InboundMessage is a message from a client to the server
type InboundMessage struct {
	Command Cmd    `json:"command"`
	Move    string `json:"move,omitempty"`
	Suit    string `json:"suit,omitempty"`
}

// OutboundMessage is a message from the server to a client
type OutboundMessage struct {
	GameID  string     `json:"gameID"`
	Command Cmd        `json:"command"`
	Board   *BoardView `json:"board,omitempty"`
	Moves   []string   `json:"moves,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// MoveStrings renders moves in "<count> <from> <to>" notation
func MoveStrings(moves []game.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

type Cmd int

const (
	Null Cmd = iota
	State
	Move
	Flip
	Error
)

var CmdNames = map[Cmd]string{
	Null:  "Null",
	State: "State",
	Move:  "Move",
	Flip:  "Flip",
	Error: "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":  Null,
	"State": State,
	"Move":  Move,
	"Flip":  Flip,
	"Error": Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

func (c Cmd) MarshalJSON() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return json.Marshal(name)
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, ok := NameToCmd[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	*c = cmd
	return nil
}
