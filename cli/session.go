package cli

import (
	"bufio"
	"io"
	"math/rand"
	"strings"

	"github.com/dezgeg/shenzen-solitaire/display"
	"github.com/dezgeg/shenzen-solitaire/game"
)

const (
	promptText   = "> "
	rejectedText = "Rejected: %s\n"
	invalidText  = "Invalid input: %s\n"
	noMovesText  = "No legal moves.\n"
	goodbyeText  = "Bye.\n"
	helpText     = `Commands:
  m <count> <from> <to>   move cards, e.g. "m 2 t3 t5"
  d <suit>                collect four exposed dragons, e.g. "d red"
  h                       list legal moves
  n                       deal a new game
  q                       quit
Positions: f0-f2 free cells, fl flower, p0-p2 piles, t0-t7 tableau.
`
)

// Session plays one board interactively over a reader and a writer
type Session struct {
	Rules game.Rules
	Board game.Playfield
	In    io.Reader
	Out   io.Writer
	Rand  *rand.Rand
}

// NewSession deals a fresh board from r
func NewSession(rules game.Rules, r *rand.Rand, in io.Reader, out io.Writer) *Session {
	return &Session{
		Rules: rules,
		Board: game.NewShuffledPlayfield(r),
		In:    in,
		Out:   out,
		Rand:  r,
	}
}

// Run reads commands until "q" or the end of input.
// A rejected command leaves the board as it was.
func (s *Session) Run() error {
	scanner := bufio.NewScanner(s.In)

	display.SendText(s.Out, helpText)
	s.show()

	for {
		display.SendText(s.Out, promptText)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			display.SendText(s.Out, invalidText, err)
			continue
		}

		switch cmd.Kind {
		case QuitCommand:
			display.SendText(s.Out, goodbyeText)
			return nil

		case HintCommand:
			s.hint()

		case NewDealCommand:
			s.Board = game.NewShuffledPlayfield(s.Rand)
			s.show()

		case MoveCommand:
			s.update(s.Rules.ApplyMove(s.Board, cmd.Move))

		case FlipCommand:
			s.update(s.Rules.FlipDragon(s.Board, cmd.Suit))
		}
	}
}

func (s *Session) update(next game.Playfield, err error) {
	if err != nil {
		display.SendText(s.Out, rejectedText, err)
		return
	}
	s.Board = next
	s.show()
}

func (s *Session) hint() {
	moves := s.Rules.LegalMoves(s.Board)
	if len(moves) == 0 {
		display.SendText(s.Out, noMovesText)
		return
	}
	for _, m := range moves {
		display.SendText(s.Out, "  m %s\n", m)
	}
}

func (s *Session) show() {
	display.SendText(s.Out, "\n%s\n", display.Render(s.Board))
}
