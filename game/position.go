package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone is one of the four areas of the board
type Zone int

const (
	FreeCellZone Zone = iota
	FlowerZone
	PileZone
	TableauZone
)

var zoneNames = map[Zone]string{
	FreeCellZone: "FreeCell",
	FlowerZone:   "Flower",
	PileZone:     "Pile",
	TableauZone:  "Tableau",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("Zone(%d)", int(z))
}

// Position addresses one slot of the board. Index is ignored for the flower slot.
type Position struct {
	Zone  Zone
	Index int
}

func FreeCellAt(i int) Position { return Position{Zone: FreeCellZone, Index: i} }
func FlowerSlot() Position      { return Position{Zone: FlowerZone} }
func PileAt(i int) Position     { return Position{Zone: PileZone, Index: i} }
func TableauAt(i int) Position  { return Position{Zone: TableauZone, Index: i} }

// Valid reports whether the index is in range for the zone
func (p Position) Valid() bool {
	switch p.Zone {
	case FreeCellZone:
		return p.Index >= 0 && p.Index < NumFreeCells
	case FlowerZone:
		return true
	case PileZone:
		return p.Index >= 0 && p.Index < NumPiles
	case TableauZone:
		return p.Index >= 0 && p.Index < NumColumns
	}
	return false
}

func (p Position) check() error {
	if !p.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	return nil
}

// String returns the short notation: f0, fl, p2, t7
func (p Position) String() string {
	switch p.Zone {
	case FreeCellZone:
		return "f" + strconv.Itoa(p.Index)
	case FlowerZone:
		return "fl"
	case PileZone:
		return "p" + strconv.Itoa(p.Index)
	case TableauZone:
		return "t" + strconv.Itoa(p.Index)
	}
	return fmt.Sprintf("%s(%d)", p.Zone, p.Index)
}

// ParsePosition is the inverse of Position.String. The returned position is
// always in range.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "fl" {
		return FlowerSlot(), nil
	}
	if len(s) < 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	i, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	var p Position
	switch s[0] {
	case 'f':
		p = FreeCellAt(i)
	case 'p':
		p = PileAt(i)
	case 't':
		p = TableauAt(i)
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	if err := p.check(); err != nil {
		return Position{}, err
	}
	return p, nil
}

// Move takes Count cards from From and puts them on To as one unit
type Move struct {
	Count int
	From  Position
	To    Position
}

func (m Move) String() string {
	return fmt.Sprintf("%d %s %s", m.Count, m.From, m.To)
}

// ParseMove reads a move in "<count> <from> <to>" notation
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Move{}, fmt.Errorf("expected \"<count> <from> <to>\", got %q", s)
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("bad card count %q", fields[0])
	}
	from, err := ParsePosition(fields[1])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(fields[2])
	if err != nil {
		return Move{}, err
	}

	return Move{Count: count, From: from, To: to}, nil
}
