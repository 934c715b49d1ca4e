package game

// ApplyMove picks up m.Count cards from m.From and places them on m.To as a
// single step. If either half is rejected the whole move is rejected and no
// board is returned; the board with the cards lifted is never exposed.
func (r Rules) ApplyMove(pf Playfield, m Move) (Playfield, error) {
	if err := m.From.check(); err != nil {
		return Playfield{}, err
	}
	if err := m.To.check(); err != nil {
		return Playfield{}, err
	}

	next := pf.Clone()
	run, err := next.pickUp(m.Count, m.From)
	if err != nil {
		return Playfield{}, err
	}
	if err := r.place(&next, run, m.To); err != nil {
		return Playfield{}, err
	}
	return next, nil
}

// IsLegalMove reports whether ApplyMove would accept m
func (r Rules) IsLegalMove(pf Playfield, m Move) bool {
	_, err := r.ApplyMove(pf, m)
	return err == nil
}

// LegalMoves lists every legal move on pf. Sources are scanned free cells
// first, then tableau columns with shorter runs before longer ones.
// Destinations are scanned in zone order. Moves that put a run back where it
// came from are left out.
func (r Rules) LegalMoves(pf Playfield) []Move {
	var sources []Move
	for i := 0; i < NumFreeCells; i++ {
		sources = append(sources, Move{Count: 1, From: FreeCellAt(i)})
	}
	for i := 0; i < NumColumns; i++ {
		for n := 1; n <= len(pf.Tableau[i]); n++ {
			sources = append(sources, Move{Count: n, From: TableauAt(i)})
		}
	}

	moves := []Move{}
	for _, src := range sources {
		for _, to := range allPositions() {
			if to == src.From {
				continue
			}
			m := Move{Count: src.Count, From: src.From, To: to}
			if r.IsLegalMove(pf, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func allPositions() []Position {
	ps := make([]Position, 0, NumFreeCells+1+NumPiles+NumColumns)
	for i := 0; i < NumFreeCells; i++ {
		ps = append(ps, FreeCellAt(i))
	}
	ps = append(ps, FlowerSlot())
	for i := 0; i < NumPiles; i++ {
		ps = append(ps, PileAt(i))
	}
	for i := 0; i < NumColumns; i++ {
		ps = append(ps, TableauAt(i))
	}
	return ps
}
