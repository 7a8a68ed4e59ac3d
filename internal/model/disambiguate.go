package model

// Disambiguate resolves a parsed move against the board. The origin hint
// (nothing, a file, a rank or a full square) selects candidate pieces
// matching m's kind and color, and each candidate is checked with
// IsValidMove. Exactly one candidate must remain; it replaces m.
//
// A move nothing can make and a move several pieces can make both return
// ErrUnresolvable. Self-check is not considered here.
func (g *Game) Disambiguate(m *Move) error {
	if m.Meta != MetaNone {
		return nil
	}
	if m.IsCastle() {
		if err := g.IsValidCastle(*m); err != nil {
			return err
		}
		rank := backRank(g.toMove)
		m.Origin = Sq(4, rank)
		m.Dest = Sq(2, rank)
		if m.Castle {
			m.Dest = Sq(6, rank)
		}
		m.Piece = g.board.At(m.Origin)
		return nil
	}

	candidates := g.matchingSquares(m.Origin, m.Piece)
	if len(candidates) == 0 {
		return ErrNoMatchingPiece
	}

	resolved := make([]Move, 0, 1)
	for _, origin := range candidates {
		cur := *m
		cur.Origin = origin
		cur.Piece = g.board.At(origin)
		cur.EnPassant = NoSquare
		cur.PawnDouble = false
		if g.IsValidMove(&cur) == nil {
			resolved = append(resolved, cur)
		}
	}
	if len(resolved) != 1 {
		return ErrUnresolvable
	}
	*m = resolved[0]
	return nil
}

// matchingSquares lists the squares holding a piece that matches p and
// agrees with whatever part of hint is set.
func (g *Game) matchingSquares(hint Square, p Piece) []Square {
	squares := []Square{}
	for f := 0; f < 8; f++ {
		if hint.File.Valid() && hint.File.Index() != f {
			continue
		}
		for r := 0; r < 8; r++ {
			if hint.Rank.Valid() && hint.Rank.Index() != r {
				continue
			}
			if g.board[f][r].Matches(p) {
				squares = append(squares, Sq(f, r))
			}
		}
	}
	return squares
}
