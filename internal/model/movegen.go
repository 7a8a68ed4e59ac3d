package model

// offset is a file/rank step.
type offset struct {
	df, dr int
}

var (
	rookDirs   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = queenDirs
)

var promotionTypes = []PieceType{Knight, Bishop, Rook, Queen}

// PseudoMoves lists the moves the piece on sq could make by its movement
// pattern and the board's occupancy, ignoring whether the mover's own king
// is left attacked. Castles are not included.
func (g *Game) PseudoMoves(sq Square) []Move {
	piece := g.board.At(sq)
	switch piece.Type {
	case Pawn:
		return g.pseudoPawnMoves(sq, piece)
	case Knight:
		return g.pseudoStepMoves(sq, piece, knightDirs)
	case Bishop:
		return g.pseudoSlideMoves(sq, piece, bishopDirs)
	case Rook:
		return g.pseudoSlideMoves(sq, piece, rookDirs)
	case Queen:
		return g.pseudoSlideMoves(sq, piece, queenDirs)
	case King:
		return g.pseudoStepMoves(sq, piece, kingDirs)
	default:
		return nil
	}
}

func (g *Game) pseudoPawnMoves(sq Square, piece Piece) []Move {
	dir := pawnDirection(piece.Color)
	targets := make([]Square, 0, 4)

	if one := sq.Offset(0, dir); one.Valid() && g.board.At(one).Empty() {
		targets = append(targets, one)
		if two := sq.Offset(0, 2*dir); two.Valid() && !piece.HasMoved && g.board.At(two).Empty() {
			targets = append(targets, two)
		}
	}
	for _, df := range []int{-1, 1} {
		diag := sq.Offset(df, dir)
		if !diag.Valid() {
			continue
		}
		target := g.board.At(diag)
		if (!target.Empty() && target.Color != piece.Color) || g.isEnPassant(sq, diag, piece) {
			targets = append(targets, diag)
		}
	}

	moves := make([]Move, 0, len(targets))
	for _, to := range targets {
		if to.Rank.Index() == promotionRank(piece.Color) {
			for _, p := range promotionTypes {
				moves = append(moves, Move{Origin: sq, Dest: to, Piece: piece, Promotion: p})
			}
			continue
		}
		moves = append(moves, Move{Origin: sq, Dest: to, Piece: piece})
	}
	return moves
}

func (g *Game) pseudoStepMoves(sq Square, piece Piece, dirs []offset) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		to := sq.Offset(dir.df, dir.dr)
		if !to.Valid() {
			continue
		}
		if target := g.board.At(to); target.Empty() || target.Color != piece.Color {
			moves = append(moves, Move{Origin: sq, Dest: to, Piece: piece})
		}
	}
	return moves
}

func (g *Game) pseudoSlideMoves(sq Square, piece Piece, dirs []offset) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		to := sq.Offset(dir.df, dir.dr)
		for to.Valid() {
			target := g.board.At(to)
			if target.Empty() {
				moves = append(moves, Move{Origin: sq, Dest: to, Piece: piece})
			} else {
				if target.Color != piece.Color {
					moves = append(moves, Move{Origin: sq, Dest: to, Piece: piece})
				}
				break
			}
			to = to.Offset(dir.df, dir.dr)
		}
	}
	return moves
}

// castleCandidates are the two fixed castle moves for the side to move.
func (g *Game) castleCandidates() []Move {
	king := Piece{Type: King, Color: g.toMove}
	rank := backRank(g.toMove)
	return []Move{
		{Origin: Sq(4, rank), Dest: Sq(6, rank), Piece: king, Castle: true},
		{Origin: Sq(4, rank), Dest: Sq(2, rank), Piece: king, LongCastle: true},
	}
}

// ListValidMoves returns every legal move for the side to move, scanning
// the board file by file and rank by rank, with castles last.
func (g *Game) ListValidMoves() []Move {
	moves := []Move{}
	g.eachLegalMove(func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// AnyValidMoves reports whether the side to move has a legal move.
func (g *Game) AnyValidMoves() bool {
	found := false
	g.eachLegalMove(func(Move) bool {
		found = true
		return false
	})
	return found
}

// eachLegalMove feeds legal moves to yield until it returns false.
func (g *Game) eachLegalMove(yield func(Move) bool) {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			piece := g.board[f][r]
			if piece.Empty() || piece.Color != g.toMove {
				continue
			}
			for _, m := range g.PseudoMoves(Sq(f, r)) {
				if g.IsValidMove(&m) == nil && g.leavesKingSafe(m) {
					if !yield(m) {
						return
					}
				}
			}
		}
	}
	for _, m := range g.castleCandidates() {
		if g.IsValidMove(&m) == nil && g.leavesKingSafe(m) {
			if !yield(m) {
				return
			}
		}
	}
}
