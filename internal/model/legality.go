package model

// IsAttacked reports whether any piece of color's opponent attacks sq.
// Pawn forward pushes never attack; only their diagonals do.
func (b *Board) IsAttacked(sq Square, color Color) bool {
	enemy := color.Opposite()
	is := func(at Square, types ...PieceType) bool {
		p := b.At(at)
		if p.Empty() || p.Color != enemy {
			return false
		}
		for _, t := range types {
			if p.Type == t {
				return true
			}
		}
		return false
	}

	for _, dir := range rookDirs {
		if at := b.firstOccupied(sq, dir); at.Valid() && is(at, Rook, Queen) {
			return true
		}
	}
	for _, dir := range bishopDirs {
		if at := b.firstOccupied(sq, dir); at.Valid() && is(at, Bishop, Queen) {
			return true
		}
	}
	for _, dir := range knightDirs {
		if is(sq.Offset(dir.df, dir.dr), Knight) {
			return true
		}
	}
	for _, dir := range kingDirs {
		if is(sq.Offset(dir.df, dir.dr), King) {
			return true
		}
	}
	// an enemy pawn attacks from one rank behind sq in its own direction
	back := -pawnDirection(enemy)
	return is(sq.Offset(-1, back), Pawn) || is(sq.Offset(1, back), Pawn)
}

// firstOccupied walks from sq along dir and returns the first occupied
// square, or NoSquare.
func (b *Board) firstOccupied(sq Square, dir offset) Square {
	at := sq.Offset(dir.df, dir.dr)
	for at.Valid() {
		if !b.At(at).Empty() {
			return at
		}
		at = at.Offset(dir.df, dir.dr)
	}
	return NoSquare
}

// clearBetween reports whether every square strictly between from and to
// is empty. The squares must share a file, rank or diagonal.
func (b *Board) clearBetween(from, to Square) bool {
	df := sign(to.File.Index() - from.File.Index())
	dr := sign(to.Rank.Index() - from.Rank.Index())
	at := from.Offset(df, dr)
	for at.Valid() && at != to {
		if !b.At(at).Empty() {
			return false
		}
		at = at.Offset(df, dr)
	}
	return true
}

// IsCheckColor reports whether color's king is attacked. A missing king is
// never in check.
func (g *Game) IsCheckColor(color Color) bool {
	king, ok := g.board.FindKing(color)
	if !ok {
		return false
	}
	return g.board.IsAttacked(king, color)
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return g.IsCheckColor(g.toMove)
}

// isEnPassant reports whether a pawn on from taking diagonally onto to
// captures the pawn that double-stepped on the previous ply.
func (g *Game) isEnPassant(from, to Square, piece Piece) bool {
	if piece.Type != Pawn || !g.epVictim.Valid() {
		return false
	}
	dir := pawnDirection(piece.Color)
	if abs(to.File.Index()-from.File.Index()) != 1 || to.Rank.Index()-from.Rank.Index() != dir {
		return false
	}
	if !g.board.At(to).Empty() {
		return false
	}
	victim := to.Offset(0, -dir)
	if victim != g.epVictim {
		return false
	}
	v := g.board.At(victim)
	return v.Type == Pawn && v.Color != piece.Color
}

// IsValidMove checks m against the position, ignoring self-check. It fills
// in the derived flags: takes, en passant and pawn double step.
func (g *Game) IsValidMove(m *Move) error {
	if m.IsCastle() {
		return g.IsValidCastle(*m)
	}
	if !m.Origin.Valid() || !m.Dest.Valid() {
		return ErrCannotMove
	}
	if !g.board.At(m.Origin).Matches(m.Piece) {
		return ErrNoPiece
	}

	dest := g.board.At(m.Dest)
	if !dest.Empty() && dest.Color == m.Piece.Color {
		return ErrOwnPieceAtDest
	}
	if m.Origin == m.Dest {
		return ErrSameSquare
	}
	if !dest.Empty() {
		m.Takes = true
	} else if m.Takes && !g.isEnPassant(m.Origin, m.Dest, m.Piece) {
		return ErrNothingToTake
	}

	var ok bool
	switch m.Piece.Type {
	case Pawn:
		ok = g.validPawnMove(m)
	case Knight:
		ok = knightPattern(m.Origin, m.Dest)
	case Bishop:
		ok = bishopPattern(m.Origin, m.Dest) && g.board.clearBetween(m.Origin, m.Dest)
	case Rook:
		ok = rookPattern(m.Origin, m.Dest) && g.board.clearBetween(m.Origin, m.Dest)
	case Queen:
		ok = (rookPattern(m.Origin, m.Dest) || bishopPattern(m.Origin, m.Dest)) && g.board.clearBetween(m.Origin, m.Dest)
	case King:
		ok = kingPattern(m.Origin, m.Dest)
	}
	if !ok {
		return ErrCannotMove
	}
	if m.Piece.Type != Pawn && m.Promotion != None {
		return ErrCannotMove
	}
	return nil
}

func (g *Game) validPawnMove(m *Move) bool {
	m.EnPassant = NoSquare
	m.PawnDouble = false
	return (g.pawnCaptures(m) || g.pawnPushes(m)) && validPromotion(*m)
}

func (g *Game) pawnCaptures(m *Move) bool {
	dir := pawnDirection(m.Piece.Color)
	df := m.Dest.File.Index() - m.Origin.File.Index()
	dr := m.Dest.Rank.Index() - m.Origin.Rank.Index()
	if abs(df) != 1 || dr != dir {
		return false
	}
	if !g.board.At(m.Dest).Empty() {
		return true
	}
	if g.isEnPassant(m.Origin, m.Dest, m.Piece) {
		m.EnPassant = m.Dest.Offset(0, -dir)
		m.Takes = true
		return true
	}
	return false
}

func (g *Game) pawnPushes(m *Move) bool {
	dir := pawnDirection(m.Piece.Color)
	df := m.Dest.File.Index() - m.Origin.File.Index()
	dr := m.Dest.Rank.Index() - m.Origin.Rank.Index()
	if df != 0 || !g.board.At(m.Dest).Empty() {
		return false
	}
	switch dr {
	case dir:
		return true
	case 2 * dir:
		origin := g.board.At(m.Origin)
		if origin.HasMoved || m.Origin.Rank.Index() != pawnStartRank(m.Piece.Color) {
			return false
		}
		if !g.board.At(m.Origin.Offset(0, dir)).Empty() {
			return false
		}
		m.PawnDouble = true
		return true
	}
	return false
}

// validPromotion: a pawn reaching the far rank must promote to a knight,
// bishop, rook or queen, and nothing else may promote.
func validPromotion(m Move) bool {
	onFarRank := m.Piece.Type == Pawn && m.Dest.Rank.Index() == promotionRank(m.Piece.Color)
	if !onFarRank {
		return m.Promotion == None
	}
	switch m.Promotion {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

func knightPattern(from, to Square) bool {
	df := abs(to.File.Index() - from.File.Index())
	dr := abs(to.Rank.Index() - from.Rank.Index())
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

func bishopPattern(from, to Square) bool {
	df := abs(to.File.Index() - from.File.Index())
	dr := abs(to.Rank.Index() - from.Rank.Index())
	return df != 0 && df == dr
}

func rookPattern(from, to Square) bool {
	df := to.File.Index() - from.File.Index()
	dr := to.Rank.Index() - from.Rank.Index()
	return (df == 0) != (dr == 0)
}

func kingPattern(from, to Square) bool {
	df := abs(to.File.Index() - from.File.Index())
	dr := abs(to.Rank.Index() - from.Rank.Index())
	return df+dr > 0 && df <= 1 && dr <= 1
}

// IsValidCastle checks the castle named by m for the side to move. The king
// and rook must be unmoved on their original squares, the king must not be
// in check, and the squares the king crosses must be empty and unattacked.
// Every square between king and rook must be empty.
func (g *Game) IsValidCastle(m Move) error {
	rank := backRank(g.toMove)
	kingSq := Sq(4, rank)
	rookSq := Sq(rookCastleFile(m.LongCastle), rank)

	king, rook := g.board.At(kingSq), g.board.At(rookSq)
	if king.Type != King || king.Color != g.toMove || king.HasMoved ||
		rook.Type != Rook || rook.Color != g.toMove || rook.HasMoved ||
		g.board.IsAttacked(kingSq, g.toMove) {
		return ErrCastleNotAllowed
	}

	crossed := []int{5, 6}
	if m.LongCastle {
		crossed = []int{3, 2}
	}
	for _, f := range crossed {
		sq := Sq(f, rank)
		if !g.board.At(sq).Empty() || g.board.IsAttacked(sq, g.toMove) {
			return ErrCastlePathBlocked
		}
	}
	if m.LongCastle {
		knightSq := Sq(1, rank)
		if !g.board.At(knightSq).Empty() || g.board.IsAttacked(knightSq, g.toMove) {
			return ErrCastlePathBlocked
		}
	}
	return nil
}

// leavesKingSafe plays m on a copy of the board and reports whether the
// mover's king is unattacked afterwards.
func (g *Game) leavesKingSafe(m Move) bool {
	b := g.board
	mover := m.Piece.Color
	applyToBoard(&b, m, mover)
	king, ok := b.FindKing(mover)
	if !ok {
		return true
	}
	return !b.IsAttacked(king, mover)
}

// applyToBoard moves the pieces for m and returns whatever was captured.
func applyToBoard(b *Board, m Move, mover Color) Piece {
	if m.IsCastle() {
		rank := backRank(mover)
		kingTo, rookFrom, rookTo := 6, 7, 5
		if m.LongCastle {
			kingTo, rookFrom, rookTo = 2, 0, 3
		}
		king := b.At(Sq(4, rank))
		king.HasMoved = true
		rook := b.At(Sq(rookFrom, rank))
		rook.HasMoved = true
		b.Clear(Sq(4, rank))
		b.Clear(Sq(rookFrom, rank))
		b.Set(Sq(kingTo, rank), king)
		b.Set(Sq(rookTo, rank), rook)
		return Piece{}
	}

	captured := b.At(m.Dest)
	if m.EnPassant.Valid() {
		captured = b.At(m.EnPassant)
		b.Clear(m.EnPassant)
	}
	piece := b.At(m.Origin)
	piece.HasMoved = true
	if m.Promotion != None {
		piece.Type = m.Promotion
	}
	b.Clear(m.Origin)
	b.Set(m.Dest, piece)
	return captured
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
