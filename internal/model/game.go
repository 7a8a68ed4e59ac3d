package model

// Status is the rules state of a game. Check is transient and not a status.
type Status string

const (
	StatusInProgress Status = "inProgress"
	StatusCheckmate  Status = "checkmate"
	StatusStalemate  Status = "stalemate"
	StatusConceded   Status = "conceded"
)

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// Game owns the board and the move history. It is not safe for concurrent
// use; callers serialise access.
type Game struct {
	board     Board
	toMove    Color
	turnCount uint32
	history   []Move
	captured  CapturedPieces
	status    Status
	winner    Color
	// epVictim is the pawn that double-stepped on the previous ply.
	epVictim Square
}

// NewGame returns an empty board with White to move.
func NewGame() *Game {
	return &Game{
		toMove:    White,
		turnCount: 1,
		history:   make([]Move, 0),
		captured:  newCapturedPieces(),
		status:    StatusInProgress,
	}
}

// NewStandardGame returns a game set up in the starting position.
func NewStandardGame() *Game {
	g := NewGame()
	g.SetupStandard()
	return g
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// SetupStandard resets the game to the starting position.
func (g *Game) SetupStandard() {
	g.reset()
	g.board = standardBoard()
}

func (g *Game) reset() {
	*g = *NewGame()
}

// Place puts p on sq, replacing whatever was there.
func (g *Game) Place(sq Square, p Piece) {
	g.board.Set(sq, p)
}

func (g *Game) SetToMove(c Color) {
	g.toMove = c
}

// Clone returns a deep copy that shares nothing with g.
func (g *Game) Clone() *Game {
	c := *g
	c.history = append(make([]Move, 0, len(g.history)), g.history...)
	c.captured = CapturedPieces{
		White: append(make([]Piece, 0, len(g.captured.White)), g.captured.White...),
		Black: append(make([]Piece, 0, len(g.captured.Black)), g.captured.Black...),
	}
	return &c
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) CurrentColor() Color {
	return g.toMove
}

func (g *Game) TurnCount() uint32 {
	return g.turnCount
}

// History returns a copy of the played moves.
func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

// LastMove returns the most recent history entry.
func (g *Game) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Captured returns a copy of the pieces captured by color.
func (g *Game) Captured(color Color) []Piece {
	src := g.captured.Black
	if color == White {
		src = g.captured.White
	}
	return append(make([]Piece, 0, len(src)), src...)
}

func (g *Game) Status() Status {
	return g.status
}

// Winner is the winning color once the game is decided, "" otherwise.
func (g *Game) Winner() Color {
	return g.winner
}

func (g *Game) IsOver() bool {
	return g.status != StatusInProgress
}

// DoMove applies an already validated move, appends it to the history and
// returns the state as it was before the move.
func (g *Game) DoMove(m Move) *Game {
	prev := g.Clone()
	mover := g.toMove

	captured := applyToBoard(&g.board, m, mover)
	if !captured.Empty() {
		if mover == White {
			g.captured.White = append(g.captured.White, captured)
		} else {
			g.captured.Black = append(g.captured.Black, captured)
		}
	}

	g.epVictim = NoSquare
	if m.PawnDouble {
		g.epVictim = m.Dest
	}

	m.Check = g.IsCheckColor(mover.Opposite())
	m.Checkmate = false
	g.history = append(g.history, m)
	return prev
}

// NextTurn passes the move to the other side. The turn counter advances
// when it is White's turn again.
func (g *Game) NextTurn() {
	g.toMove = g.toMove.Opposite()
	if g.toMove == White {
		g.turnCount++
	}
}

// MakeMove plays a whole ply for the side to move: it resolves m against
// the board, rejects moves that leave the mover in check, applies the move,
// passes the turn and settles checkmate or stalemate. On error the game is
// unchanged. Quit and concede resign for the side to move; flip is a no-op.
func (g *Game) MakeMove(m Move) (Move, error) {
	if g.IsOver() {
		return Move{}, ErrGameOver
	}
	switch m.Meta {
	case MetaQuit, MetaConcede:
		g.SetConcede(g.toMove)
		return m, nil
	case MetaFlip:
		return m, nil
	}

	if err := g.Disambiguate(&m); err != nil {
		return Move{}, err
	}
	if !g.leavesKingSafe(m) {
		return Move{}, ErrSelfCheck
	}

	g.DoMove(m)
	g.NextTurn()
	g.UpdateStatus()

	last, _ := g.LastMove()
	return last, nil
}

// UpdateStatus ends the game when the side to move has no legal moves:
// checkmate when in check, stalemate otherwise.
func (g *Game) UpdateStatus() Status {
	if g.IsOver() || g.AnyValidMoves() {
		return g.status
	}
	if g.IsCheck() {
		g.SetCheckmate()
	} else {
		g.SetStalemate()
	}
	return g.status
}

// SetCheckmate ends the game in favour of the side that just moved and
// marks the final history entry as checkmate.
func (g *Game) SetCheckmate() {
	g.status = StatusCheckmate
	g.winner = g.toMove.Opposite()
	g.finalizeLastEntry()
}

func (g *Game) SetStalemate() {
	g.status = StatusStalemate
	g.winner = ""
}

// SetConcede ends the game with color resigning.
func (g *Game) SetConcede(color Color) {
	g.status = StatusConceded
	g.winner = color.Opposite()
}

// finalizeLastEntry is the only edit ever made to a played move: its check
// flag becomes checkmate.
func (g *Game) finalizeLastEntry() {
	if len(g.history) == 0 {
		return
	}
	last := &g.history[len(g.history)-1]
	last.Checkmate = true
	last.Check = false
}
