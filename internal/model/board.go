package model

type PieceType string

const (
	None   PieceType = ""
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Letter is the notation letter for the piece type. Pawns have none.
func (p PieceType) Letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Name is the capitalised piece name used in move descriptions.
func (p PieceType) Name() string {
	switch p {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	}
	return "None"
}

// PieceTypeFromLetter maps P, N, B, R, Q and K to their piece type.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return None, false
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Name() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// backRank is the 0-based rank the color's pieces start on.
func backRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func rookCastleFile(long bool) int {
	if long {
		return 0
	}
	return 7
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// Empty reports whether the square holding p is unoccupied.
func (p Piece) Empty() bool {
	return p.Type == None
}

// Matches compares kind and color, ignoring movement history.
func (p Piece) Matches(o Piece) bool {
	return p.Type == o.Type && p.Color == o.Color
}

// Board is indexed [file][rank], both 0-based.
type Board [8][8]Piece

// At returns the piece on sq. Off-board squares read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b[sq.File.Index()][sq.Rank.Index()]
}

func (b *Board) Set(sq Square, p Piece) {
	b[sq.File.Index()][sq.Rank.Index()] = p
}

func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// FindKing scans for the color's king.
func (b *Board) FindKing(color Color) (Square, bool) {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			if b[f][r].Type == King && b[f][r].Color == color {
				return Sq(f, r), true
			}
		}
	}
	return NoSquare, false
}

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func standardBoard() Board {
	var b Board
	for f := 0; f < 8; f++ {
		b[f][0] = Piece{Type: backRankOrder[f], Color: White}
		b[f][1] = Piece{Type: Pawn, Color: White}
		b[f][6] = Piece{Type: Pawn, Color: Black}
		b[f][7] = Piece{Type: backRankOrder[f], Color: Black}
	}
	return b
}
