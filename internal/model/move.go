package model

import "fmt"

// MetaMove carries commands that never touch the board.
type MetaMove int

const (
	MetaNone MetaMove = iota
	MetaQuit
	MetaConcede
	MetaFlip
)

func (m MetaMove) String() string {
	switch m {
	case MetaQuit:
		return "quit"
	case MetaConcede:
		return "concede"
	case MetaFlip:
		return "flip"
	}
	return "none"
}

// Move describes a single ply. Origin and Dest may be partially set while
// the move is still being resolved from notation.
type Move struct {
	Origin     Square    `json:"origin"`
	Dest       Square    `json:"dest"`
	Piece      Piece     `json:"piece"`
	Takes      bool      `json:"takes"`
	Check      bool      `json:"check"`
	Checkmate  bool      `json:"checkmate"`
	Castle     bool      `json:"castle"`
	LongCastle bool      `json:"longCastle"`
	PawnDouble bool      `json:"pawnDouble"`
	EnPassant  Square    `json:"enPassant"` // square of the pawn taken en passant
	Promotion  PieceType `json:"promotion,omitempty"`
	Meta       MetaMove  `json:"-"`
}

// IsCastle reports either castle.
func (m Move) IsCastle() bool {
	return m.Castle || m.LongCastle
}

func (m Move) suffix() string {
	if m.Checkmate {
		return "#"
	}
	if m.Check {
		return "+"
	}
	return ""
}

// Notation renders the long form: piece letter, origin, capture marker,
// destination, promotion and check suffix.
func (m Move) Notation() string {
	if m.Castle {
		return "O-O" + m.suffix()
	}
	if m.LongCastle {
		return "O-O-O" + m.suffix()
	}
	takes := ""
	if m.Takes {
		takes = "x"
	}
	promotion := ""
	if m.Promotion != None {
		promotion = "=" + promotionLetter(m.Promotion)
	}
	return fmt.Sprintf("%s%s%s%s%s%s", m.Piece.Type.Letter(), m.Origin, takes, m.Dest, promotion, m.suffix())
}

func promotionLetter(p PieceType) string {
	if p == Pawn {
		return "P"
	}
	return p.Letter()
}

// Describe renders the move as a sentence, e.g. "Knight on g1 to f3".
func (m Move) Describe() string {
	if m.Castle {
		return "Castles"
	}
	if m.LongCastle {
		return "Long Castles"
	}
	s := m.Piece.Type.Name()
	if m.Origin.IsSet() {
		s += " on " + m.Origin.String()
	}
	if m.Takes {
		s += " takes on "
	} else {
		s += " to "
	}
	s += m.Dest.String()
	if m.Promotion != None {
		s += " promotes to " + m.Promotion.Name()
	}
	if m.Checkmate {
		s += " with checkmate"
	} else if m.Check {
		s += " with check"
	}
	return s
}

func (m Move) String() string {
	return m.Notation()
}

// sameAction compares what a move does on the board, ignoring annotations.
func (m Move) sameAction(o Move) bool {
	if m.IsCastle() || o.IsCastle() {
		return m.Castle == o.Castle && m.LongCastle == o.LongCastle
	}
	return m.Origin == o.Origin && m.Dest == o.Dest && m.Promotion == o.Promotion
}
