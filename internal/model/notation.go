package model

import "strings"

const (
	minNotationLen = 2
	maxNotationLen = 9
)

var metaCommands = map[string]MetaMove{
	"quit":    MetaQuit,
	"exit":    MetaQuit,
	"concede": MetaConcede,
	"flip":    MetaFlip,
}

// ParseNotation reads a move for toMove from text such as "e4", "Nbd2",
// "exd8=Q+" or "O-O". The result is not checked against any position and
// its origin may be partially or entirely unset; pass it to Disambiguate.
// The literal commands quit, exit, concede and flip produce meta moves.
func ParseNotation(input string, toMove Color) (Move, error) {
	if meta, ok := metaCommands[input]; ok {
		return Move{Meta: meta, Piece: Piece{Color: toMove}}, nil
	}
	if err := validateNotation(input); err != nil {
		return Move{}, err
	}

	m := Move{}
	s := input

	if strings.HasSuffix(s, "#") {
		m.Checkmate = true
		s = s[:len(s)-1]
	}
	if strings.HasSuffix(s, "+") {
		m.Check = true
		s = s[:len(s)-1]
	}
	if m.Check && m.Checkmate {
		return Move{}, ErrCheckAndMate
	}

	switch s {
	case "O-O":
		m.Castle = true
		m.Piece = Piece{Type: King, Color: toMove}
		return m, nil
	case "O-O-O":
		m.LongCastle = true
		m.Piece = Piece{Type: King, Color: toMove}
		return m, nil
	}

	if len(s) > 2 && s[len(s)-2] == '=' {
		kind, ok := PieceTypeFromLetter(s[len(s)-1])
		if !ok {
			return Move{}, ErrUnknownPiece
		}
		m.Promotion = kind
		s = s[:len(s)-2]
	}

	if len(s) < 2 {
		return Move{}, ErrInvalidSquare
	}
	dest, ok := ParseSquare(s[len(s)-2:])
	if !ok {
		return Move{}, ErrInvalidSquare
	}
	m.Dest = dest
	s = s[:len(s)-2]

	if strings.HasSuffix(s, "x") {
		m.Takes = true
		s = s[:len(s)-1]
	}

	n := squareNotationEnding(s)
	m.Origin = partialSquare(s[len(s)-n:])
	s = s[:len(s)-n]

	kind := Pawn
	switch len(s) {
	case 0:
	case 1:
		if kind, ok = PieceTypeFromLetter(s[0]); !ok {
			return Move{}, ErrUnknownPiece
		}
	default:
		return Move{}, ErrUnknownPiece
	}
	m.Piece = Piece{Type: kind, Color: toMove}
	return m, nil
}

func validateNotation(input string) error {
	for i := 0; i < len(input); i++ {
		if input[i] > 127 {
			return ErrNonASCII
		}
	}
	if len(input) < minNotationLen {
		return ErrTooShort
	}
	if len(input) > maxNotationLen {
		return ErrTooLong
	}
	return nil
}

// squareNotationEnding counts how many trailing characters of s form a
// square, a file or a rank.
func squareNotationEnding(s string) int {
	count := 0
	if len(s) >= 2 && FileFromLetter(s[len(s)-2]).Valid() {
		count++
	}
	if len(s) >= 1 {
		last := s[len(s)-1]
		if RankFromDigit(last).Valid() || (count == 0 && FileFromLetter(last).Valid()) {
			count++
		}
	}
	return count
}

// partialSquare reads "e4", "e" or "4". Anything else is NoSquare.
func partialSquare(s string) Square {
	switch len(s) {
	case 1:
		if f := FileFromLetter(s[0]); f.Valid() {
			return Square{File: f}
		}
		if r := RankFromDigit(s[0]); r.Valid() {
			return Square{Rank: r}
		}
	case 2:
		if sq, ok := ParseSquare(s); ok {
			return sq
		}
	}
	return NoSquare
}

// ShortNotation renders m for the current position the way players write
// it: pawn moves carry only the origin file when capturing, other pieces
// get the least origin hint that makes the move resolve to a single piece.
// m must be a resolved move for the side to move.
func (g *Game) ShortNotation(m Move) string {
	if m.IsCastle() {
		return m.Notation()
	}

	var b strings.Builder
	if m.Piece.Type == Pawn {
		if m.Takes {
			b.WriteString(m.Origin.File.String())
		}
	} else {
		b.WriteString(m.Piece.Type.Letter())
		b.WriteString(g.originHint(m))
	}
	if m.Takes {
		b.WriteByte('x')
	}
	b.WriteString(m.Dest.String())
	if m.Promotion != None {
		b.WriteString("=" + promotionLetter(m.Promotion))
	}
	b.WriteString(m.suffix())
	return b.String()
}

// originHint finds the shortest prefix that separates m's origin from the
// other pieces that could also reach m.Dest.
func (g *Game) originHint(m Move) string {
	rivals := []Square{}
	for _, sq := range g.matchingSquares(NoSquare, m.Piece) {
		if sq == m.Origin {
			continue
		}
		cur := m
		cur.Origin = sq
		cur.Piece = g.board.At(sq)
		if g.IsValidMove(&cur) == nil {
			rivals = append(rivals, sq)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File == m.Origin.File
		sameRank = sameRank || sq.Rank == m.Origin.Rank
	}
	switch {
	case !sameFile:
		return m.Origin.File.String()
	case !sameRank:
		return m.Origin.Rank.String()
	default:
		return m.Origin.String()
	}
}
