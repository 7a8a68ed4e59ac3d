package model

import (
	"fmt"
	"strconv"
	"strings"
)

const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenLetters = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// LoadFEN replaces the game with the position described by fen. Castling
// rights become the has-moved flags of kings and rooks, and the en passant
// field marks the pawn that just double-stepped. The halfmove clock is
// accepted but not tracked.
func (g *Game) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return fmt.Errorf("%w: expected 4 to 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	next := NewGame()
	if err := next.loadPlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		next.toMove = White
	case "b":
		next.toMove = Black
	default:
		return fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if err := next.loadCastling(fields[2]); err != nil {
		return err
	}

	if fields[3] != "-" {
		target, ok := ParseSquare(fields[3])
		if !ok {
			return fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
		// the pawn that moved sits one rank past the target, away from the side to move
		victim := target.Offset(0, -pawnDirection(next.toMove))
		if p := next.board.At(victim); p.Type == Pawn && p.Color != next.toMove {
			next.epVictim = victim
		}
	}

	if len(fields) == 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		next.turnCount = uint32(n)
	}

	for _, c := range []Color{White, Black} {
		if _, ok := next.board.FindKing(c); !ok {
			return fmt.Errorf("%w: missing %s king", ErrInvalidFEN, c)
		}
	}

	*g = *next
	g.UpdateStatus()
	return nil
}

func (g *Game) loadPlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := fenLetters[toLower(c)]
			if !ok || file > 7 {
				return fmt.Errorf("%w: rank %d %q", ErrInvalidFEN, rank+1, row)
			}
			color := Black
			if c >= 'A' && c <= 'Z' {
				color = White
			}
			p := Piece{Type: kind, Color: color}
			// pawns and kings/rooks off their home squares have moved
			switch kind {
			case Pawn:
				p.HasMoved = rank != pawnStartRank(color)
			case King, Rook:
				p.HasMoved = true
			}
			g.board[file][rank] = p
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d %q", ErrInvalidFEN, rank+1, row)
		}
	}
	return nil
}

func (g *Game) loadCastling(rights string) error {
	if rights == "-" {
		return nil
	}
	for i := 0; i < len(rights); i++ {
		var color Color
		var long bool
		switch rights[i] {
		case 'K':
			color, long = White, false
		case 'Q':
			color, long = White, true
		case 'k':
			color, long = Black, false
		case 'q':
			color, long = Black, true
		default:
			return fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, rights)
		}
		rank := backRank(color)
		kingSq, rookSq := Sq(4, rank), Sq(rookCastleFile(long), rank)
		king, rook := g.board.At(kingSq), g.board.At(rookSq)
		if king.Type != King || king.Color != color || rook.Type != Rook || rook.Color != color {
			return fmt.Errorf("%w: castling right %c without king and rook", ErrInvalidFEN, rights[i])
		}
		king.HasMoved = false
		rook.HasMoved = false
		g.board.Set(kingSq, king)
		g.board.Set(rookSq, rook)
	}
	return nil
}

// FEN describes the current position. The halfmove clock is always 0.
func (g *Game) FEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := g.board[file][rank]
			if p.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(fenLetter(p))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	side := "w"
	if g.toMove == Black {
		side = "b"
	}

	castling := ""
	for _, c := range []struct {
		color  Color
		long   bool
		letter string
	}{{White, false, "K"}, {White, true, "Q"}, {Black, false, "k"}, {Black, true, "q"}} {
		if g.canStillCastle(c.color, c.long) {
			castling += c.letter
		}
	}
	if castling == "" {
		castling = "-"
	}

	ep := "-"
	if g.epVictim.Valid() {
		victim := g.board.At(g.epVictim)
		ep = g.epVictim.Offset(0, -pawnDirection(victim.Color)).String()
	}

	return fmt.Sprintf("%s %s %s %s 0 %d", b.String(), side, castling, ep, g.turnCount)
}

// canStillCastle reports whether king and rook are unmoved on their home
// squares, regardless of whether castling is possible right now.
func (g *Game) canStillCastle(color Color, long bool) bool {
	rank := backRank(color)
	king, rook := g.board.At(Sq(4, rank)), g.board.At(Sq(rookCastleFile(long), rank))
	return king.Type == King && king.Color == color && !king.HasMoved &&
		rook.Type == Rook && rook.Color == color && !rook.HasMoved
}

func fenLetter(p Piece) byte {
	c := byte('p')
	for letter, kind := range fenLetters {
		if kind == p.Type {
			c = letter
			break
		}
	}
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
