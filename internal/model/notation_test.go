package model

import (
	"errors"
	"testing"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		color Color
		want  Move
	}{
		{
			name:  "pawn push",
			input: "e4",
			color: White,
			want:  Move{Dest: MustSquare("e4"), Piece: Piece{Type: Pawn, Color: White}},
		},
		{
			name:  "knight",
			input: "Nf3",
			color: White,
			want:  Move{Dest: MustSquare("f3"), Piece: Piece{Type: Knight, Color: White}},
		},
		{
			name:  "pawn capture with file hint",
			input: "exd5",
			color: White,
			want:  Move{Origin: Square{File: FileFromLetter('e')}, Dest: MustSquare("d5"), Takes: true, Piece: Piece{Type: Pawn, Color: White}},
		},
		{
			name:  "file hint",
			input: "Nbd2",
			color: White,
			want:  Move{Origin: Square{File: FileFromLetter('b')}, Dest: MustSquare("d2"), Piece: Piece{Type: Knight, Color: White}},
		},
		{
			name:  "rank hint",
			input: "R1a3",
			color: Black,
			want:  Move{Origin: Square{Rank: RankFromDigit('1')}, Dest: MustSquare("a3"), Piece: Piece{Type: Rook, Color: Black}},
		},
		{
			name:  "full origin with capture and check",
			input: "Qd1xh5+",
			color: White,
			want:  Move{Origin: MustSquare("d1"), Dest: MustSquare("h5"), Takes: true, Check: true, Piece: Piece{Type: Queen, Color: White}},
		},
		{
			name:  "promotion",
			input: "e8=Q",
			color: White,
			want:  Move{Dest: MustSquare("e8"), Promotion: Queen, Piece: Piece{Type: Pawn, Color: White}},
		},
		{
			name:  "capture promotion with mate",
			input: "dxe1=N#",
			color: Black,
			want:  Move{Origin: Square{File: FileFromLetter('d')}, Dest: MustSquare("e1"), Takes: true, Checkmate: true, Promotion: Knight, Piece: Piece{Type: Pawn, Color: Black}},
		},
		{
			name:  "explicit pawn letter",
			input: "Pe4",
			color: White,
			want:  Move{Dest: MustSquare("e4"), Piece: Piece{Type: Pawn, Color: White}},
		},
		{
			name:  "castle",
			input: "O-O",
			color: Black,
			want:  Move{Castle: true, Piece: Piece{Type: King, Color: Black}},
		},
		{
			name:  "long castle with check",
			input: "O-O-O+",
			color: White,
			want:  Move{LongCastle: true, Check: true, Piece: Piece{Type: King, Color: White}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNotation(tt.input, tt.color)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("parse %q:\n got  %+v\n want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNotationErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"e", ErrTooShort},
		{"", ErrTooShort},
		{"Nb1xc3=Q+xx", ErrTooLong},
		{"e4é", ErrNonASCII},
		{"e4+#", ErrCheckAndMate},
		{"e9", ErrInvalidSquare},
		{"i4", ErrInvalidSquare},
		{"+#", ErrCheckAndMate},
		{"N+", ErrInvalidSquare},
		{"Xe4", ErrUnknownPiece},
		{"NNe4", ErrUnknownPiece},
		{"e8=X", ErrUnknownPiece},
		{"O-O-O-O", ErrInvalidSquare},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseNotation(tt.input, White)
			if !errors.Is(err, tt.want) {
				t.Fatalf("parse %q: got %v, want %v", tt.input, err, tt.want)
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("parse %q: %v is not a parse error", tt.input, err)
			}
		})
	}
}

func TestParseMetaCommands(t *testing.T) {
	tests := map[string]MetaMove{
		"quit":    MetaQuit,
		"exit":    MetaQuit,
		"concede": MetaConcede,
		"flip":    MetaFlip,
	}
	for input, want := range tests {
		m, err := ParseNotation(input, Black)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if m.Meta != want {
			t.Fatalf("parse %q: meta %v, want %v", input, m.Meta, want)
		}
	}

	// commands are case-sensitive
	if _, err := ParseNotation("Quit", White); !errors.Is(err, ErrParse) {
		t.Fatalf("expected Quit to be rejected, got %v", err)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	g := NewStandardGame()
	playAll(t, g, "e4", "d5", "exd5", "Nf6", "Bb5+", "c6", "dxc6", "Qb6", "cxb7+", "Kd8")

	for _, m := range g.ListValidMoves() {
		text := m.Notation()
		parsed, err := ParseNotation(text, g.CurrentColor())
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if err := g.Disambiguate(&parsed); err != nil {
			t.Fatalf("disambiguate %q: %v", text, err)
		}
		if !parsed.sameAction(m) || parsed.Piece.Type != m.Piece.Type {
			t.Fatalf("round trip %q: got %+v want %+v", text, parsed, m)
		}
	}
}

func TestShortNotationResolvesUniquely(t *testing.T) {
	fens := []string{
		StartingFEN,
		// knights on b1 and f3 both reach d2, rooks on a1 and a5 share the a-file
		"4k3/8/8/R7/8/5N2/8/RN2K3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		g := NewGame()
		if err := g.LoadFEN(fen); err != nil {
			t.Fatalf("load %q: %v", fen, err)
		}
		for _, m := range g.ListValidMoves() {
			text := g.ShortNotation(m)
			parsed, err := ParseNotation(text, g.CurrentColor())
			if err != nil {
				t.Fatalf("%s: parse %q: %v", fen, text, err)
			}
			if err := g.Disambiguate(&parsed); err != nil {
				t.Fatalf("%s: disambiguate %q (%s): %v", fen, text, m.Notation(), err)
			}
			if !parsed.sameAction(m) {
				t.Fatalf("%s: %q resolved to %s, want %s", fen, text, parsed.Notation(), m.Notation())
			}
		}
	}
}

func TestShortNotationHints(t *testing.T) {
	g := NewGame()
	if err := g.LoadFEN("4k3/8/8/R7/8/5N2/8/RN2K3 w - - 0 1"); err != nil {
		t.Fatalf("load: %v", err)
	}
	tests := []struct {
		origin, dest string
		want         string
	}{
		{"b1", "d2", "Nbd2"},
		{"f3", "d2", "Nfd2"},
		{"a1", "a3", "R1a3"},
		{"a5", "a3", "R5a3"},
		{"f3", "g5", "Ng5"},
	}
	for _, tt := range tests {
		m := Move{Origin: MustSquare(tt.origin), Dest: MustSquare(tt.dest), Piece: g.board.At(MustSquare(tt.origin))}
		if err := g.IsValidMove(&m); err != nil {
			t.Fatalf("%s-%s: %v", tt.origin, tt.dest, err)
		}
		if got := g.ShortNotation(m); got != tt.want {
			t.Fatalf("%s-%s: got %q want %q", tt.origin, tt.dest, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	m := Move{Origin: MustSquare("g1"), Dest: MustSquare("f3"), Piece: Piece{Type: Knight, Color: White}}
	if got := m.Describe(); got != "Knight on g1 to f3" {
		t.Fatalf("describe: %q", got)
	}
	m = Move{Origin: MustSquare("e7"), Dest: MustSquare("d8"), Takes: true, Promotion: Queen, Check: true, Piece: Piece{Type: Pawn, Color: White}}
	if got := m.Describe(); got != "Pawn on e7 takes on d8 promotes to Queen with check" {
		t.Fatalf("describe: %q", got)
	}
	if got := (Move{LongCastle: true}).Describe(); got != "Long Castles" {
		t.Fatalf("describe: %q", got)
	}
}
