package model

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k2r/8/8/8/8/8/8/R3K3 b Qk - 0 40",
	}
	for _, fen := range fens {
		g := NewGame()
		if err := g.LoadFEN(fen); err != nil {
			t.Fatalf("load %q: %v", fen, err)
		}
		if got := g.FEN(); got != fen {
			t.Fatalf("round trip:\n got  %s\n want %s", got, fen)
		}
	}
}

func TestFENFollowsPlay(t *testing.T) {
	g := NewStandardGame()
	playAll(t, g, "e4")
	if got, want := g.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; got != want {
		t.Fatalf("after e4:\n got  %s\n want %s", got, want)
	}
	playAll(t, g, "e5", "Ke2")
	if got, want := g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 0 2"; got != want {
		t.Fatalf("after Ke2:\n got  %s\n want %s", got, want)
	}
}

func TestFENEnPassantTarget(t *testing.T) {
	g := NewGame()
	if err := g.LoadFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"); err != nil {
		t.Fatalf("load: %v", err)
	}
	m, err := resolve(t, g, "exd6")
	if err != nil {
		t.Fatalf("en passant from fen: %v", err)
	}
	if m.EnPassant != MustSquare("d5") {
		t.Fatalf("expected victim on d5, got %s", m.EnPassant)
	}
}

func TestLoadFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"seven ranks", "8/8/8/8/8/8/4K2k w - - 0 1"},
		{"bad piece", "4k3/8/8/8/8/8/8/4X2K w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"long rank", "4k3/8/8/8/8/8/8/4K2RR w - - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"castling letter", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"en passant square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := NewStandardGame()
			err := g.LoadFEN(tt.fen)
			if !errors.Is(err, ErrInvalidFEN) {
				t.Fatalf("got %v, want ErrInvalidFEN", err)
			}
			if g.FEN() != StartingFEN {
				t.Fatalf("failed load must not change the game")
			}
		})
	}
}

func TestLoadFENSettlesStatus(t *testing.T) {
	g := NewGame()
	if err := g.LoadFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Status() != StatusCheckmate || g.Winner() != Black {
		t.Fatalf("expected black to have mated, got %s %q", g.Status(), g.Winner())
	}
}
