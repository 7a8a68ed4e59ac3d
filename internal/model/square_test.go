package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	for _, s := range []string{"a1", "h8", "e4"} {
		sq, ok := ParseSquare(s)
		if !ok || sq.String() != s {
			t.Fatalf("%s: got %v %v", s, sq, ok)
		}
	}
	for _, s := range []string{"", "a", "a0", "a9", "i1", "A1", "e44"} {
		if _, ok := ParseSquare(s); ok {
			t.Fatalf("%q should not parse", s)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if got := MustSquare("e4").Offset(1, 2); got != MustSquare("f6") {
		t.Fatalf("got %s", got)
	}
	if got := MustSquare("h8").Offset(1, 0); got != NoSquare {
		t.Fatalf("off board should be NoSquare, got %s", got)
	}
	if got := MustSquare("a1").Offset(0, -1); got.Valid() {
		t.Fatalf("off board should be invalid, got %s", got)
	}
}

func TestPartialSquareString(t *testing.T) {
	if s := (Square{File: FileFromLetter('c')}).String(); s != "c" {
		t.Fatalf("file only: %q", s)
	}
	if s := (Square{Rank: RankFromDigit('7')}).String(); s != "7" {
		t.Fatalf("rank only: %q", s)
	}
	if NoSquare.IsSet() {
		t.Fatalf("NoSquare should be unset")
	}
}

func TestSquareJSON(t *testing.T) {
	b, err := json.Marshal(MustSquare("g1"))
	if err != nil || string(b) != `"g1"` {
		t.Fatalf("marshal: %s %v", b, err)
	}
	var sq Square
	if err := json.Unmarshal([]byte(`"d5"`), &sq); err != nil || sq != MustSquare("d5") {
		t.Fatalf("unmarshal: %v %v", sq, err)
	}
	if err := json.Unmarshal([]byte(`"zz"`), &sq); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("expected ErrInvalidSquare, got %v", err)
	}
}
