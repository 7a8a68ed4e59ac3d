package model

import (
	"fmt"
	"strconv"
)

// File is a board file, 1..8 for a..h. Zero means unset.
type File int8

// Rank is a board rank, 1..8. Zero means unset.
type Rank int8

const (
	NoFile File = 0
	NoRank Rank = 0
)

// FileFromLetter maps 'a'..'h' to a file, anything else to NoFile.
func FileFromLetter(c byte) File {
	if c >= 'a' && c <= 'h' {
		return File(c-'a') + 1
	}
	return NoFile
}

// FileFromIndex maps a 0-based index to a file.
func FileFromIndex(i int) File {
	if i >= 0 && i <= 7 {
		return File(i + 1)
	}
	return NoFile
}

func (f File) Valid() bool {
	return f >= 1 && f <= 8
}

// Index returns the 0-based index, or -1 when unset.
func (f File) Index() int {
	if !f.Valid() {
		return -1
	}
	return int(f) - 1
}

func (f File) String() string {
	if !f.Valid() {
		return ""
	}
	return string(rune('a' + f - 1))
}

// RankFromDigit maps '1'..'8' to a rank, anything else to NoRank.
func RankFromDigit(c byte) Rank {
	if c >= '1' && c <= '8' {
		return Rank(c - '0')
	}
	return NoRank
}

// RankFromIndex maps a 0-based index to a rank.
func RankFromIndex(i int) Rank {
	if i >= 0 && i <= 7 {
		return Rank(i + 1)
	}
	return NoRank
}

func (r Rank) Valid() bool {
	return r >= 1 && r <= 8
}

func (r Rank) Index() int {
	if !r.Valid() {
		return -1
	}
	return int(r) - 1
}

func (r Rank) String() string {
	if !r.Valid() {
		return ""
	}
	return strconv.Itoa(int(r))
}

// Square is a file/rank pair. Either half may be unset while a move is only
// partially described.
type Square struct {
	File File
	Rank Rank
}

// NoSquare is the fully unset square.
var NoSquare = Square{}

// Sq builds a square from 0-based indices.
func Sq(file, rank int) Square {
	return Square{File: FileFromIndex(file), Rank: RankFromIndex(rank)}
}

// ParseSquare reads a two character square such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	sq := Square{File: FileFromLetter(s[0]), Rank: RankFromDigit(s[1])}
	return sq, sq.Valid()
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic(fmt.Sprintf("invalid square %q", s))
	}
	return sq
}

func (s Square) Valid() bool {
	return s.File.Valid() && s.Rank.Valid()
}

// IsSet reports whether either half of the square is known.
func (s Square) IsSet() bool {
	return s.File.Valid() || s.Rank.Valid()
}

// Offset returns the square df files and dr ranks away. The result is
// NoSquare when it leaves the board.
func (s Square) Offset(df, dr int) Square {
	f, r := s.File.Index()+df, s.Rank.Index()+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return Sq(f, r)
}

// String renders the known parts, e.g. "e4", "e" or "4".
func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

// MarshalText lets squares be used as JSON strings.
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(b []byte) error {
	*s = partialSquare(string(b))
	if len(b) > 0 && !s.IsSet() {
		return fmt.Errorf("%w: %q", ErrInvalidSquare, string(b))
	}
	return nil
}
