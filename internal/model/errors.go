package model

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the category of malformed notation. The board is never
	// touched when it is returned.
	ErrParse = errors.New("invalid notation")
	// ErrIllegalMove is the category of moves the position does not allow.
	ErrIllegalMove = errors.New("illegal move")
)

var (
	ErrNonASCII      = fmt.Errorf("%w: non-ascii input", ErrParse)
	ErrTooShort      = fmt.Errorf("%w: input is too short", ErrParse)
	ErrTooLong       = fmt.Errorf("%w: input is too long", ErrParse)
	ErrCheckAndMate  = fmt.Errorf("%w: both check and checkmate", ErrParse)
	ErrInvalidSquare = fmt.Errorf("%w: invalid square", ErrParse)
	ErrUnknownPiece  = fmt.Errorf("%w: unknown piece", ErrParse)
	ErrInvalidFEN    = fmt.Errorf("%w: invalid fen", ErrParse)
)

var (
	ErrOwnPieceAtDest    = fmt.Errorf("%w: there is a piece at the destination", ErrIllegalMove)
	ErrSameSquare        = fmt.Errorf("%w: origin and destination are the same", ErrIllegalMove)
	ErrNothingToTake     = fmt.Errorf("%w: there is no piece to take", ErrIllegalMove)
	ErrCannotMove        = fmt.Errorf("%w: selected piece cannot make that move", ErrIllegalMove)
	ErrNoPiece           = fmt.Errorf("%w: no such piece at the origin", ErrIllegalMove)
	ErrCastleNotAllowed  = fmt.Errorf("%w: king/rook are not valid", ErrIllegalMove)
	ErrCastlePathBlocked = fmt.Errorf("%w: castle path is not clear", ErrIllegalMove)
	ErrNoMatchingPiece   = fmt.Errorf("%w: no pieces match", ErrIllegalMove)
	// ErrUnresolvable covers both "no candidate can make the move" and
	// "more than one candidate can".
	ErrUnresolvable = fmt.Errorf("%w: cannot uniquely resolve move", ErrIllegalMove)
	ErrSelfCheck    = fmt.Errorf("%w: move leaves the king in check", ErrIllegalMove)
	ErrGameOver     = fmt.Errorf("%w: game is over", ErrIllegalMove)
)
