package player

import (
	"errors"
	"math/rand"

	"github.com/benbeisheim/chess-engine/internal/model"
)

var ErrNoMoves = errors.New("no legal moves")

// MoveSource produces the next move for the side to move in g.
type MoveSource interface {
	NextMove(g *model.Game) (model.Move, error)
}

// Notation is a move typed by a person. Parsing is all it does; the move
// still has to be resolved against the board.
type Notation string

func (n Notation) NextMove(g *model.Game) (model.Move, error) {
	return model.ParseNotation(string(n), g.CurrentColor())
}

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) NextMove(g *model.Game) (model.Move, error) {
	moves := g.ListValidMoves()
	if len(moves) == 0 {
		return model.Move{}, ErrNoMoves
	}
	return moves[b.rng.Intn(len(moves))], nil
}
