package model

// GameView is a read-only snapshot for rendering and transport.
type GameView struct {
	Board     Board          `json:"board"`
	ToMove    Color          `json:"toMove"`
	TurnCount uint32         `json:"turnCount"`
	History   []string       `json:"history"`
	LastMove  *Move          `json:"lastMove"`
	Captured  CapturedPieces `json:"capturedPieces"`
	IsCheck   bool           `json:"isCheck"`
	Status    Status         `json:"status"`
	Winner    Color          `json:"winner,omitempty"`
	FEN       string         `json:"fen"`
}

func (g *Game) View() GameView {
	history := make([]string, 0, len(g.history))
	for _, m := range g.history {
		history = append(history, m.Notation())
	}
	var last *Move
	if m, ok := g.LastMove(); ok {
		last = &m
	}
	return GameView{
		Board:     g.board,
		ToMove:    g.toMove,
		TurnCount: g.turnCount,
		History:   history,
		LastMove:  last,
		Captured: CapturedPieces{
			White: g.Captured(White),
			Black: g.Captured(Black),
		},
		IsCheck: g.IsCheck(),
		Status:  g.status,
		Winner:  g.winner,
		FEN:     g.FEN(),
	}
}
