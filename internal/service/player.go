package service

import (
	"github.com/benbeisheim/chess-engine/internal/model"
)

// Conn is the write side of a websocket connection.
type Conn interface {
	WriteJSON(v interface{}) error
}

type Player struct {
	ID    string
	Color model.Color
}

type ClientPlayer struct {
	ID    string      `json:"name"`
	Color model.Color `json:"color"`
	Bot   bool        `json:"bot,omitempty"`
}

// MatchFoundEvent tells a queued player which game they were paired into.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}
