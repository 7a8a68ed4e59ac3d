package ws

import (
	"encoding/json"
)

// MessageType tags a websocket frame. Clients send move, resign and flip;
// the server sends gameState, matchFound and error.
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeResign     MessageType = "resign"
	MessageTypeFlip       MessageType = "flip"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeMatchFound MessageType = "matchFound"
	MessageTypeError      MessageType = "error"
)

// Message is the JSON envelope of every websocket frame. Payload is decoded
// according to Type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload carries a move in algebraic notation, e.g. "Nf3" or "O-O".
type MovePayload struct {
	Notation string `json:"notation"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage wraps payload in an envelope of type t.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage builds an error envelope. It cannot fail.
func ErrorMessage(err error) Message {
	raw, _ := json.Marshal(ErrorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: raw}
}
