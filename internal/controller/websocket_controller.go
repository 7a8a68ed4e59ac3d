package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chess-engine/internal/middleware"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/benbeisheim/chess-engine/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection serves a player's live game channel. The current state
// is pushed on connect and after every change.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warnf("game %s: register %s: %v", gameID, playerID, err)
		_ = c.WriteJSON(ws.ErrorMessage(err))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: %s disconnected: %v", gameID, playerID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.gameService.SendError(gameID, playerID, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: %s: %v", gameID, playerID, err)
			wsc.gameService.SendError(gameID, playerID, err)
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move.Notation)
		return err
	case ws.MessageTypeResign:
		return wsc.gameService.Resign(gameID, playerID)
	case ws.MessageTypeFlip:
		return wsc.gameService.Flip(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// HandleMatchmaking waits for the player's next match and announces it.
// Closing the socket first takes the player out of the queue.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	ch := make(chan service.MatchFoundEvent, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case event, ok := <-ch:
		if !ok {
			return
		}
		msg, err := ws.NewMessage(ws.MessageTypeMatchFound, event)
		if err != nil {
			log.Errorf("matchmaking: encode event: %v", err)
			return
		}
		if err := c.WriteJSON(msg); err != nil {
			log.Warnf("matchmaking: notify %s: %v", playerID, err)
		}
	case <-closed:
		wsc.gameService.LeaveMatchmaking(playerID)
	}
}
