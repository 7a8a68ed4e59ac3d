package service

import (
	"sync"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/player"
	"github.com/benbeisheim/chess-engine/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

const botPlayerID = "bot"

// Session is one game together with its seats, an optional bot and the
// websocket connections watching it. All access goes through mu.
type Session struct {
	ID string

	mu        sync.Mutex
	game      *model.Game
	players   map[model.Color]*Player
	bot       model.Color
	botSource player.MoveSource
	flipped   map[string]bool
	observers map[string]Conn
}

// SessionState is what a single player sees of a session.
type SessionState struct {
	GameID string `json:"gameId"`
	model.GameView
	White       *ClientPlayer `json:"white"`
	Black       *ClientPlayer `json:"black"`
	Orientation model.Color   `json:"orientation"`
}

// MoveOption is a legal move offered to the side to move.
type MoveOption struct {
	Notation string       `json:"notation"`
	Long     string       `json:"long"`
	From     model.Square `json:"from"`
	To       model.Square `json:"to"`
}

func NewSession(id string, game *model.Game) *Session {
	return &Session{
		ID:        id,
		game:      game,
		players:   make(map[model.Color]*Player),
		flipped:   make(map[string]bool),
		observers: make(map[string]Conn),
	}
}

// AddPlayer seats playerID, on prefer when that seat is free. A player who
// is already seated gets their seat back.
func (s *Session) AddPlayer(playerID string, prefer model.Color) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.colorOf(playerID); ok {
		return c, nil
	}
	order := []model.Color{model.White, model.Black}
	if prefer == model.Black {
		order = []model.Color{model.Black, model.White}
	}
	for _, c := range order {
		if s.players[c] == nil {
			s.players[c] = &Player{ID: playerID, Color: c}
			s.broadcast()
			return c, nil
		}
	}
	return "", ErrGameFull
}

// SetBot seats src on color. The bot moves straight away when it is its turn.
func (s *Session) SetBot(color model.Color, src player.MoveSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.players[color] != nil {
		return ErrGameFull
	}
	s.players[color] = &Player{ID: botPlayerID, Color: color}
	s.bot = color
	s.botSource = src
	s.botReply()
	s.broadcast()
	return nil
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	for c, p := range s.players {
		if p.ID == playerID && c != s.bot {
			return c, true
		}
	}
	return "", false
}

// Play takes the next move for playerID from src and applies it. Flip only
// turns that player's board around; quit and concede resign at any time.
// Everything else must be a legal move on the player's turn. When the
// opponent is a bot it answers before Play returns.
func (s *Session) Play(playerID string, src player.MoveSource) (model.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	color, ok := s.colorOf(playerID)
	if !ok {
		return model.Move{}, ErrNotInGame
	}
	m, err := src.NextMove(s.game)
	if err != nil {
		return model.Move{}, err
	}

	switch m.Meta {
	case model.MetaFlip:
		s.flipped[playerID] = !s.flipped[playerID]
		s.sendState(playerID)
		return m, nil
	case model.MetaQuit, model.MetaConcede:
		if s.game.IsOver() {
			return model.Move{}, model.ErrGameOver
		}
		s.game.SetConcede(color)
		log.Infof("game %s: %s resigned", s.ID, color)
		s.broadcast()
		return m, nil
	}

	if s.game.IsOver() {
		return model.Move{}, model.ErrGameOver
	}
	if s.game.CurrentColor() != color {
		return model.Move{}, ErrNotYourTurn
	}
	played, err := s.game.MakeMove(m)
	if err != nil {
		return model.Move{}, err
	}
	log.Debugf("game %s: %s: %s", s.ID, color.Name(), played.Describe())
	if s.game.IsOver() {
		log.Infof("game %s: %s", s.ID, s.game.Status())
	}

	s.botReply()
	s.broadcast()
	return played, nil
}

func (s *Session) botReply() {
	if s.botSource == nil || s.game.IsOver() || s.game.CurrentColor() != s.bot {
		return
	}
	m, err := s.botSource.NextMove(s.game)
	if err != nil {
		log.Warnf("game %s: bot has no move: %v", s.ID, err)
		return
	}
	played, err := s.game.MakeMove(m)
	if err != nil {
		log.Errorf("game %s: bot move %s rejected: %v", s.ID, m.Notation(), err)
		return
	}
	log.Debugf("game %s: bot played %s", s.ID, played.Notation())
}

// State returns the session as seen by playerID.
func (s *Session) State(playerID string) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(playerID)
}

func (s *Session) state(playerID string) SessionState {
	st := SessionState{
		GameID:      s.ID,
		GameView:    s.game.View(),
		White:       s.clientPlayer(model.White),
		Black:       s.clientPlayer(model.Black),
		Orientation: model.White,
	}
	if c, ok := s.colorOf(playerID); ok {
		st.Orientation = c
	}
	if s.flipped[playerID] {
		st.Orientation = st.Orientation.Opposite()
	}
	return st
}

func (s *Session) clientPlayer(c model.Color) *ClientPlayer {
	p := s.players[c]
	if p == nil {
		return nil
	}
	return &ClientPlayer{ID: p.ID, Color: c, Bot: c == s.bot && s.botSource != nil}
}

// LegalMoves lists the moves open to the side to move.
func (s *Session) LegalMoves() []MoveOption {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := s.game.ListValidMoves()
	options := make([]MoveOption, 0, len(moves))
	for _, m := range moves {
		options = append(options, MoveOption{
			Notation: s.game.ShortNotation(m),
			Long:     m.Notation(),
			From:     m.Origin,
			To:       m.Dest,
		})
	}
	return options
}

// Register adds conn as an observer and sends it the current state.
func (s *Session) Register(playerID string, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers[playerID] = conn
	s.sendState(playerID)
}

func (s *Session) Unregister(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, playerID)
}

// Send writes msg to playerID's connection, if any.
func (s *Session) Send(playerID string, msg ws.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send(playerID, msg)
}

func (s *Session) send(playerID string, msg ws.Message) {
	conn, ok := s.observers[playerID]
	if !ok {
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Warnf("game %s: dropping connection of %s: %v", s.ID, playerID, err)
		delete(s.observers, playerID)
	}
}

func (s *Session) sendState(playerID string) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.state(playerID))
	if err != nil {
		log.Errorf("game %s: encode state: %v", s.ID, err)
		return
	}
	s.send(playerID, msg)
}

func (s *Session) broadcast() {
	for id := range s.observers {
		s.sendState(id)
	}
}
