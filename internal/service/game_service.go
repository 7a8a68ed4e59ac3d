package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/player"
	"github.com/benbeisheim/chess-engine/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	OpponentHuman = "human"
	OpponentBot   = "bot"
)

// CreateOptions configures a new game. Zero values mean the starting
// position, a human opponent and white for the creator.
type CreateOptions struct {
	FEN      string      `json:"fen"`
	Opponent string      `json:"opponent"`
	Color    model.Color `json:"color"`
}

type GameService struct {
	gameManager *GameManager
	newBot      func() player.MoveSource
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
		newBot: func() player.MoveSource {
			return player.NewRandomBot(rand.New(rand.NewSource(time.Now().UnixNano())))
		},
	}
}

// CreateGame starts a game and seats playerID in it.
func (gs *GameService) CreateGame(playerID string, opts CreateOptions) (string, model.Color, error) {
	switch opts.Opponent {
	case "", OpponentHuman, OpponentBot:
	default:
		return "", "", fmt.Errorf("%w: unknown opponent %q", ErrBadRequest, opts.Opponent)
	}
	switch opts.Color {
	case "", model.White, model.Black:
	default:
		return "", "", fmt.Errorf("%w: unknown color %q", ErrBadRequest, opts.Color)
	}

	game := model.NewStandardGame()
	if opts.FEN != "" {
		if err := game.LoadFEN(opts.FEN); err != nil {
			return "", "", err
		}
	}

	session := NewSession(uuid.New().String(), game)
	if err := gs.gameManager.CreateGame(session); err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}
	color, err := session.AddPlayer(playerID, opts.Color)
	if err != nil {
		return "", "", err
	}
	if opts.Opponent == OpponentBot {
		if err := session.SetBot(color.Opposite(), gs.newBot()); err != nil {
			return "", "", err
		}
	}
	log.Infof("game %s created by %s playing %s", session.ID, playerID, color)
	return session.ID, color, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string, playerID string) (SessionState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return SessionState{}, err
	}
	return session.State(playerID), nil
}

func (gs *GameService) LegalMoves(gameID string) ([]MoveOption, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalMoves(), nil
}

// HandleMove plays notation for playerID. Meta commands such as "flip" and
// "concede" are accepted too.
func (gs *GameService) HandleMove(gameID string, playerID string, notation string) (model.Move, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Move{}, err
	}
	return session.Play(playerID, player.Notation(notation))
}

func (gs *GameService) Resign(gameID string, playerID string) error {
	_, err := gs.HandleMove(gameID, playerID, "concede")
	return err
}

func (gs *GameService) Flip(gameID string, playerID string) error {
	_, err := gs.HandleMove(gameID, playerID, "flip")
	return err
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) {
	gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) MatchStatus(playerID string) (MatchFoundEvent, bool) {
	return gs.gameManager.Match(playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	log.Debugf("registering connection of %s to game %s", playerID, gameID)
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	log.Debugf("unregistering connection of %s from game %s", playerID, gameID)
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

// SendError reports err to playerID over their game connection.
func (gs *GameService) SendError(gameID string, playerID string, err error) {
	session, lookupErr := gs.gameManager.GetGame(gameID)
	if lookupErr != nil {
		return
	}
	session.Send(playerID, ws.ErrorMessage(err))
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan MatchFoundEvent) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}
