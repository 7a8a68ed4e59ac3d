package controller

import (
	"github.com/benbeisheim/chess-engine/internal/middleware"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	Notation string `json:"notation"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var opts service.CreateOptions
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, color, err := gc.gameService.CreateGame(middleware.PlayerID(c), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"gameId":  gameID,
		"color":   color,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	color, err := gc.gameService.JoinGame(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil || req.Notation == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "notation is required",
		})
	}

	gameID, playerID := c.Params("gameId"), middleware.PlayerID(c)
	move, err := gc.gameService.HandleMove(gameID, playerID, req.Notation)
	if err != nil {
		return respondError(c, err)
	}
	state, err := gc.gameService.GetGameState(gameID, playerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"move":  move,
		"state": state,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	if err := gc.gameService.JoinMatchmaking(middleware.PlayerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	gc.gameService.LeaveMatchmaking(middleware.PlayerID(c))
	return c.JSON(fiber.Map{
		"status": "left",
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	event, ok := gc.gameService.MatchStatus(middleware.PlayerID(c))
	if !ok {
		return c.JSON(fiber.Map{
			"status": "waiting",
		})
	}
	return c.JSON(fiber.Map{
		"status": "matched",
		"gameId": event.GameID,
		"color":  event.Color,
	})
}
