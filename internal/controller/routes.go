package controller

import (
	"github.com/benbeisheim/chess-engine/internal/middleware"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Register mounts the REST API under /api and the websocket endpoints
// under /ws.
func Register(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Use("/ws", middleware.EnsurePlayerID(), middleware.WebSocketUpgrade())
	app.Get("/ws/matchmaking", websocket.New(wsController.HandleMatchmaking, wsConfig))
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection, wsConfig))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Delete("/matchmaking", gameController.LeaveMatchmaking)
	gameRoutes.Get("/matchmaking/status", gameController.MatchmakingStatus)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", gameController.GetMoves)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
}
