package main

import (
	"os"
	"strings"

	"github.com/benbeisheim/chess-engine/internal/config"
	"github.com/benbeisheim/chess-engine/internal/controller"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager(cfg.MatchmakingInterval)
	defer gameManager.Close()
	gameService := service.NewGameService(gameManager)

	controller.Register(app, gameService, websocket.Config{
		ReadBufferSize:  int(cfg.WSReadBuffer),
		WriteBufferSize: int(cfg.WSWriteBuffer),
		Origins:         splitOrigins(cfg.AllowOrigins),
	})

	log.Infof("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
