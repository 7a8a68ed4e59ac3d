package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/inhies/go-bytesize"
)

type Config struct {
	Addr                string
	AllowOrigins        string
	WSReadBuffer        bytesize.ByteSize
	WSWriteBuffer       bytesize.ByteSize
	MatchmakingInterval time.Duration
	LogLevel            log.Level
}

// Load parses args, falling back to CHESS_* environment variables and
// then to defaults.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("origins", getenv("CHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	readBuf := fs.String("ws-read-buffer", getenv("CHESS_WS_READ_BUFFER", "1KB"), "websocket read buffer size")
	writeBuf := fs.String("ws-write-buffer", getenv("CHESS_WS_WRITE_BUFFER", "1KB"), "websocket write buffer size")
	interval := fs.String("matchmaking-interval", getenv("CHESS_MATCHMAKING_INTERVAL", "1s"), "how often waiting players are paired")
	level := fs.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:         *addr,
		AllowOrigins: *origins,
	}

	var err error
	if cfg.WSReadBuffer, err = bytesize.Parse(*readBuf); err != nil {
		return Config{}, fmt.Errorf("ws-read-buffer %q: %w", *readBuf, err)
	}
	if cfg.WSWriteBuffer, err = bytesize.Parse(*writeBuf); err != nil {
		return Config{}, fmt.Errorf("ws-write-buffer %q: %w", *writeBuf, err)
	}
	if cfg.MatchmakingInterval, err = time.ParseDuration(*interval); err != nil {
		return Config{}, fmt.Errorf("matchmaking-interval %q: %w", *interval, err)
	}
	if cfg.MatchmakingInterval <= 0 {
		return Config{}, fmt.Errorf("matchmaking-interval must be positive, got %s", cfg.MatchmakingInterval)
	}
	if cfg.LogLevel, err = parseLevel(*level); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseLevel(s string) (log.Level, error) {
	switch s {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
