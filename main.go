package main

import (
	"embed"
	"flag"
	"log/slog"
	"os"
	"strings"

	"redistrict/internal/config"
	"redistrict/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	port := flag.Int("port", cfg.Port, "server port")
	startLevel := flag.Int("start-level", cfg.StartLevel, "first level of a new room")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	srv := server.New(*port, *startLevel, static, logger)
	if err := srv.Start(); err != nil {
		logger.Error("server", "err", err)
		os.Exit(1)
	}
}
