package main

import (
	"log"

	"github.com/bekzodov/jadval-bot/internal/app"
	"github.com/bekzodov/jadval-bot/internal/config"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	logger.Sugar().Infow("Starting jadval bot",
		"environment", cfg.Environment,
		"timezone", cfg.Timezone,
		"admins", len(cfg.AdminIDs))

	if err := app.Run(cfg, logger); err != nil {
		logger.Sugar().Fatalw("Bot exited with error", "error", err)
	}
}
