package main

import (
	"context"
	"log"
	"time"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/config"
	"github.com/manual-labs/quizflow/internal/db"
	"github.com/manual-labs/quizflow/internal/session"
	"github.com/manual-labs/quizflow/internal/telegram"
)

func main() {
	cfg := config.FromEnv()
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := catalog.NewSQLStore(dbh, cfg.DBDriver)
	sessions := session.NewService(store, session.NewSQLStore(dbh))

	bot, err := telegram.NewBot(cfg.TelegramToken, sessions)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("bot is starting...")
	bot.Start()
}
