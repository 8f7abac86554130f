package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"meowvie/internal/catalog"
	"meowvie/internal/config"
	"meowvie/internal/history"
	"meowvie/internal/llm"
	"meowvie/internal/picker"
	"meowvie/internal/scheduler"
	"meowvie/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	var hist history.Store
	fileStore, err := history.NewFileStore(cfg.HistoryFilePath)
	if err != nil {
		log.Printf("failed to init history store: %v", err)
	} else {
		hist = fileStore
	}

	// The Q&A flow is optional; without credentials the ask button is
	// simply not offered.
	var aiClient llm.Client
	if cfg.OpenAIAPIKey != "" || cfg.YandexOAuthToken != "" {
		aiClient, err = llm.NewFromConfig(cfg)
		if err != nil {
			log.Printf("failed to create llm client, Q&A disabled: %v", err)
			aiClient = nil
		}
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		catalog.NewTrakt(cfg.TraktBaseURL, cfg.TraktClientID),
		picker.New(),
		hist,
		aiClient,
		cfg.Languages,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.AdminUserID != 0 && fileStore != nil {
		sched := scheduler.New(fileStore, func(text string) error {
			return bot.SendText(cfg.AdminUserID, text)
		})
		if err := sched.Start(cfg.DigestCronSpec); err != nil {
			log.Printf("failed to start digest scheduler: %v", err)
		} else {
			defer sched.Stop()
		}
	}

	bot.Start(context.Background())
}
