package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"MEOWVIE_BOT_TOKEN,required"`
	AdminUserID      int64  `env:"ADMIN_USER"`

	// Trakt catalog
	TraktClientID string `env:"TRAKT_CLIENT_ID,required"`
	TraktBaseURL  string `env:"TRAKT_BASE_URL" envDefault:"https://api.trakt.tv"`

	// LLM settings (movie Q&A)
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Storage
	HistoryFilePath string `env:"HISTORY_FILE_PATH" envDefault:"data/history.json"`

	// Languages offered on /start; the first one is the fallback.
	Languages []string `env:"BOT_LANGUAGES" envSeparator:":" envDefault:"lv:en:ru"`

	// Admin digest
	DigestCronSpec string `env:"DIGEST_CRON" envDefault:"0 9 * * *"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
