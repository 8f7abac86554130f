package llm

import (
	"fmt"

	"meowvie/internal/config"
)

func NewFromConfig(cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenRouterReferrer, cfg.OpenRouterTitle), nil
	case config.ProviderYandex:
		return NewYandex(cfg.YandexOAuthToken, cfg.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
