package llm_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelplanner/internal/config"
	"travelplanner/pkg/utils"
)

var Module = fx.Provide(ProvideChatClient)

// ProvideChatClient picks the chat-completion backend from LLM_PROVIDER.
func ProvideChatClient(cfg config.Config, logger *zap.Logger) utils.ChatClientInterface {
	var client utils.ChatClientInterface
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		client = utils.NewGeminiChatClient(cfg.LLM.Model)
	default:
		client = utils.NewOpenAIChatClient(utils.ChatConfig{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		})
	}

	logger.Info("chat client ready",
		zap.String("provider", client.Provider()),
		zap.String("model", client.Model()),
		zap.Bool("default_key", cfg.LLM.APIKey != ""))
	return client
}
