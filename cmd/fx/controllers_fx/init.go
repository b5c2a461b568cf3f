package controllers_fx

import (
	"go.uber.org/fx"
	"travelplanner/internal/api/controllers"
	"travelplanner/internal/config"
	"travelplanner/internal/models/response_models"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideSettingsController))

// provideSettingsController reports storage from the wired plan service, so the
// status reflects whether a durable repository was actually provided.
func provideSettingsController(cfg config.Config, plans services.PlanServiceInterface, chat utils.ChatClientInterface) *controllers.SettingsController {
	storage := response_models.SourceMemory
	if plans.DurableConfigured() {
		storage = response_models.SourceDurable
	}
	return controllers.NewSettingsController(response_models.SettingsStatus{
		SupabaseConfigured: plans.DurableConfigured(),
		LLMConfigured:      cfg.LLM.APIKey != "",
		LLMProvider:        chat.Provider(),
		LLMModel:           chat.Model(),
		Storage:            storage,
	})
}
