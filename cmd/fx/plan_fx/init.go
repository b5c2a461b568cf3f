package plan_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelplanner/internal/api/controllers"
	"travelplanner/internal/config"
	"travelplanner/internal/repositories"
	"travelplanner/internal/services"
	mem "travelplanner/pkg/memcache"
	"travelplanner/pkg/utils"
)

var Module = fx.Provide(
	providePlanRepo,
	mem.NewPlanCache,
	providePlanService,
	provideGenerationService,
	providePlanController,
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	if db == nil {
		return nil
	}
	return repositories.NewPlanRepository(db)
}

func providePlanService(repo repositories.IPlanRepository, cache *mem.PlanCache, logger *zap.Logger) services.PlanServiceInterface {
	return services.NewPlanService(repo, cache, logger)
}

func provideGenerationService(
	chat utils.ChatClientInterface,
	cfg config.Config,
	plans services.PlanServiceInterface,
	logger *zap.Logger,
) services.GenerationServiceInterface {
	return services.NewGenerationService(chat, cfg.LLM.APIKey, plans, logger)
}

func providePlanController(
	plans services.PlanServiceInterface,
	generation services.GenerationServiceInterface,
	logger *zap.Logger,
) *controllers.TravelPlanController {
	return controllers.NewTravelPlanController(plans, generation, logger)
}
