package expense_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelplanner/internal/api/controllers"
	"travelplanner/internal/repositories"
	"travelplanner/internal/services"
	mem "travelplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideExpenseRepo, mem.NewExpenseCache, provideExpenseService, provideExpenseController,
)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepositoryInterface {
	if db == nil {
		return nil
	}
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(repo repositories.ExpenseRepositoryInterface, cache *mem.ExpenseCache, logger *zap.Logger) services.ExpenseServiceInterface {
	return services.NewExpenseService(repo, cache, logger)
}

func provideExpenseController(expenseService services.ExpenseServiceInterface, logger *zap.Logger) *controllers.ExpenseController {
	return controllers.NewExpenseController(expenseService, logger)
}
