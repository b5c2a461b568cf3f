package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"travelplanner/internal/api/controllers"
	"travelplanner/pkg/middleware"
)

type Controllers struct {
	Plans    *controllers.TravelPlanController
	Expenses *controllers.ExpenseController
	Health   *controllers.HealthController
	Settings *controllers.SettingsController
}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(ctrl Controllers, corsOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(logger.Named("http")))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(corsOrigins))

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	apiGroup.GET("/health", ctrl.Health.Health)
	apiGroup.GET("/settings/status", ctrl.Settings.Status)
	apiGroup.POST("/generate-plan", ctrl.Plans.GeneratePlan)

	plansGroup := apiGroup.Group("/travel-plans")
	plansGroup.GET("", ctrl.Plans.ListPlans)
	plansGroup.POST("", ctrl.Plans.CreatePlan)
	plansGroup.GET("/user/:userId", ctrl.Plans.ListPlansByUser)
	plansGroup.GET("/:id", ctrl.Plans.GetPlan)
	plansGroup.PUT("/:id", ctrl.Plans.UpdatePlan)
	plansGroup.DELETE("/:id", ctrl.Plans.DeletePlan)

	expensesGroup := apiGroup.Group("/expenses")
	expensesGroup.GET("", ctrl.Expenses.ListExpenses)
	expensesGroup.POST("", ctrl.Expenses.AddExpense)
	expensesGroup.GET("/summary", ctrl.Expenses.Summary)
	expensesGroup.PUT("/:id", ctrl.Expenses.UpdateExpense)
	expensesGroup.DELETE("/:id", ctrl.Expenses.DeleteExpense)
}
