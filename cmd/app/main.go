package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelplanner/cmd/fx/config_fx"
	"travelplanner/cmd/fx/controllers_fx"
	"travelplanner/cmd/fx/db_fx"
	"travelplanner/cmd/fx/expense_fx"
	"travelplanner/cmd/fx/llm_fx"
	"travelplanner/cmd/fx/logger_fx"
	"travelplanner/cmd/fx/plan_fx"
	"travelplanner/internal/api"
	"travelplanner/internal/api/controllers"
	"travelplanner/internal/config"
	"travelplanner/internal/infra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "travelplanner",
		Short:        "AI travel planner backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func migrateCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the Supabase tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return infra.EnsureSchema(ctx, cfg.SupabaseDBURL, logger)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "time allowed for the migration")
	return cmd
}

func serve() error {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		llm_fx.Module,
		plan_fx.Module,
		expense_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	plansController *controllers.TravelPlanController,
	expensesController *controllers.ExpenseController,
	healthController *controllers.HealthController,
	settingsController *controllers.SettingsController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	return api.NewRouter(api.Controllers{
		Plans:    plansController,
		Expenses: expensesController,
		Health:   healthController,
		Settings: settingsController,
	}, cfg.CORSOrigins, logger)
}
