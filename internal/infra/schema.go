package infra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// schemaStatements creates the tables backing travel plans and expenses.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS travel_plans (
		id text PRIMARY KEY,
		user_id text,
		destination text,
		duration text,
		budget text,
		itinerary jsonb,
		accommodations jsonb,
		transportation jsonb,
		restaurants jsonb,
		total_estimated_cost text,
		tips jsonb,
		notes text,
		is_favorite boolean DEFAULT false,
		created_at timestamptz,
		updated_at timestamptz
	)`,
	`CREATE INDEX IF NOT EXISTS idx_travel_plans_user_id ON travel_plans(user_id)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id text PRIMARY KEY,
		user_id text,
		itinerary_id text,
		description text NOT NULL,
		amount numeric(12,2) NOT NULL,
		category text NOT NULL,
		spent_at timestamptz,
		created_at timestamptz,
		updated_at timestamptz
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_itinerary_id ON expenses(itinerary_id)`,
}

// insufficientPrivilege is the Postgres error code returned when the role cannot create objects.
const insufficientPrivilege = "42501"

// EnsureSchema applies schemaStatements through lib/pq. Every statement is idempotent.
func EnsureSchema(ctx context.Context, dsn string, logger *zap.Logger) error {
	if dsn == "" {
		return errors.New("SUPABASE_DB_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == insufficientPrivilege {
				return fmt.Errorf("database role may not create tables, run the statements from the Supabase SQL editor: %w", err)
			}
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	logger.Info("database schema is up to date", zap.Int("statements", len(schemaStatements)))
	return nil
}
