package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"travelplanner/internal/models/db_models"
)

// IPlanRepository is the durable side of the plan storage port (Supabase Postgres).
type IPlanRepository interface {
	CreatePlan(ctx context.Context, plan *db_models.TravelPlan) error
	GetPlanByID(ctx context.Context, planID string) (*db_models.TravelPlan, error)
	ListPlansByUser(ctx context.Context, userID string, newestFirst bool) ([]db_models.TravelPlan, error)
	SavePlan(ctx context.Context, plan *db_models.TravelPlan) error
	DeletePlan(ctx context.Context, planID string) (bool, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p PlanRepository) CreatePlan(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

// GetPlanByID returns nil, nil when the plan does not exist.
func (p PlanRepository) GetPlanByID(ctx context.Context, planID string) (*db_models.TravelPlan, error) {

	var plan db_models.TravelPlan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p PlanRepository) ListPlansByUser(ctx context.Context, userID string, newestFirst bool) ([]db_models.TravelPlan, error) {

	order := "created_at ASC"
	if newestFirst {
		order = "created_at DESC"
	}

	plans := make([]db_models.TravelPlan, 0)
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order).
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

// SavePlan upserts the full row keyed by id.
func (p PlanRepository) SavePlan(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(plan).Error
}

func (p PlanRepository) DeletePlan(ctx context.Context, planID string) (bool, error) {
	result := p.db.WithContext(ctx).Delete(&db_models.TravelPlan{}, "id = ?", planID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
