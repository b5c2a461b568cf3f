package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"travelplanner/internal/models/db_models"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/models/response_models"
	"travelplanner/internal/repositories"
	mem "travelplanner/pkg/memcache"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/utils"
)

type PlanServiceInterface interface {
	SavePlan(ctx context.Context, plan *db_models.TravelPlan) (*response_models.PlanResponse, error)
	GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error)
	ListPlans(ctx context.Context, userID string) ([]db_models.TravelPlan, response_models.StoreResult, error)
	ListPlansByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, response_models.StoreResult, error)
	UpdatePlan(ctx context.Context, planID string, patch request_models.UpdatePlanRequest) (*response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, planID string) (*response_models.DeleteResponse, error)
	DurableConfigured() bool
}

// PlanService coordinates the in-memory list and the optional durable store.
// Writes land in memory first and are then mirrored; reads prefer the durable store.
// Durable failures are logged and never returned to the caller.
type PlanService struct {
	durable repositories.IPlanRepository // nil when Supabase is not configured
	memory  *mem.PlanCache
	logger  *zap.Logger
}

func NewPlanService(durable repositories.IPlanRepository, memory *mem.PlanCache, logger *zap.Logger) PlanServiceInterface {
	return &PlanService{
		durable: durable,
		memory:  memory,
		logger:  logger.Named("plans"),
	}
}

func (s *PlanService) DurableConfigured() bool {
	return s.durable != nil
}

// SavePlan stores a new plan. The id is always generated here, never taken from the caller.
func (s *PlanService) SavePlan(ctx context.Context, plan *db_models.TravelPlan) (*response_models.PlanResponse, error) {
	plan = plan.Clone()
	plan.Stamp(utils.NewPlanID(), utils.NowUTC())
	plan.FillDefaults()

	s.memory.Upsert(plan)

	result := response_models.MemoryOnly()
	if s.durable != nil {
		if err := s.durable.CreatePlan(ctx, plan); err != nil {
			s.degraded("create", plan.ID, err)
		} else {
			result = response_models.DurableAndMemory()
		}
	}

	s.logger.Info("plan saved",
		zap.String("plan_id", plan.ID),
		zap.String("user_id", plan.UserID),
		zap.Bool("stored", result.Stored))

	return &response_models.PlanResponse{TravelPlan: *plan, Storage: result}, nil
}

func (s *PlanService) GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error) {
	if s.durable != nil {
		plan, err := s.durable.GetPlanByID(ctx, planID)
		switch {
		case err != nil:
			s.degraded("get", planID, err)
		case plan != nil:
			return &response_models.PlanResponse{TravelPlan: *plan, Storage: response_models.DurableOnly()}, nil
		}
	}

	plan, ok := s.memory.Get(planID)
	if !ok {
		return nil, fmt.Errorf("get plan %s: %w", planID, utils.ErrPlanNotFound)
	}
	return &response_models.PlanResponse{TravelPlan: *plan, Storage: response_models.MemoryOnly()}, nil
}

// ListPlans returns the owner's plans in creation order.
func (s *PlanService) ListPlans(ctx context.Context, userID string) ([]db_models.TravelPlan, response_models.StoreResult, error) {
	return s.list(ctx, userID, false)
}

// ListPlansByUser returns the owner's plans newest first.
func (s *PlanService) ListPlansByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, response_models.StoreResult, error) {
	return s.list(ctx, userID, true)
}

func (s *PlanService) list(ctx context.Context, userID string, newestFirst bool) ([]db_models.TravelPlan, response_models.StoreResult, error) {
	if userID == "" {
		userID = db_models.AnonymousUserID
	}

	if s.durable != nil {
		plans, err := s.durable.ListPlansByUser(ctx, userID, newestFirst)
		if err == nil {
			return plans, response_models.DurableOnly(), nil
		}
		s.degraded("list", userID, err)
	}

	cached := s.memory.Filter(func(p *db_models.TravelPlan) bool { return p.UserID == userID })
	plans := make([]db_models.TravelPlan, 0, len(cached))
	for _, p := range cached {
		plans = append(plans, *p)
	}
	if newestFirst {
		sort.SliceStable(plans, func(i, j int) bool {
			if !plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
				return plans[i].CreatedAt.After(plans[j].CreatedAt)
			}
			// ids carry strictly increasing millis
			return plans[i].ID > plans[j].ID
		})
	}
	return plans, response_models.MemoryOnly(), nil
}

func (s *PlanService) UpdatePlan(ctx context.Context, planID string, patch request_models.UpdatePlanRequest) (*response_models.PlanResponse, error) {
	plan, ok := s.memory.Get(planID)
	if !ok && s.durable != nil {
		found, err := s.durable.GetPlanByID(ctx, planID)
		if err != nil {
			s.degraded("get", planID, err)
		}
		if found != nil {
			plan, ok = found, true
		}
	}
	if !ok {
		return nil, fmt.Errorf("update plan %s: %w", planID, utils.ErrPlanNotFound)
	}

	patch.Apply(plan)
	plan.Touch(utils.NowUTC())
	plan.FillDefaults()

	s.memory.Upsert(plan)

	result := response_models.MemoryOnly()
	if s.durable != nil {
		if err := s.durable.SavePlan(ctx, plan); err != nil {
			s.degraded("update", planID, err)
		} else {
			result = response_models.DurableAndMemory()
		}
	}

	return &response_models.PlanResponse{TravelPlan: *plan, Storage: result}, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, planID string) (*response_models.DeleteResponse, error) {
	inMemory := s.memory.Remove(planID)

	inDurable := false
	if s.durable != nil {
		deleted, err := s.durable.DeletePlan(ctx, planID)
		if err != nil {
			s.degraded("delete", planID, err)
		} else {
			inDurable = deleted
		}
	}

	if !inMemory && !inDurable {
		return nil, fmt.Errorf("delete plan %s: %w", planID, utils.ErrPlanNotFound)
	}

	return &response_models.DeleteResponse{
		Message: "Travel plan deleted successfully",
		ID:      planID,
		Storage: response_models.Removed(inDurable, inMemory),
	}, nil
}

func (s *PlanService) degraded(op string, key string, err error) {
	metrics.StorageFallbacks.WithLabelValues("plan", op).Inc()
	s.logger.Warn("durable store unavailable, using in-memory list",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err))
}
