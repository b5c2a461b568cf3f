package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"travelplanner/internal/models/db_models"
	"travelplanner/internal/models/response_models"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/utils"
)

type GenerationServiceInterface interface {
	GeneratePlan(ctx context.Context, payload any, headerUserID string) (*response_models.PlanResponse, error)
}

// GenerationService runs the plan pipeline:
// normalize request -> chat completion -> repair JSON -> persist.
type GenerationService struct {
	chat          utils.ChatClientInterface
	defaultAPIKey string
	plans         PlanServiceInterface
	logger        *zap.Logger
}

func NewGenerationService(
	chat utils.ChatClientInterface,
	defaultAPIKey string,
	plans PlanServiceInterface,
	logger *zap.Logger,
) GenerationServiceInterface {
	return &GenerationService{
		chat:          chat,
		defaultAPIKey: strings.TrimSpace(defaultAPIKey),
		plans:         plans,
		logger:        logger.Named("generation"),
	}
}

// ownedFields are never taken from model output: the server assigns the first
// five and notes belong to the user.
var ownedFields = []string{"id", "userId", "created_at", "updated_at", "is_favorite", "notes", "storage"}

func (g *GenerationService) GeneratePlan(ctx context.Context, payload any, headerUserID string) (*response_models.PlanResponse, error) {
	req, err := NormalizePlanRequest(payload)
	if err != nil {
		return nil, err
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = g.defaultAPIKey
	}

	var plan *db_models.TravelPlan
	if apiKey == "" {
		g.logger.Info("no LLM credential configured, serving the sample plan")
		metrics.PlanGenerations.WithLabelValues(metrics.OutcomeFallback).Inc()
		plan = FallbackPlan()
	} else {
		plan, err = g.generate(ctx, apiKey, BuildPlanPrompt(req))
		if err != nil {
			metrics.PlanGenerations.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, err
		}
		metrics.PlanGenerations.WithLabelValues(metrics.OutcomeGenerated).Inc()
	}

	plan.UserID = resolveUserID(headerUserID, req.UserID)

	// SavePlan never fails on storage trouble; it reports it in StoreResult.
	return g.plans.SavePlan(ctx, plan)
}

func (g *GenerationService) generate(ctx context.Context, apiKey string, prompt string) (*db_models.TravelPlan, error) {
	start := time.Now()
	raw, err := g.chat.Complete(ctx, apiKey, prompt)
	metrics.UpstreamLatency.WithLabelValues(g.chat.Provider()).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	obj, err := utils.RepairPlanJSON(raw)
	if err != nil {
		g.logger.Warn("model reply could not be repaired", zap.Error(err))
		return nil, err
	}

	return planFromObject(obj)
}

// planFromObject maps any JSON object onto a plan. The plan's collection types
// accept scalars and single objects, so only a non-object reply is a shape error.
func planFromObject(obj map[string]any) (*db_models.TravelPlan, error) {
	for _, key := range ownedFields {
		delete(obj, key)
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, &utils.RepairError{Kind: utils.ErrInvalidPlanShape, Cause: err}
	}

	var plan db_models.TravelPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, &utils.RepairError{Kind: utils.ErrInvalidPlanShape, Cause: err, Text: string(data)}
	}
	return &plan, nil
}

// resolveUserID picks the owner: header, then body, then anonymous.
// The value is trusted as supplied; there is no session to check it against.
func resolveUserID(headerUserID, bodyUserID string) string {
	if id := strings.TrimSpace(headerUserID); id != "" {
		return id
	}
	if id := strings.TrimSpace(bodyUserID); id != "" {
		return id
	}
	return db_models.AnonymousUserID
}
