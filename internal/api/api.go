package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"schedule/internal/domain"
	"schedule/internal/repository/files"
	"schedule/internal/services"
)

// API defines the operations the command line runs.
type API interface {
	// Entries returns the entries printed by mode, evaluated for the day of now.
	Entries(ctx context.Context, mode domain.Mode, now time.Time) ([]services.EntryView, error)

	// QuarterPlan returns the current quarter's plan.
	QuarterPlan(ctx context.Context) (domain.QuarterPlan, error)
}

type apiImpl struct {
	services *services.ServiceContainer
}

// New creates a new API instance.
func New(repo files.Repository, logger zerolog.Logger) API {
	return NewWithServices(&services.ServiceContainer{
		ScheduleService: services.NewScheduleService(repo, logger),
		PlanService:     services.NewPlanService(repo, logger),
	})
}

// NewWithServices creates an API on top of existing services.
func NewWithServices(container *services.ServiceContainer) API {
	return &apiImpl{services: container}
}

func (a *apiImpl) Entries(ctx context.Context, mode domain.Mode, now time.Time) ([]services.EntryView, error) {
	return a.services.ScheduleService.Select(ctx, mode, services.NewWindow(now))
}

func (a *apiImpl) QuarterPlan(ctx context.Context) (domain.QuarterPlan, error) {
	return a.services.PlanService.CurrentQuarter(ctx)
}
