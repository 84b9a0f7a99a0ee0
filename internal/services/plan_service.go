package services

import (
	"context"

	"github.com/rs/zerolog"

	"schedule/internal/domain"
	"schedule/internal/repository/files"
)

// planServiceImpl implements the PlanService interface
type planServiceImpl struct {
	repo   files.Repository
	logger zerolog.Logger
}

// NewPlanService creates a new PlanService instance
func NewPlanService(repo files.Repository, logger zerolog.Logger) PlanService {
	return &planServiceImpl{
		repo:   repo,
		logger: logger.With().Str("component", "plan").Logger(),
	}
}

// CurrentQuarter returns the first paragraph of the plan file
func (s *planServiceImpl) CurrentQuarter(ctx context.Context) (domain.QuarterPlan, error) {
	content, err := s.repo.ReadPlan(ctx)
	if err != nil {
		return domain.QuarterPlan{}, err
	}

	plan := domain.FirstParagraph(content)
	s.logger.Debug().Str("path", s.repo.PlanPath()).Int("bytes", len(plan.Text)).Msg("read quarter plan")
	return plan, nil
}
