package services

import (
	"context"

	"github.com/rs/zerolog"

	"schedule/internal/domain"
	"schedule/internal/errors"
	"schedule/internal/repository/files"
)

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	repo   files.Repository
	logger zerolog.Logger
}

// NewScheduleService creates a new ScheduleService instance
func NewScheduleService(repo files.Repository, logger zerolog.Logger) ScheduleService {
	return &scheduleServiceImpl{
		repo:   repo,
		logger: logger.With().Str("component", "schedule").Logger(),
	}
}

// LoadEntries parses the weeks file, skipping malformed lines
func (s *scheduleServiceImpl) LoadEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	rc, err := s.repo.OpenWeeks(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	skipped := 0
	entries, err := domain.ParseEntriesWithSkip(rc, func(lineNumber int, line string) {
		skipped++
		s.logger.Debug().Int("line", lineNumber).Str("text", line).Msg("skipping line")
	})
	if err != nil {
		return nil, errors.FromFileError("read", s.repo.WeeksPath(), err)
	}

	s.logger.Debug().
		Str("path", s.repo.WeeksPath()).
		Int("entries", len(entries)).
		Int("skipped", skipped).
		Msg("loaded weeks file")
	return entries, nil
}

// Filter keeps the entries the mode prints, in file order
func (s *scheduleServiceImpl) Filter(entries []domain.ScheduleEntry, mode domain.Mode, window Window) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, entry := range entries {
		if !include(entry, mode, window) {
			continue
		}
		views = append(views, EntryView{
			Entry:     entry,
			Highlight: domain.Classify(entry, window.WeekStart),
		})
	}
	return views
}

// Select loads and filters in one step
func (s *scheduleServiceImpl) Select(ctx context.Context, mode domain.Mode, window Window) ([]EntryView, error) {
	if !mode.ReadsEntries() {
		return nil, errors.NewInvalidInputError("mode", mode.String(), "mode does not list entries")
	}

	entries, err := s.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}

	views := s.Filter(entries, mode, window)
	s.logger.Debug().
		Str("mode", mode.String()).
		Time("week_start", window.WeekStart).
		Int("selected", len(views)).
		Msg("filtered entries")
	return views, nil
}

func include(entry domain.ScheduleEntry, mode domain.Mode, window Window) bool {
	switch mode {
	case domain.ModeThisWeek:
		return domain.InWeekWindow(entry, window.WeekStart)
	case domain.ModeThisMonth:
		return domain.InMonth(entry, window.Today)
	default:
		return true
	}
}
