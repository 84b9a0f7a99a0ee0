package services

import (
	"context"
	"time"

	"schedule/internal/domain"
)

// EntryView is an entry selected for printing together with its highlight
type EntryView struct {
	Entry     domain.ScheduleEntry
	Highlight domain.Highlight
}

// Window describes the dates a run is evaluated against
type Window struct {
	Today     time.Time
	WeekStart time.Time
}

// NewWindow derives the window for the calendar day of now
func NewWindow(now time.Time) Window {
	return Window{
		Today:     domain.CalendarDay(now),
		WeekStart: domain.WeekStart(now),
	}
}

// ScheduleService reads and filters entries from the weeks file
type ScheduleService interface {
	// LoadEntries parses the weeks file, skipping malformed lines.
	LoadEntries(ctx context.Context) ([]domain.ScheduleEntry, error)

	// Filter keeps the entries the mode prints, in file order.
	Filter(entries []domain.ScheduleEntry, mode domain.Mode, window Window) []EntryView

	// Select loads and filters in one step.
	Select(ctx context.Context, mode domain.Mode, window Window) ([]EntryView, error)
}

// PlanService reads the quarter plan
type PlanService interface {
	CurrentQuarter(ctx context.Context) (domain.QuarterPlan, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	ScheduleService ScheduleService
	PlanService     PlanService
}
