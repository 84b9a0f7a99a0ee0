package cli

import (
	"context"
	"time"

	"schedule/internal/domain"
	"schedule/internal/services"
)

// mockAPI implements the API interface for testing
type mockAPI struct {
	views    []services.EntryView
	plan     domain.QuarterPlan
	err      error
	lastMode domain.Mode
	lastNow  time.Time
	calls    int
}

func (m *mockAPI) Entries(ctx context.Context, mode domain.Mode, now time.Time) ([]services.EntryView, error) {
	m.calls++
	m.lastMode = mode
	m.lastNow = now
	if m.err != nil {
		return nil, m.err
	}
	return m.views, nil
}

func (m *mockAPI) QuarterPlan(ctx context.Context) (domain.QuarterPlan, error) {
	m.calls++
	if m.err != nil {
		return domain.QuarterPlan{}, m.err
	}
	return m.plan, nil
}

func view(day int, description string, highlight domain.Highlight) services.EntryView {
	return services.EntryView{
		Entry:     domain.NewScheduleEntry(time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC), description),
		Highlight: highlight,
	}
}
