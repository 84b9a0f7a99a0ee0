package services

import (
	"context"
	"io"
	"strings"

	"schedule/internal/errors"
)

// memoryRepository serves the weeks and plan files from memory
type memoryRepository struct {
	weeks    string
	plan     string
	missing  bool
	readErr  error
	openings int
}

func (m *memoryRepository) OpenWeeks(ctx context.Context) (io.ReadCloser, error) {
	m.openings++
	if m.missing {
		return nil, errors.NewNotFoundError("file", m.WeeksPath())
	}
	if m.readErr != nil {
		return io.NopCloser(errReader{m.readErr}), nil
	}
	return io.NopCloser(strings.NewReader(m.weeks)), nil
}

func (m *memoryRepository) ReadPlan(ctx context.Context) (string, error) {
	if m.missing {
		return "", errors.NewNotFoundError("file", m.PlanPath())
	}
	return m.plan, nil
}

func (m *memoryRepository) WeeksPath() string { return "/mem/weeks" }
func (m *memoryRepository) PlanPath() string  { return "/mem/plan" }

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
