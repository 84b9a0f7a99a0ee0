package files

import (
	"context"
	"io"
	"os"

	"schedule/internal/config"
	"schedule/internal/errors"
)

// Repository defines the interface for reading the schedule's source files
type Repository interface {
	// OpenWeeks opens the weeks file; the caller closes it.
	OpenWeeks(ctx context.Context) (io.ReadCloser, error)
	// ReadPlan returns the whole plan file.
	ReadPlan(ctx context.Context) (string, error)

	WeeksPath() string
	PlanPath() string
}

// FileRepository implements the Repository interface on the local filesystem
type FileRepository struct {
	weeksPath string
	planPath  string
}

// New creates a repository for the given weeks and plan files
func New(weeksPath, planPath string) *FileRepository {
	return &FileRepository{
		weeksPath: weeksPath,
		planPath:  planPath,
	}
}

// NewWithConfig creates a repository for the files named by the configuration
func NewWithConfig(cfg *config.Config) *FileRepository {
	return New(cfg.GetWeeksPath(), cfg.GetPlanPath())
}

// WeeksPath returns the path of the weeks file
func (r *FileRepository) WeeksPath() string {
	return r.weeksPath
}

// PlanPath returns the path of the plan file
func (r *FileRepository) PlanPath() string {
	return r.planPath
}

// OpenWeeks opens the weeks file for reading
func (r *FileRepository) OpenWeeks(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FromFileError("open", r.weeksPath, err)
	}

	f, err := os.Open(r.weeksPath)
	if err != nil {
		return nil, errors.FromFileError("open", r.weeksPath, err)
	}
	return f, nil
}

// ReadPlan reads the plan file
func (r *FileRepository) ReadPlan(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.FromFileError("read", r.planPath, err)
	}

	data, err := os.ReadFile(r.planPath)
	if err != nil {
		return "", errors.FromFileError("read", r.planPath, err)
	}
	return string(data), nil
}
