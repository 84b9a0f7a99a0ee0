package files

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule/internal/config"
	"schedule/internal/errors"
)

func setupTestFiles(t *testing.T, weeks, plan string) *FileRepository {
	t.Helper()
	dir := t.TempDir()

	weeksPath := filepath.Join(dir, "weeks")
	planPath := filepath.Join(dir, "plan")
	require.NoError(t, os.WriteFile(weeksPath, []byte(weeks), 0644))
	require.NoError(t, os.WriteFile(planPath, []byte(plan), 0644))

	return New(weeksPath, planPath)
}

func TestFileRepository_OpenWeeks(t *testing.T) {
	repo := setupTestFiles(t, "01/15/24 - Test\n", "")

	rc, err := repo.OpenWeeks(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "01/15/24 - Test\n", string(data))
}

func TestFileRepository_ReadPlan(t *testing.T) {
	repo := setupTestFiles(t, "", "Q1\n\nQ2\n")

	plan, err := repo.ReadPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Q1\n\nQ2\n", plan)
}

func TestFileRepository_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	repo := New(filepath.Join(dir, "weeks"), filepath.Join(dir, "plan"))
	ctx := context.Background()

	_, err := repo.OpenWeeks(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = repo.ReadPlan(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestFileRepository_Directory(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir, dir)

	_, err := repo.ReadPlan(context.Background())
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, dir, appErr.Context["path"])
}

func TestFileRepository_CancelledContext(t *testing.T) {
	repo := setupTestFiles(t, "", "")
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := repo.OpenWeeks(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTimeout))
}

func TestNewWithConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.NewConfig()
	cfg.Files.Dir = "/notes"

	repo := NewWithConfig(cfg)

	assert.Equal(t, "/notes/weeks", repo.WeeksPath())
	assert.Equal(t, "/notes/plan", repo.PlanPath())
}
