package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newWorkspaceRun(t *testing.T) *model.Run {
	t.Helper()
	run := model.NewRun(testPR())
	run.WorkDir = t.TempDir()
	return run
}

func TestInstallStep_RunsCommand(t *testing.T) {
	run := newWorkspaceRun(t)
	marker := filepath.Join(run.WorkDir, "installed")

	step := usecase.NewInstallStep([]string{"touch", marker}, "")
	gt.Equal(t, step.Name(), "install")
	gt.False(t, step.BestEffort())

	gt.NoError(t, step.Run(context.Background(), run))

	_, err := os.Stat(marker)
	gt.NoError(t, err)
}

func TestInstallStep_MissingLockFileFailsBeforeCommand(t *testing.T) {
	run := newWorkspaceRun(t)
	marker := filepath.Join(run.WorkDir, "installed")

	step := usecase.NewInstallStep([]string{"touch", marker}, "package-lock.json")
	gt.Error(t, step.Run(context.Background(), run))

	// The install command never ran
	_, err := os.Stat(marker)
	gt.True(t, os.IsNotExist(err))
}

func TestInstallStep_WithLockFilePresent(t *testing.T) {
	run := newWorkspaceRun(t)
	lockPath := filepath.Join(run.WorkDir, "package-lock.json")
	gt.NoError(t, os.WriteFile(lockPath, []byte("{}"), 0644))

	step := usecase.NewInstallStep([]string{"true"}, "package-lock.json")
	gt.NoError(t, step.Run(context.Background(), run))
}

func TestInstallStep_CommandFailure(t *testing.T) {
	run := newWorkspaceRun(t)

	step := usecase.NewInstallStep([]string{"false"}, "")
	gt.Error(t, step.Run(context.Background(), run))
}

func TestInstallStep_NoCommandConfigured(t *testing.T) {
	run := newWorkspaceRun(t)

	step := usecase.NewInstallStep(nil, "")
	gt.Error(t, step.Run(context.Background(), run))
}
