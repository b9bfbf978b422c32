package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSetupStep_NoCommandIsNoOp(t *testing.T) {
	run := newWorkspaceRun(t)

	step := usecase.NewSetupStep(nil)
	gt.Equal(t, step.Name(), "setup")
	gt.False(t, step.BestEffort())
	gt.NoError(t, step.Run(context.Background(), run))
}

func TestSetupStep_RunsCommand(t *testing.T) {
	run := newWorkspaceRun(t)
	marker := filepath.Join(run.WorkDir, "toolchain-ready")

	step := usecase.NewSetupStep([]string{"touch", marker})
	gt.NoError(t, step.Run(context.Background(), run))

	_, err := os.Stat(marker)
	gt.NoError(t, err)
}

func TestSetupStep_CommandFailure(t *testing.T) {
	run := newWorkspaceRun(t)

	step := usecase.NewSetupStep([]string{"false"})
	gt.Error(t, step.Run(context.Background(), run))
}
