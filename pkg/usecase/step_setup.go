package usecase

import (
	"context"
	"os"
	"os/exec"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type setupStep struct {
	command []string
}

// NewSetupStep creates the optional toolchain setup step that runs
// between checkout and dependency install. A nil command makes the step
// a no-op so the pipeline shape stays fixed.
func NewSetupStep(command []string) interfaces.Step {
	return &setupStep{command: command}
}

func (s *setupStep) Name() string { return "setup" }

func (s *setupStep) BestEffort() bool { return false }

func (s *setupStep) Run(ctx context.Context, run *model.Run) error {
	logger := ctxlog.From(ctx)

	if len(s.command) == 0 {
		logger.Debug("No setup command configured, skipping")
		return nil
	}

	logger.Info("Running environment setup",
		"command", s.command,
		"work_dir", run.WorkDir,
	)

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Dir = run.WorkDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "environment setup failed",
			goerr.V("command", s.command),
		)
	}

	return nil
}
