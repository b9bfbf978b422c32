package usecase

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type installStep struct {
	command  []string
	lockFile string
}

// NewInstallStep creates the step that installs the checked-out
// project's dependencies. When lockFile is non-empty, its absence from
// the checkout fails the run before the command executes: installs must
// be reproducible from a lock specification.
func NewInstallStep(command []string, lockFile string) interfaces.Step {
	return &installStep{
		command:  command,
		lockFile: lockFile,
	}
}

func (s *installStep) Name() string { return "install" }

func (s *installStep) BestEffort() bool { return false }

func (s *installStep) Run(ctx context.Context, run *model.Run) error {
	logger := ctxlog.From(ctx)

	if len(s.command) == 0 {
		return goerr.New("install command is not configured")
	}

	if s.lockFile != "" {
		lockPath := filepath.Join(run.WorkDir, s.lockFile)
		if _, err := os.Stat(lockPath); err != nil {
			return goerr.Wrap(err, "lock file not found in checkout",
				goerr.V("lock_file", s.lockFile),
			)
		}
	}

	logger.Info("Installing dependencies",
		"command", s.command,
		"work_dir", run.WorkDir,
	)

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Dir = run.WorkDir
	// Tool output goes straight to the run log
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "dependency install failed",
			goerr.V("command", s.command),
		)
	}

	return nil
}
