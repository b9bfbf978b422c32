package usecase

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type delegateStep struct {
	command     []string
	credentials *model.Credentials
}

// NewDelegateStep creates the step that invokes the external
// analysis/generation engine. The credential set is passed once here
// and forwarded only as process environment, never held as ambient
// state anywhere else. The subprocess's exit code is the step's
// outcome; there is no retry.
func NewDelegateStep(command []string, credentials *model.Credentials) interfaces.Step {
	return &delegateStep{
		command:     command,
		credentials: credentials,
	}
}

func (s *delegateStep) Name() string { return "delegate" }

func (s *delegateStep) BestEffort() bool { return false }

func (s *delegateStep) Run(ctx context.Context, run *model.Run) error {
	logger := ctxlog.From(ctx)

	if len(s.command) == 0 {
		return goerr.New("delegate command is not configured")
	}

	logger.Info("Invoking delegated engine",
		"command", s.command,
		"work_dir", run.WorkDir,
	)

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Dir = run.WorkDir
	cmd.Env = append(os.Environ(), s.credentials.Environ()...)
	// The engine's own diagnostics are the only diagnostics; pass through
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return goerr.Wrap(&model.DelegateExitError{Code: exitErr.ExitCode()},
				"delegated engine failed",
				goerr.V("exit_code", exitErr.ExitCode()),
			)
		}
		return goerr.Wrap(err, "failed to invoke delegated engine",
			goerr.V("command", s.command),
		)
	}

	return nil
}
