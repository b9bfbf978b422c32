package usecase

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type pipelineUseCase struct {
	steps         []interfaces.Step
	notifier      interfaces.Notifier
	keepWorkspace bool
}

// PipelineOption is a functional option for pipeline configuration
type PipelineOption func(*pipelineUseCase)

// WithNotifier sets a run outcome notifier
func WithNotifier(n interfaces.Notifier) PipelineOption {
	return func(uc *pipelineUseCase) {
		uc.notifier = n
	}
}

// WithKeepWorkspace disables workspace cleanup after the run
func WithKeepWorkspace(keep bool) PipelineOption {
	return func(uc *pipelineUseCase) {
		uc.keepWorkspace = keep
	}
}

// NewPipeline creates a PipelineUseCase that runs the given steps in order
func NewPipeline(steps []interfaces.Step, opts ...PipelineOption) interfaces.PipelineUseCase {
	uc := &pipelineUseCase{
		steps: steps,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the step sequence for the pull request. The sequence is
// strictly ordered with fail-fast semantics; best-effort steps log their
// failure and never abort the chain. No step is retried.
func (uc *pipelineUseCase) Execute(ctx context.Context, pr *model.PullRequest) (*model.Run, error) {
	logger := ctxlog.From(ctx)

	if err := pr.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid pull request for pipeline run")
	}

	run := model.NewRun(pr)

	workDir, err := os.MkdirTemp("", "drover-run-*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create run workspace")
	}
	if err := os.Chmod(workDir, 0700); err != nil {
		return nil, goerr.Wrap(err, "failed to set workspace permissions", goerr.V("dir", workDir))
	}
	run.WorkDir = workDir

	if !uc.keepWorkspace {
		defer func() {
			if err := os.RemoveAll(workDir); err != nil {
				logger.Warn("Failed to clean up run workspace",
					"work_dir", workDir,
					"error", err,
				)
			}
		}()
	}

	logger.Info("Starting pipeline run",
		"run_id", run.ID,
		"repository", pr.FullName(),
		"pr_number", pr.Number,
		"head_sha", pr.HeadSHA,
		"work_dir", workDir,
	)

	run.Start()

	var fatalErr error
	for i, step := range uc.steps {
		result := uc.runStep(ctx, step, run)
		run.StepFinished(result)

		if result.Status == model.StepStatusFailed {
			if step.BestEffort() {
				// The only place a failure is deliberately swallowed
				logger.Warn("Best-effort step failed, continuing",
					"run_id", run.ID,
					"step", step.Name(),
					"error", result.Err,
				)
				continue
			}

			fatalErr = goerr.Wrap(result.Err, "pipeline step failed",
				goerr.V("run_id", run.ID),
				goerr.V("step", step.Name()),
			)

			// Record the steps the abort prevented from running
			for _, rest := range uc.steps[i+1:] {
				run.StepFinished(model.StepResult{
					Name:       rest.Name(),
					Status:     model.StepStatusSkipped,
					BestEffort: rest.BestEffort(),
				})
			}
			break
		}
	}

	run.Finish()

	logger.Info("Pipeline run finished",
		"run_id", run.ID,
		"status", run.Status,
		"duration_ms", run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	)

	if uc.notifier != nil {
		if err := uc.notifier.NotifyRunResult(ctx, run); err != nil {
			logger.Warn("Failed to notify run result", "run_id", run.ID, "error", err)
		}
	}

	return run, fatalErr
}

func (uc *pipelineUseCase) runStep(ctx context.Context, step interfaces.Step, run *model.Run) model.StepResult {
	logger := ctxlog.From(ctx)

	run.StepStarted(step.Name())
	logger.Info("Running pipeline step", "run_id", run.ID, "step", step.Name())

	result := model.StepResult{
		Name:       step.Name(),
		BestEffort: step.BestEffort(),
		StartedAt:  time.Now(),
	}

	if err := step.Run(ctx, run); err != nil {
		result.Status = model.StepStatusFailed
		result.Err = err
	} else {
		result.Status = model.StepStatusSucceeded
	}
	result.FinishedAt = time.Now()

	return result
}
