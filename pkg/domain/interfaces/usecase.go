package interfaces

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessPullRequest applies the trigger filter to the event and, when
	// it matches, starts a pipeline run. A rejected event is a no-op.
	ProcessPullRequest(ctx context.Context, event *model.WebhookEvent, pr *model.PullRequest) error
}

// PipelineUseCase defines operations for running the automation pipeline
type PipelineUseCase interface {
	// Execute runs the full step sequence for the pull request and returns
	// the run record. The returned error is non-nil iff a fail-fast step
	// failed.
	Execute(ctx context.Context, pr *model.PullRequest) (*model.Run, error)
}
