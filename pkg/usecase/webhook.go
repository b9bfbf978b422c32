package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/utils/async"
)

type webhookUseCase struct {
	pipelineUC   interfaces.PipelineUseCase
	targetBranch string
}

// NewWebhook creates a WebhookUseCase that starts a pipeline run for
// pull request events targeting the given branch
func NewWebhook(pipelineUC interfaces.PipelineUseCase, targetBranch string) interfaces.WebhookUseCase {
	return &webhookUseCase{
		pipelineUC:   pipelineUC,
		targetBranch: targetBranch,
	}
}

// ProcessPullRequest applies the trigger filter and dispatches a
// pipeline run asynchronously. A non-matching event is ignored without
// side effects.
func (uc *webhookUseCase) ProcessPullRequest(ctx context.Context, event *model.WebhookEvent, pr *model.PullRequest) error {
	logger := ctxlog.From(ctx)

	logger.Info("Received pull request event",
		"id", event.ID,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"pr_number", pr.Number,
		"base_branch", pr.BaseBranch,
	)

	if !event.IsSupportedEvent() {
		logger.Info("Ignoring unsupported event",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	if !pr.TargetsBranch(uc.targetBranch) {
		logger.Info("Ignoring pull request against non-target branch",
			"base_branch", pr.BaseBranch,
			"target_branch", uc.targetBranch,
		)
		return nil
	}

	// Webhook delivery must be acknowledged quickly; the run continues in
	// the background with its own lifetime.
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := uc.pipelineUC.Execute(ctx, pr)
		return err
	})

	return nil
}
