package usecase

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultAcknowledgeMessage is posted to the pull request before any
// analysis starts
const DefaultAcknowledgeMessage = "🤖 Automated review started. Results will be posted when the analysis completes."

type acknowledgeStep struct {
	githubClient interfaces.GitHubClient
	message      string
}

// NewAcknowledgeStep creates the best-effort step that posts a status
// comment on the pull request. An empty message selects the default.
func NewAcknowledgeStep(githubClient interfaces.GitHubClient, message string) interfaces.Step {
	if message == "" {
		message = DefaultAcknowledgeMessage
	}
	return &acknowledgeStep{
		githubClient: githubClient,
		message:      message,
	}
}

func (s *acknowledgeStep) Name() string { return "acknowledge" }

// BestEffort: a failed notification never aborts the run
func (s *acknowledgeStep) BestEffort() bool { return true }

func (s *acknowledgeStep) Run(ctx context.Context, run *model.Run) error {
	pr := run.PullRequest

	comment := &github.IssueComment{
		Body: github.Ptr(s.message),
	}

	_, resp, err := s.githubClient.CreateComment(ctx, pr.Owner, pr.Repo, pr.Number, comment)
	if err != nil {
		return goerr.Wrap(err, "failed to post acknowledgment comment",
			goerr.V("repository", pr.FullName()),
			goerr.V("pr_number", pr.Number),
		)
	}
	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return goerr.New("unexpected status posting acknowledgment comment",
			goerr.V("status_code", resp.StatusCode),
			goerr.V("repository", pr.FullName()),
			goerr.V("pr_number", pr.Number),
		)
	}

	ctxlog.From(ctx).Info("Posted acknowledgment comment",
		"repository", pr.FullName(),
		"pr_number", pr.Number,
	)

	return nil
}
