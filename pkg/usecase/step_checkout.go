package usecase

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type checkoutStep struct {
	token string
}

// NewCheckoutStep creates the step that materializes an exact checkout
// of the pull request's head commit in the run workspace. The GitHub
// token is used for HTTPS authentication and may be empty for public
// repositories.
func NewCheckoutStep(token string) interfaces.Step {
	return &checkoutStep{token: token}
}

func (s *checkoutStep) Name() string { return "checkout" }

func (s *checkoutStep) BestEffort() bool { return false }

func (s *checkoutStep) Run(ctx context.Context, run *model.Run) error {
	logger := ctxlog.From(ctx)
	pr := run.PullRequest

	var auth *githttp.BasicAuth
	if s.token != "" {
		// GitHub accepts any username with a token over HTTPS
		auth = &githttp.BasicAuth{
			Username: "x-access-token",
			Password: s.token,
		}
	}

	repo, err := gogit.PlainCloneContext(ctx, run.WorkDir, false, &gogit.CloneOptions{
		URL:        pr.CloneURL(),
		Auth:       auth,
		NoCheckout: true,
		Tags:       gogit.NoTags,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to clone repository",
			goerr.V("repository", pr.FullName()),
		)
	}

	// The head commit of an unmerged PR is not reachable from any branch
	// of the base repository, so fetch the PR head ref explicitly.
	refSpec := gitconfig.RefSpec(fmt.Sprintf("+refs/pull/%d/head:refs/remotes/origin/pr/%d", pr.Number, pr.Number))
	err = repo.FetchContext(ctx, &gogit.FetchOptions{
		RefSpecs: []gitconfig.RefSpec{refSpec},
		Auth:     auth,
		Tags:     gogit.NoTags,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return goerr.Wrap(err, "failed to fetch pull request head",
			goerr.V("repository", pr.FullName()),
			goerr.V("pr_number", pr.Number),
		)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to open worktree", goerr.V("work_dir", run.WorkDir))
	}

	if err := wt.Checkout(&gogit.CheckoutOptions{
		Hash: plumbing.NewHash(pr.HeadSHA),
	}); err != nil {
		return goerr.Wrap(err, "failed to checkout pull request head commit",
			goerr.V("repository", pr.FullName()),
			goerr.V("head_sha", pr.HeadSHA),
		)
	}

	logger.Info("Checked out pull request head",
		"repository", pr.FullName(),
		"pr_number", pr.Number,
		"head_sha", pr.HeadSHA,
		"work_dir", run.WorkDir,
	)

	return nil
}
