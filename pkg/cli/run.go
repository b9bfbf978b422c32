package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		githubCfg   config.GitHub
		pipelineCfg config.Pipeline
		credsCfg    config.Credentials
		slackCfg    config.Slack

		repo       string
		prNumber   int64
		headSHA    string
		baseBranch string
		action     string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository full name (owner/repo)",
			Required:    true,
			Destination: &repo,
			Sources:     cli.EnvVars("DROVER_REPO"),
		},
		&cli.Int64Flag{
			Name:        "pr",
			Usage:       "Pull request number",
			Required:    true,
			Destination: &prNumber,
			Sources:     cli.EnvVars("DROVER_PR_NUMBER"),
		},
		&cli.StringFlag{
			Name:        "head-sha",
			Usage:       "Head commit SHA of the pull request",
			Required:    true,
			Destination: &headSHA,
			Sources:     cli.EnvVars("DROVER_HEAD_SHA"),
		},
		&cli.StringFlag{
			Name:        "base-branch",
			Usage:       "Branch the pull request targets",
			Value:       "main",
			Destination: &baseBranch,
			Sources:     cli.EnvVars("DROVER_BASE_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "action",
			Usage:       "Event action (opened, synchronize)",
			Value:       model.ActionOpened,
			Destination: &action,
			Sources:     cli.EnvVars("DROVER_ACTION"),
		},
	}
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, pipelineCfg.Flags()...)
	flags = append(flags, credsCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:  "run",
		Usage: "Run the pipeline once for a single pull request event",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			owner, name, ok := strings.Cut(repo, "/")
			if !ok || owner == "" || name == "" {
				return goerr.New("repository must be owner/repo", goerr.V("repo", repo))
			}

			// The config file may override the branch, so it must be
			// applied before the trigger filter runs
			if err := pipelineCfg.Load(); err != nil {
				return err
			}

			event := &model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: action,
			}
			pr := &model.PullRequest{
				Owner:      owner,
				Repo:       name,
				Number:     int(prNumber),
				HeadSHA:    headSHA,
				BaseBranch: baseBranch,
			}

			// Trigger filter: a non-matching event is a silent no-op
			if !event.IsSupportedEvent() {
				logger.Info("Event action does not trigger the pipeline", "action", action)
				return nil
			}
			if !pr.TargetsBranch(pipelineCfg.Branch) {
				logger.Info("Pull request does not target the integration branch",
					"base_branch", baseBranch,
					"target_branch", pipelineCfg.Branch,
				)
				return nil
			}

			pipelineUC, err := buildPipeline(&githubCfg, &pipelineCfg, &credsCfg, &slackCfg)
			if err != nil {
				return err
			}

			run, runErr := pipelineUC.Execute(ctx, pr)
			if run != nil {
				printRunSummary(run)
			}

			if runErr != nil {
				// One-shot mode surfaces the engine's own exit code
				var exitErr *model.DelegateExitError
				if errors.As(runErr, &exitErr) {
					return cli.Exit("", exitErr.Code)
				}
				return runErr
			}
			return nil
		},
	}
}

func printRunSummary(run *model.Run) {
	okMark := color.New(color.FgGreen).Sprint("✔")
	failMark := color.New(color.FgRed).Sprint("✖")
	warnMark := color.New(color.FgYellow).Sprint("!")
	skipMark := color.New(color.Faint).Sprint("-")

	fmt.Printf("run %s (%s)\n", run.ID, run.Status)
	for _, step := range run.Steps {
		mark := okMark
		switch step.Status {
		case model.StepStatusFailed:
			mark = failMark
			if step.BestEffort {
				mark = warnMark
			}
		case model.StepStatusSkipped:
			mark = skipMark
		}
		fmt.Printf("  %s %-12s %s\n", mark, step.Name, step.Duration().Round(time.Millisecond))
	}
}
