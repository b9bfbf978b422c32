package cli

import (
	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/infra/slack"
	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// buildPipeline assembles the fixed step sequence and its runner from
// configuration. The order is: acknowledge (best-effort), checkout,
// setup, install, delegate. Callers must have applied
// Pipeline.Load() already: the branch and commands must be final
// before anything reads them.
func buildPipeline(
	githubCfg *config.GitHub,
	pipelineCfg *config.Pipeline,
	credsCfg *config.Credentials,
	slackCfg *config.Slack,
) (interfaces.PipelineUseCase, error) {
	if err := pipelineCfg.Validate(); err != nil {
		return nil, err
	}

	creds := credsCfg.Model()

	ghClient, err := githubCfg.NewClient(creds.GitHubToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}

	setupCmd, err := pipelineCfg.SetupCommand()
	if err != nil {
		return nil, err
	}
	installCmd, err := pipelineCfg.InstallCommand()
	if err != nil {
		return nil, err
	}
	delegateCmd, err := pipelineCfg.DelegateCommand()
	if err != nil {
		return nil, err
	}

	steps := []interfaces.Step{
		usecase.NewAcknowledgeStep(ghClient, pipelineCfg.AckMessage),
		usecase.NewCheckoutStep(creds.GitHubToken),
		usecase.NewSetupStep(setupCmd),
		usecase.NewInstallStep(installCmd, pipelineCfg.LockFile),
		usecase.NewDelegateStep(delegateCmd, creds),
	}

	opts := []usecase.PipelineOption{
		usecase.WithKeepWorkspace(pipelineCfg.KeepWorkspace),
	}
	if slackCfg.Enabled() {
		opts = append(opts, usecase.WithNotifier(slack.NewNotifier(slackCfg.Token, slackCfg.Channel)))
	}

	return usecase.NewPipeline(steps, opts...), nil
}
