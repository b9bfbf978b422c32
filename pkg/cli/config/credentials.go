package config

import (
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Credentials holds the secret set forwarded to the delegated engine.
// Flag sources use the exact environment variable names the engine
// expects, so the hosting environment can inject them directly.
type Credentials struct {
	OpenAIAPIKey    string `masq:"secret"`
	AnthropicAPIKey string `masq:"secret"`
	LLMProvider     string
	GitHubToken     string `masq:"secret"`
}

// Flags returns CLI flags for the credential set
func (c *Credentials) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key forwarded to the delegated engine",
			Destination: &c.OpenAIAPIKey,
			Sources:     cli.EnvVars(model.EnvOpenAIAPIKey),
		},
		&cli.StringFlag{
			Name:        "anthropic-api-key",
			Usage:       "Anthropic API key forwarded to the delegated engine",
			Destination: &c.AnthropicAPIKey,
			Sources:     cli.EnvVars(model.EnvAnthropicAPIKey),
		},
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "Provider selection string forwarded to the delegated engine",
			Destination: &c.LLMProvider,
			Sources:     cli.EnvVars(model.EnvLLMProvider),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token",
			Destination: &c.GitHubToken,
			Sources:     cli.EnvVars(model.EnvGitHubToken),
		},
	}
}

// Model returns the run-scoped credential set
func (c *Credentials) Model() *model.Credentials {
	return &model.Credentials{
		OpenAIAPIKey:    c.OpenAIAPIKey,
		AnthropicAPIKey: c.AnthropicAPIKey,
		LLMProvider:     c.LLMProvider,
		GitHubToken:     c.GitHubToken,
	}
}
