package model

// Environment variable names forwarded to the delegated engine
const (
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvLLMProvider     = "LLM_PROVIDER"
	EnvGitHubToken     = "GITHUB_TOKEN"
)

// Credentials is the run-scoped secret set injected into the delegated
// engine's process environment. It is read-only for the duration of a
// run and must never be written to logs; secret fields carry masq tags
// so the logging layer redacts them.
type Credentials struct {
	OpenAIAPIKey    string `masq:"secret"`
	AnthropicAPIKey string `masq:"secret"`
	LLMProvider     string
	GitHubToken     string `masq:"secret"`
}

// Environ returns the credential set as KEY=VALUE pairs for exec.Cmd.Env.
// Names are fixed; presence and emptiness are the delegated engine's
// concern, so empty values are forwarded as-is.
func (c *Credentials) Environ() []string {
	return []string{
		EnvOpenAIAPIKey + "=" + c.OpenAIAPIKey,
		EnvAnthropicAPIKey + "=" + c.AnthropicAPIKey,
		EnvLLMProvider + "=" + c.LLMProvider,
		EnvGitHubToken + "=" + c.GitHubToken,
	}
}
