package model_test

import (
	"testing"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestCredentials_Environ(t *testing.T) {
	creds := &model.Credentials{
		OpenAIAPIKey:    "sk-openai",
		AnthropicAPIKey: "sk-anthropic",
		LLMProvider:     "anthropic",
		GitHubToken:     "ghp_token",
	}

	env := creds.Environ()
	gt.Array(t, env).Equal([]string{
		"OPENAI_API_KEY=sk-openai",
		"ANTHROPIC_API_KEY=sk-anthropic",
		"LLM_PROVIDER=anthropic",
		"GITHUB_TOKEN=ghp_token",
	})
}

func TestCredentials_Environ_EmptyValuesForwarded(t *testing.T) {
	// Presence and emptiness are the delegated engine's concern
	creds := &model.Credentials{LLMProvider: "openai"}

	env := creds.Environ()
	gt.Array(t, env).Has("OPENAI_API_KEY=")
	gt.Array(t, env).Has("ANTHROPIC_API_KEY=")
	gt.Array(t, env).Has("LLM_PROVIDER=openai")
	gt.Array(t, env).Has("GITHUB_TOKEN=")
}
