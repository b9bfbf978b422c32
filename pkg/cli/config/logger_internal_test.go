package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

func TestLogger_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Logger{Level: "info", JSON: true}

	logger, err := cfg.configure(&buf)
	if err != nil {
		t.Fatalf("configure() unexpected error = %v", err)
	}

	creds := &model.Credentials{
		OpenAIAPIKey:    "sk-openai-secret-value",
		AnthropicAPIKey: "sk-anthropic-secret-value",
		LLMProvider:     "anthropic",
		GitHubToken:     "ghp_secret_value",
	}

	logger.Info("starting run", slog.Any("credentials", creds))

	out := buf.String()
	for _, secret := range []string{
		"sk-openai-secret-value",
		"sk-anthropic-secret-value",
		"ghp_secret_value",
	} {
		if strings.Contains(out, secret) {
			t.Errorf("log output contains secret value %q: %s", secret, out)
		}
	}

	// Non-secret fields stay visible
	if !strings.Contains(out, "anthropic") {
		t.Errorf("log output should contain provider name: %s", out)
	}
}
