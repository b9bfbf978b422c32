package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func writePipelineConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCmdRun_BranchFromConfigFile(t *testing.T) {
	path := writePipelineConfig(t, `
branch = "develop"
delegate_cmd = "./ai-flow.sh"
`)

	cmd := cmdRun()
	err := cmd.Run(context.Background(), []string{
		"run",
		"--repo", "org/repo",
		"--pr", "1",
		"--head-sha", "0123456789abcdef0123456789abcdef01234567",
		"--base-branch", "develop",
		"--pipeline-config", path,
	})

	// The config file branch matches the event, so the run passes the
	// trigger filter and proceeds to pipeline construction, which fails
	// on the missing GitHub credentials
	gt.Error(t, err)
}

func TestCmdRun_ConfigFileBranchRejectsOtherBranches(t *testing.T) {
	path := writePipelineConfig(t, `
branch = "develop"
delegate_cmd = "./ai-flow.sh"
`)

	cmd := cmdRun()
	err := cmd.Run(context.Background(), []string{
		"run",
		"--repo", "org/repo",
		"--pr", "1",
		"--head-sha", "0123456789abcdef0123456789abcdef01234567",
		"--base-branch", "main",
		"--pipeline-config", path,
	})

	// Filtered out before any step or client construction happens
	gt.NoError(t, err)
}

func TestCmdRun_NonTargetBranchIsNoOp(t *testing.T) {
	cmd := cmdRun()
	err := cmd.Run(context.Background(), []string{
		"run",
		"--repo", "org/repo",
		"--pr", "1",
		"--head-sha", "0123456789abcdef0123456789abcdef01234567",
		"--base-branch", "develop",
		"--delegate-cmd", "./ai-flow.sh",
	})

	gt.NoError(t, err)
}
