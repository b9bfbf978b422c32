package config

import (
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Pipeline holds the step sequence configuration. Values come from
// flags and environment; a TOML file given via --pipeline-config
// overrides whatever it sets.
type Pipeline struct {
	Branch        string `toml:"branch"`
	SetupCmd      string `toml:"setup_cmd"`
	InstallCmd    string `toml:"install_cmd"`
	LockFile      string `toml:"lock_file"`
	DelegateCmd   string `toml:"delegate_cmd"`
	AckMessage    string `toml:"ack_message"`
	KeepWorkspace bool   `toml:"keep_workspace"`

	ConfigFile string `toml:"-"`
}

// Flags returns CLI flags for pipeline configuration
func (c *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Integration branch pull requests must target",
			Value:       "main",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("DROVER_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "setup-cmd",
			Usage:       "Optional toolchain setup command run before install",
			Destination: &c.SetupCmd,
			Sources:     cli.EnvVars("DROVER_SETUP_CMD"),
		},
		&cli.StringFlag{
			Name:        "install-cmd",
			Usage:       "Dependency install command",
			Value:       "npm ci",
			Destination: &c.InstallCmd,
			Sources:     cli.EnvVars("DROVER_INSTALL_CMD"),
		},
		&cli.StringFlag{
			Name:        "lock-file",
			Usage:       "Lock file that must exist in the checkout",
			Value:       "package-lock.json",
			Destination: &c.LockFile,
			Sources:     cli.EnvVars("DROVER_LOCK_FILE"),
		},
		&cli.StringFlag{
			Name:        "delegate-cmd",
			Usage:       "Command that invokes the delegated analysis engine",
			Destination: &c.DelegateCmd,
			Sources:     cli.EnvVars("DROVER_DELEGATE_CMD"),
		},
		&cli.StringFlag{
			Name:        "ack-message",
			Usage:       "Status comment posted on the pull request",
			Destination: &c.AckMessage,
			Sources:     cli.EnvVars("DROVER_ACK_MESSAGE"),
		},
		&cli.BoolFlag{
			Name:        "keep-workspace",
			Usage:       "Keep the run workspace for debugging",
			Destination: &c.KeepWorkspace,
			Sources:     cli.EnvVars("DROVER_KEEP_WORKSPACE"),
		},
		&cli.StringFlag{
			Name:        "pipeline-config",
			Usage:       "TOML file with pipeline settings",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("DROVER_PIPELINE_CONFIG"),
		},
	}
}

// Load applies the TOML config file when one is configured
func (c *Pipeline) Load() error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read pipeline config file",
			goerr.V("path", c.ConfigFile),
		)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return goerr.Wrap(err, "failed to parse pipeline config file",
			goerr.V("path", c.ConfigFile),
		)
	}

	return nil
}

// Validate checks that the required commands are present and parseable
func (c *Pipeline) Validate() error {
	if c.DelegateCmd == "" {
		return goerr.New("delegate command is required")
	}
	if c.InstallCmd == "" {
		return goerr.New("install command is required")
	}
	for _, cmd := range []string{c.SetupCmd, c.InstallCmd, c.DelegateCmd} {
		if cmd == "" {
			continue
		}
		if _, err := shellquote.Split(cmd); err != nil {
			return goerr.Wrap(err, "invalid command string", goerr.V("command", cmd))
		}
	}
	return nil
}

// SetupCommand returns the tokenized setup command, nil when unset
func (c *Pipeline) SetupCommand() ([]string, error) {
	if c.SetupCmd == "" {
		return nil, nil
	}
	return shellquote.Split(c.SetupCmd)
}

// InstallCommand returns the tokenized install command
func (c *Pipeline) InstallCommand() ([]string, error) {
	return shellquote.Split(c.InstallCmd)
}

// DelegateCommand returns the tokenized delegate command
func (c *Pipeline) DelegateCommand() ([]string, error) {
	return shellquote.Split(c.DelegateCmd)
}
