package config

import "github.com/urfave/cli/v3"

// Slack holds optional Slack notification configuration
type Slack struct {
	Token   string `masq:"secret"`
	Channel string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for run outcome notifications",
			Destination: &c.Token,
			Sources:     cli.EnvVars("DROVER_SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for run outcome notifications",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("DROVER_SLACK_CHANNEL"),
		},
	}
}

// Enabled reports whether Slack notification is configured
func (c *Slack) Enabled() bool {
	return c.Token != "" && c.Channel != ""
}
