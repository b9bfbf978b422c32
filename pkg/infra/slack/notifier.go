package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

type notifier struct {
	client  *slack.Client
	channel string
}

// NewNotifier creates a Notifier that posts run outcomes to a Slack channel
func NewNotifier(token, channel string) interfaces.Notifier {
	return &notifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// NotifyRunResult posts a one-line summary of the finished run
func (n *notifier) NotifyRunResult(ctx context.Context, run *model.Run) error {
	icon := ":white_check_mark:"
	if run.Failed() {
		icon = ":x:"
	}

	text := fmt.Sprintf("%s Pipeline run %s for %s#%d: %s",
		icon,
		run.ID,
		run.PullRequest.FullName(),
		run.PullRequest.Number,
		run.Status,
	)

	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false))
	if err != nil {
		return goerr.Wrap(err, "failed to post Slack notification",
			goerr.V("channel", n.channel),
			goerr.V("run_id", run.ID),
		)
	}

	return nil
}
