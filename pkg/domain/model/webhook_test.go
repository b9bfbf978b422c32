package model_test

import (
	"testing"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name  string
		event model.WebhookEvent
		want  bool
	}{
		{
			name: "Pull request opened",
			event: model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "opened",
			},
			want: true,
		},
		{
			name: "Pull request synchronized",
			event: model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "synchronize",
			},
			want: true,
		},
		{
			name: "Pull request closed",
			event: model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "closed",
			},
			want: false,
		},
		{
			name: "Pull request review requested",
			event: model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "review_requested",
			},
			want: false,
		},
		{
			name: "Non pull request event",
			event: model.WebhookEvent{
				Type:   model.WebhookEventType("push"),
				Action: "opened",
			},
			want: false,
		},
		{
			name: "Unknown event type",
			event: model.WebhookEvent{
				Type:   model.EventTypeUnknown,
				Action: "opened",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsSupportedEvent(); got != tt.want {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}
