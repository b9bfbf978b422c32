package interfaces

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// Notifier reports the outcome of a completed pipeline run to an
// external channel. Implementations are best-effort: callers log and
// discard errors.
type Notifier interface {
	NotifyRunResult(ctx context.Context, run *model.Run) error
}
