package interfaces

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// Step is a single unit of the pipeline. Steps run strictly in order;
// a fail-fast step's error aborts the chain, a best-effort step's error
// is logged and discarded.
type Step interface {
	Name() string

	// BestEffort reports whether a failure of this step is non-fatal
	BestEffort() bool

	// Run executes the step. Steps share state only through the run's
	// workspace directory.
	Run(ctx context.Context, run *model.Run) error
}
