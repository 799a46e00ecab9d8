package simplex

import (
	"context"
	"time"
)

// SolveOptions configures Problem.Solve: a context for cancellation plus
// a couple of numeric knobs, normalized with defaults rather than
// requiring every caller to populate every field.
type SolveOptions struct {
	// Ctx, when non-nil, is polled between branch-and-bound nodes; a
	// canceled or expired context aborts the search and is reported as
	// StatusCanceled. There is no separate cancellation contract: callers
	// that need timeouts impose a solver time limit instead.
	Ctx context.Context

	// NodeLimit caps the number of branch-and-bound nodes explored. Zero
	// means unlimited.
	NodeLimit int

	// TimeLimit caps wall-clock search time. Zero means unlimited.
	TimeLimit time.Duration
}

func (o *SolveOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
