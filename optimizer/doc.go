// Package optimizer builds the dynamic recovery MILP: switch positions,
// transformer-to-zone assignment, a multi-commodity flow proving
// connectivity, dispatch of controllable resources, and the objective
// that selects among MIN_SWITCH_OP, MAX_SAFETY_REGION and MIN_COST.
//
// One file per constraint group: index.go declares the Index of decision
// variables, variables.go allocates every one of them, connectivity.go
// adds the energized-by/flow constraints,
// dispatch.go adds power balance, storage, backup-startup and
// switch-semantics constraints, and objective.go composes the selected
// objective. Build in build.go is the single orchestrator tying these
// together, one entry point for the whole model.
package optimizer
