// Package solverdriver wires model.Input through topology/fixture and
// optimizer.Build into a simplex.Problem, invokes Solve, and maps the
// terminal status onto the driver's own result type: a non-optimal
// solve is the "no solution" sentinel, never a partially populated
// value.
package solverdriver
