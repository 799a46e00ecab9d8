// Package simplex implements a small bounded-variable mixed-integer linear
// program engine: a dense Big-M primal simplex for the LP relaxation, driven
// by a depth-first branch-and-bound search over the integer/binary
// variables.
//
// No Go library in the reachable ecosystem fits an embeddable LP/MILP
// engine for this domain, so this package is a from-scratch component
// rather than an adaptation of existing code. Its surrounding
// conventions — functional option structs, context.Context-driven
// cancellation polled between iterations, sentinel errors checked with
// errors.Is — follow the same habits as the rest of this module so the
// whole tree reads as one codebase.
//
// Problem is a bounded-variable MILP in the form:
//
//	minimize    sum_j Obj[j] * x[j]
//	subject to  sum_j Coeffs[j] * x[j]  {<=,>=,==}  RHS   for each Constraint
//	            LB[j] <= x[j] <= UB[j]
//	            x[j] integral for Kind in {Integer, Binary}
//
// All variable lower bounds must be finite; this holds for every variable
// the optimizer package declares (MILP variables in this domain are always
// bounded below by zero or by a known physical floor).
package simplex
