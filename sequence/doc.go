// Package sequence synthesizes a safe switching order from an initial
// and target switch-state assignment: breaker operations drive the
// outer loop, with adjacent isolators staged before and after each
// breaker operation so no isolator is ever racked while it is the sole
// live path.
package sequence
