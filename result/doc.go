// Package result assembles a solverdriver.Outcome into the Output
// record: switch operations, transformer assignment, per-zone status,
// the dispatch plan and a summary. A non-optimal solve never reaches
// this package; solverdriver already turned that into ErrNoSolution.
package result
