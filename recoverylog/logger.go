// Package recoverylog configures the structured logger shared by the
// solver driver, result assembler and CLI: a zerolog logger with a
// run_id field bound in at construction so every line emitted during a
// single solve request carries it.
package recoverylog

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// New returns a console-writer-backed logger scoped to runID. Passing an
// empty runID mints a fresh one.
func New(w io.Writer, runID string) zerolog.Logger {
	if runID == "" {
		runID = uuid.NewString()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()
}

// Default returns a logger writing to stderr with a freshly minted
// run_id, for callers that do not need to correlate against an
// externally supplied request id.
func Default() zerolog.Logger {
	return New(os.Stderr, "")
}
