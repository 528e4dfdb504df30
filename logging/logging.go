/*
Logging Module - Structured Diagnostics
===========================================

Generalizes the teacher's ad hoc fmt.Printf warnings into structured
zerolog logging, kept entirely off the comparison pipeline's hot path per
§5 ("no I/O inside the core; parsing and derivation are pure CPU"): the
core packages (node, rational, primes, lexer, parser, evaluator, derive,
compare) never import this package. Only the cmd layer logs, and it logs
events about formulas, not every constringe step.

Log defaults to a no-op logger so importing this package has zero
observable effect until Init is called by the CLI entry point.
*/
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger every cmd-layer call site writes
// through. It starts as a no-op so tests and library callers that never
// call Init see no log output.
var Log zerolog.Logger = zerolog.Nop()

// Init configures Log for interactive use: human-readable console output
// at info level, or silence when verbose is false.
func Init(verbose bool) {
	if !verbose {
		Log = zerolog.Nop()
		return
	}
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	Log = zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
