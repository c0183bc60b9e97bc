// Package logging builds the leveled, key-value logger used by the
// heap's GC tracer. No third-party logging library
// appears anywhere in the retrieved corpus, so log/slog is the one
// ambient concern this interpreter builds on the standard library; see
// DESIGN.md for the explicit justification.
package logging

import (
	"io"
	"log/slog"
)

// New builds a text handler writing to w. debug enables Debug-level
// output (the heap's per-cycle marked/swept counts); otherwise only
// Warn and above are emitted.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
