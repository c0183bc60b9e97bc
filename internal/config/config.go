// Package config defines the interpreter's process configuration: the
// handful of knobs the driver needs before it can build a heap, a
// global environment, and either a REPL or a script run. Values are
// populated from the environment with github.com/caarlos0/env/v6,
// following mna-nenuphar's convention of making every flag
// env-var-overridable.
package config

import "github.com/caarlos0/env/v6"

// Config holds the driver's tunables. Every field has a sane default so
// a bare `quill` with no environment set up still behaves sensibly.
type Config struct {
	// Prompt is the string the REPL prints before reading each
	// top-level expression.
	Prompt string `env:"QUILL_PROMPT" envDefault:"quill> "`

	// GCTrace enables debug-level logging of mark/sweep counts on every
	// collection cycle.
	GCTrace bool `env:"QUILL_GC_TRACE" envDefault:"false"`

	// HistoryFile is where the REPL persists line-editing history
	// between sessions. Empty disables history persistence.
	HistoryFile string `env:"QUILL_HISTORY_FILE" envDefault:""`

	// MaxHeapEntries, when positive, makes script mode run an extra
	// collection before reading each top-level expression whenever the
	// heap tracks at least this many entries, in addition to the
	// once-per-top-level-expression collection the driver always runs.
	// The REPL does not use it.
	MaxHeapEntries int `env:"QUILL_MAX_HEAP_ENTRIES" envDefault:"0"`

	// NoColor disables ANSI colorization of the REPL's printed results
	// and errors, regardless of terminal detection.
	NoColor bool `env:"QUILL_NO_COLOR" envDefault:"false"`
}

// Load reads Config from the environment, applying the defaults above
// to anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
