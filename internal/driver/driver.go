// Package driver wires the CORE subsystems (heap, environment, parser,
// evaluator) into the two modes spec §6 describes at interface level:
// an interactive REPL and a script runner. The decision between the two
// and the os.Args plumbing that feeds it live in cmd/quill/main.go; this
// package is the testable seam boattime-awsl's own `run` function
// demonstrates, generalized to quill's two modes.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/quillang/quill/internal/config"
	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/heap"
	"github.com/quillang/quill/internal/lexer"
	"github.com/quillang/quill/internal/parser"
	"github.com/quillang/quill/internal/repl"
)

// Interactive runs the read-eval-print loop until the input stream
// closes or user code calls (exit).
func Interactive(cfg config.Config, h *heap.Heap, global *environment.GlobalEnv, stdout, stderr io.Writer) error {
	return repl.New(cfg, h, global, stdout, stderr).Run()
}

// RunScript evaluates every top-level expression in src against global
// in order, collecting after each one per spec §5. Nothing is printed
// by default. An (exit) call ends the script successfully; any other
// uncaught error is returned formatted as "[filename:line:col]
// message", ready for the caller to print and exit non-zero.
//
// When cfg.MaxHeapEntries is positive, RunScript also forces a
// collection before reading the next top-level expression if the heap
// already tracks at least that many entries. Since a collection has
// already run after the previous statement, that extra collection only
// finds values still reachable from the global scope.
func RunScript(cfg config.Config, filename, src string, h *heap.Heap, global *environment.GlobalEnv) error {
	p, err := parser.New(lexer.New(src), h)
	if err != nil {
		return formatScriptError(filename, err)
	}

	for {
		if cfg.MaxHeapEntries > 0 && h.Len() >= cfg.MaxHeapEntries {
			if _, err := h.Collect(global); err != nil {
				return formatScriptError(filename, err)
			}
		}

		handle, ok, err := p.Next()
		if err != nil {
			return formatScriptError(filename, err)
		}
		if !ok {
			return nil
		}

		if _, err := eval.Eval(handle, global, h); err != nil {
			var exit *errs.Exit
			if errors.As(err, &exit) {
				return nil
			}
			return formatScriptError(filename, err)
		}

		if _, err := h.Collect(global); err != nil {
			return formatScriptError(filename, err)
		}
	}
}

// formatScriptError renders err in the "[filename:line:col] message"
// wire format spec §6 names for uncaught script-mode errors. Errors
// that carry no position (an implementation error, say) fall back to
// "[filename] message".
func formatScriptError(filename string, err error) error {
	var p *errs.Parser
	if errors.As(err, &p) {
		return fmt.Errorf("[%s:%d:%d] %s", filename, p.Line, p.Column, p.Message)
	}
	var e *errs.Evaluation
	if errors.As(err, &e) {
		return fmt.Errorf("[%s:%d:%d] %s", filename, e.Line, e.Column, e.Message)
	}
	return fmt.Errorf("[%s] %v", filename, err)
}
