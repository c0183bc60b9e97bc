// Package repl implements the interactive read-eval-print loop spec §6
// leaves at interface level: prompt, read one sexp, evaluate it against
// the global environment, print its readable form, collect, repeat
// until Ctrl-D or an (exit) call. Line editing and history come from
// github.com/chzyer/readline; colorized results and error output from
// github.com/fatih/color — both grounded on the retrieved
// leinonen-go-lisp Lisp interpreter, which wires the same pair of
// libraries for the same purpose.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/quillang/quill/internal/config"
	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/heap"
	"github.com/quillang/quill/internal/lexer"
	"github.com/quillang/quill/internal/parser"
	"github.com/quillang/quill/internal/value"
)

// REPL drives one interactive session against a single heap and global
// environment.
type REPL struct {
	cfg    config.Config
	heap   *heap.Heap
	global *environment.GlobalEnv
	out    io.Writer
	errOut io.Writer
}

// New builds a REPL. The heap and global environment are expected to
// already carry the standard bindings (see builtins.Bootstrap).
func New(cfg config.Config, h *heap.Heap, global *environment.GlobalEnv, out, errOut io.Writer) *REPL {
	return &REPL{cfg: cfg, heap: h, global: global, out: out, errOut: errOut}
}

// Run reads and evaluates expressions until the input stream closes or
// an (exit) call is evaluated. A stream EOF or an exit call both return
// nil; any other error is an implementation failure in the REPL itself,
// not a user-code error (those are printed and looped past).
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.cfg.Prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	var pending strings.Builder
	for {
		rl.SetPrompt(r.promptFor(pending.Len() > 0))
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			pending.Reset()
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		pending.WriteString(line)
		pending.WriteByte('\n')

		handle, ok, complete, err := r.tryParse(pending.String())
		if !complete {
			continue
		}
		pending.Reset()
		if err != nil {
			r.printError(err)
			continue
		}
		if !ok {
			continue // blank line: nothing parsed
		}

		result, evalErr := eval.Eval(handle, r.global, r.heap)
		if evalErr != nil {
			var exit *errs.Exit
			if errors.As(evalErr, &exit) {
				return nil
			}
			r.printError(evalErr)
		} else if v, ok := r.heap.Resolve(result); ok {
			fmt.Fprintln(r.out, r.colorResult(v.Readable(r.heap)))
		}

		// Collection runs whether or not evaluation errored: an error
		// never corrupts the heap, so the global scope is still a
		// valid mark root and garbage from a failed statement should
		// not survive past it.
		stats, gcErr := r.heap.Collect(r.global)
		if gcErr != nil {
			r.printError(gcErr)
			continue
		}
		if r.cfg.GCTrace {
			fmt.Fprintf(r.errOut, "; gc: marked=%d swept=%d live=%d\n", stats.Marked, stats.Swept, r.heap.Len())
		}
	}
}

// tryParse attempts to read exactly one top-level sexp from src.
// complete is false when src is a well-formed prefix of a longer form
// (an unclosed list or string) and the REPL should read another line
// before reporting anything. ok is false only when src parses to
// nothing at all (a blank or comment-only line).
func (r *REPL) tryParse(src string) (handle value.Handle, ok, complete bool, err error) {
	p, err := parser.New(lexer.New(src), r.heap)
	if err != nil {
		if needsMoreInput(err) {
			return 0, false, false, nil
		}
		return 0, false, true, err
	}
	h, ok, err := p.Next()
	if err != nil {
		if needsMoreInput(err) {
			return 0, false, false, nil
		}
		return 0, false, true, err
	}
	return h, ok, true, nil
}

func (r *REPL) promptFor(continuation bool) string {
	if continuation {
		return "... "
	}
	return r.cfg.Prompt
}

func (r *REPL) colorResult(s string) string {
	if r.cfg.NoColor {
		return s
	}
	return color.GreenString("%s", s)
}

func (r *REPL) printError(err error) {
	if r.cfg.NoColor {
		fmt.Fprintln(r.errOut, err.Error())
		return
	}
	fmt.Fprintln(r.errOut, color.RedString("%s", err.Error()))
}

// needsMoreInput reports whether err is a ParserError caused by running
// out of input mid-form (an unclosed list or string), in which case the
// REPL should read another line and retry rather than reporting an
// error.
func needsMoreInput(err error) bool {
	var p *errs.Parser
	if !errors.As(err, &p) {
		return false
	}
	return strings.Contains(p.Message, "unexpected EOF inside list") ||
		strings.Contains(p.Message, "unterminated string literal") ||
		strings.Contains(p.Message, "unexpected end of input")
}
