// Package main is the quill interpreter's command-line entry point: it
// builds a heap and global environment, then dispatches to either the
// interactive REPL or script mode depending on os.Args, exactly the
// interface spec §6 describes. The decision logic itself is ordinary
// process plumbing (the CORE the specification actually hardens is the
// heap, value model, environment, and evaluator this wires together).
package main

import (
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/quillang/quill/internal/builtins"
	"github.com/quillang/quill/internal/config"
	"github.com/quillang/quill/internal/driver"
	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/heap"
	"github.com/quillang/quill/internal/logging"
)

// Version information, replaced on build via ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	os.Exit(int(run(os.Args, mainer.CurrentStdio())))
}

// run builds the interpreter and dispatches to interactive or script
// mode. It is kept separate from main so it can be exercised with
// in-memory stdio in tests, matching boattime-awsl's own run(args,
// stdout, stderr) seam.
func run(args []string, stdio mainer.Stdio) mainer.ExitCode {
	if len(args) >= 2 && (args[1] == "-v" || args[1] == "--version") {
		fmt.Fprintf(stdio.Stdout, "quill %s (%s)\n", version, gitCommit)
		return mainer.Success
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "quill: config: %v\n", err)
		return mainer.InvalidArgs
	}

	log := logging.New(stdio.Stderr, cfg.GCTrace)
	h := heap.New(log)
	defer h.Close()

	global := environment.NewGlobalEnv()
	builtins.Bootstrap(global, h, stdio.Stdout, stdio.Stdin)

	if len(args) < 2 {
		if err := driver.Interactive(cfg, h, global, stdio.Stdout, stdio.Stderr); err != nil {
			fmt.Fprintf(stdio.Stderr, "quill: %v\n", err)
			return mainer.Failure
		}
		return mainer.Success
	}

	filename := args[1]
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "quill: %v\n", err)
		return mainer.Failure
	}

	builtins.BindArgv(global, h, args[2:])

	if err := driver.RunScript(cfg, filename, string(source), h, global); err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.Failure
	}
	return mainer.Success
}
