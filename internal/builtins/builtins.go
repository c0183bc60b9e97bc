package builtins

import (
	"io"

	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/value"
)

func register(global *environment.GlobalEnv, alloc value.Allocator, name string, fn value.Fn) {
	h := alloc.Manage(&value.PrimitiveFunction{Name: name, Call: fn})
	_ = global.Define(name, h)
}

// Bootstrap populates a fresh GlobalEnv with every standard binding
// listed in the language's external interface: null, std-output-port,
// and the full primitive library. stdout backs std-output-port; stdin
// is reserved for a future std-input-port binding, accepted here for
// symmetry with the driver's Stdio.
func Bootstrap(global *environment.GlobalEnv, alloc value.Allocator, stdout io.Writer, stdin io.Reader) {
	nullHandle := alloc.Manage(value.NewEmptyList())
	_ = global.Define("null", nullHandle)

	stdoutPort := alloc.Manage(&value.OutPort{Name: "stdout", W: stdout})
	_ = global.Define("std-output-port", stdoutPort)

	register(global, alloc, "+", foldArith("+", func(acc, x float64) float64 { return acc + x }))
	register(global, alloc, "-", foldArith("-", func(acc, x float64) float64 { return acc - x }))
	register(global, alloc, "*", foldArith("*", func(acc, x float64) float64 { return acc * x }))
	register(global, alloc, "/", foldArith("/", func(acc, x float64) float64 { return acc / x }))
	register(global, alloc, "%", modulo)

	register(global, alloc, "cons", cons)
	register(global, alloc, "car", car)
	register(global, alloc, "cdr", cdr)
	register(global, alloc, "list", list)
	register(global, alloc, "null?", isNull)

	register(global, alloc, "quote", quote)
	register(global, alloc, "define", define)
	register(global, alloc, "lambda", lambda)
	register(global, alloc, "if", ifForm)
	register(global, alloc, "and", and)
	register(global, alloc, "or", or)
	register(global, alloc, "not", not)

	register(global, alloc, "=", numericEqual)
	register(global, alloc, "eq?", eq)

	register(global, alloc, "map", mapFn)
	register(global, alloc, "filter", filterFn)
	register(global, alloc, "fold", foldFn)

	register(global, alloc, "exit", exitBuiltin)
	register(global, alloc, "eval", evalBuiltin)
	register(global, alloc, "number?", isNumber)

	register(global, alloc, "open-output-port", openOutputPort)
	register(global, alloc, "open-input-port", openInputPort)
	register(global, alloc, "close-output-port", closeOutputPort)
	register(global, alloc, "close-input-port", closeInputPort)
	register(global, alloc, "display", display)
	register(global, alloc, "displayln", displayln)
	register(global, alloc, "port->string", portToString)
	register(global, alloc, "read", read)
}

// BindArgv allocates args as a List of Strings and binds it to ARGV in
// global, the script-mode-only global spec §6 names. Each string is
// manage'd individually before the List itself is, so the whole
// binding participates in GC exactly like any value the parser or
// evaluator produces.
func BindArgv(global *environment.GlobalEnv, alloc value.Allocator, args []string) {
	elements := make([]value.Handle, len(args))
	for i, a := range args {
		elements[i] = alloc.Manage(&value.String{Value: a})
	}
	handle := alloc.Manage(&value.List{Elements: elements})
	_ = global.Define("ARGV", handle)
}
