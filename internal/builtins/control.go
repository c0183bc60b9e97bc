package builtins

import (
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/value"
)

// exitBuiltin raises an Exit signal, caught only by the driver.
func exitBuiltin(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	code := 0
	if len(args) > 0 {
		h, err := eval.Eval(args[0], env, alloc)
		if err != nil {
			return 0, err
		}
		if n, err := asNumber("exit", alloc, h); err == nil {
			code = int(n.Value)
		}
	}
	return 0, &errs.Exit{Code: code}
}

// evalBuiltin evaluates its argument, then evaluates the resulting
// value a second time: the documented way to run data as code.
func evalBuiltin(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("eval", args, 1); err != nil {
		return 0, err
	}
	once, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	return eval.Eval(once, env, alloc)
}

func isNumber(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("number?", args, 1); err != nil {
		return 0, err
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve("number?", alloc, h)
	if err != nil {
		return 0, err
	}
	_, ok := v.(*value.Number)
	return alloc.Manage(value.FromBool(ok)), nil
}
