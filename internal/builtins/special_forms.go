package builtins

import (
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/value"
)

func quote(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("quote", args, 1); err != nil {
		return 0, err
	}
	return args[0], nil
}

// define requires its first argument to be an Atom, resolved *without*
// evaluating it (an Atom is the literal syntax for a name here, not a
// lookup). Binding happens through env.Define, which already enforces
// global-only per the environment package's own Scope.Define — a
// non-global caller gets exactly the illegal-context error the spec
// calls for.
func define(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("define", args, 2); err != nil {
		return 0, err
	}
	name, err := asAtom("define", alloc, args[0])
	if err != nil {
		return 0, err
	}
	val, err := eval.Eval(args[1], env, alloc)
	if err != nil {
		return 0, err
	}
	if err := env.Define(name.Name, val); err != nil {
		return 0, err
	}
	return lookupNull(env, alloc), nil
}

// lambda requires at least 2 arguments: a parameter list of Atoms, and
// a non-empty body. The captured scope is env.Capture(), taken at
// creation time, not at call time.
func lambda(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireMinArity("lambda", args, 2); err != nil {
		return 0, err
	}
	paramList, err := asList("lambda", alloc, args[0])
	if err != nil {
		return 0, err
	}
	params := make([]string, len(paramList.Elements))
	for i, h := range paramList.Elements {
		a, err := asAtom("lambda", alloc, h)
		if err != nil {
			return 0, err
		}
		params[i] = a.Name
	}
	fn := &value.LambdaFunction{
		Params:   params,
		Body:     args[1:],
		Captured: env.Capture(),
	}
	return alloc.Manage(fn), nil
}

func ifForm(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("if", args, 3); err != nil {
		return 0, err
	}
	predHandle, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	pred, err := resolve("if", alloc, predHandle)
	if err != nil {
		return 0, err
	}
	if value.Truthy(pred) {
		return eval.Eval(args[1], env, alloc)
	}
	return eval.Eval(args[2], env, alloc)
}

func and(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	for _, expr := range args {
		h, err := eval.Eval(expr, env, alloc)
		if err != nil {
			return 0, err
		}
		v, err := resolve("and", alloc, h)
		if err != nil {
			return 0, err
		}
		if !value.Truthy(v) {
			return alloc.Manage(value.False), nil
		}
	}
	return alloc.Manage(value.True), nil
}

func or(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	for _, expr := range args {
		h, err := eval.Eval(expr, env, alloc)
		if err != nil {
			return 0, err
		}
		v, err := resolve("or", alloc, h)
		if err != nil {
			return 0, err
		}
		if value.Truthy(v) {
			return alloc.Manage(value.True), nil
		}
	}
	return alloc.Manage(value.False), nil
}

func not(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("not", args, 1); err != nil {
		return 0, err
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve("not", alloc, h)
	if err != nil {
		return 0, err
	}
	return alloc.Manage(value.FromBool(!value.Truthy(v))), nil
}
