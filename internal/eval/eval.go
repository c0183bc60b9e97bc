// Package eval implements the rules that reduce an s-expression to a
// value against an environment: self-evaluation, atom lookup, and list
// application (which subsumes special forms, since every callable
// decides for itself whether to evaluate its arguments).
package eval

import (
	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/value"
)

// Eval reduces the s-expression behind handle against env, allocating
// any new values it needs through alloc.
func Eval(handle value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	v, ok := alloc.Resolve(handle)
	if !ok {
		return 0, errs.NewImplementation("eval: untracked handle %d", handle)
	}

	switch v := v.(type) {
	case *value.Number, *value.String, *value.Bool,
		*value.PrimitiveFunction, *value.LambdaFunction,
		*value.InPort, *value.OutPort:
		return handle, nil

	case *value.Atom:
		bound, ok := env.Lookup(v.Name)
		if !ok {
			return 0, errs.NewEvaluation(0, 0, "Encountered undefined atom %s", v.Name)
		}
		return bound, nil

	case *value.List:
		return evalList(v, env, alloc)

	default:
		return 0, errs.NewImplementation("eval: unhandled value kind %T", v)
	}
}

func evalList(list *value.List, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if len(list.Elements) == 0 {
		return 0, errs.NewEvaluation(0, 0, "the empty list is not applicable")
	}

	headHandle, err := Eval(list.Elements[0], env, alloc)
	if err != nil {
		return 0, err
	}
	return Apply(headHandle, list.Elements[1:], env, alloc)
}

// Apply invokes the already-evaluated callable behind fnHandle against
// argExprs, a (possibly empty) list of un-evaluated argument
// expressions, in callerEnv. It is the shared primitive-or-lambda
// dispatch that evalList uses for ordinary calls and that the
// higher-order builtins (map, filter, fold) use to invoke their
// function argument.
func Apply(fnHandle value.Handle, argExprs []value.Handle, callerEnv value.Env, alloc value.Allocator) (value.Handle, error) {
	fnVal, ok := alloc.Resolve(fnHandle)
	if !ok {
		return 0, errs.NewImplementation("eval: untracked handle %d", fnHandle)
	}

	switch fn := fnVal.(type) {
	case *value.PrimitiveFunction:
		return fn.Call(argExprs, callerEnv, alloc)
	case *value.LambdaFunction:
		return applyLambda(fn, argExprs, callerEnv, alloc)
	default:
		return 0, errs.NewEvaluation(0, 0, "not a function: %s", fnVal.Display(alloc))
	}
}

// applyLambda implements spec §4.5's function application rule: the
// working environment starts from the lambda's *captured* snapshot,
// never the caller's scope, and each argument is evaluated in the
// caller's environment before being bound into it.
func applyLambda(fn *value.LambdaFunction, argExprs []value.Handle, callerEnv value.Env, alloc value.Allocator) (value.Handle, error) {
	if len(argExprs) != len(fn.Params) {
		return 0, errs.NewEvaluation(0, 0, "wrong number of arguments: expected %d, got %d", len(fn.Params), len(argExprs))
	}

	global := globalOf(callerEnv)
	working := environment.Extend(fn, global)

	for i, param := range fn.Params {
		argVal, err := Eval(argExprs[i], callerEnv, alloc)
		if err != nil {
			return 0, err
		}
		working.Bind(param, argVal)
	}

	var result value.Handle
	for _, expr := range fn.Body {
		v, err := Eval(expr, working, alloc)
		if err != nil {
			return 0, err
		}
		result = v
	}
	return result, nil
}

// EvalArgs evaluates a slice of un-evaluated argument expressions left
// to right. Eager primitives use this to get the argument policy spec
// §4.6 describes for +, -, cons, list, and friends.
func EvalArgs(exprs []value.Handle, env value.Env, alloc value.Allocator) ([]value.Handle, error) {
	out := make([]value.Handle, len(exprs))
	for i, expr := range exprs {
		v, err := Eval(expr, env, alloc)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// globalOf returns the pinned GlobalEnv reachable from any Env this
// evaluator ever constructs: either env itself, or a Scope's back-link.
func globalOf(env value.Env) *environment.GlobalEnv {
	switch e := env.(type) {
	case *environment.GlobalEnv:
		return e
	case *environment.Scope:
		return e.Global()
	default:
		panic("eval: unknown Env implementation")
	}
}
