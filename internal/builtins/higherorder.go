package builtins

import (
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/value"
)

// mapFn evaluates f and xs, then applies f to each element of xs in
// order, wrapping each element as (quote elem) so that f's own argument
// evaluation returns the element unchanged rather than re-evaluating it
// as code.
func mapFn(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("map", args, 2); err != nil {
		return 0, err
	}
	fHandle, xsHandle, err := evalFnAndList("map", args, env, alloc)
	if err != nil {
		return 0, err
	}
	xs, err := asList("map", alloc, xsHandle)
	if err != nil {
		return 0, err
	}

	results := make([]value.Handle, len(xs.Elements))
	for i, elem := range xs.Elements {
		r, err := eval.Apply(fHandle, []value.Handle{quoteWrap(alloc, elem)}, env, alloc)
		if err != nil {
			return 0, err
		}
		results[i] = r
	}
	return alloc.Manage(&value.List{Elements: results}), nil
}

func filterFn(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("filter", args, 2); err != nil {
		return 0, err
	}
	fHandle, xsHandle, err := evalFnAndList("filter", args, env, alloc)
	if err != nil {
		return 0, err
	}
	xs, err := asList("filter", alloc, xsHandle)
	if err != nil {
		return 0, err
	}

	var kept []value.Handle
	for _, elem := range xs.Elements {
		r, err := eval.Apply(fHandle, []value.Handle{quoteWrap(alloc, elem)}, env, alloc)
		if err != nil {
			return 0, err
		}
		rv, err := resolve("filter", alloc, r)
		if err != nil {
			return 0, err
		}
		if value.Truthy(rv) {
			kept = append(kept, elem)
		}
	}
	return alloc.Manage(&value.List{Elements: kept}), nil
}

func foldFn(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("fold", args, 3); err != nil {
		return 0, err
	}
	fHandle, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	fVal, err := resolve("fold", alloc, fHandle)
	if err != nil {
		return 0, err
	}
	if !isFunction(fVal) {
		return 0, notAFunctionErr("fold", fVal)
	}
	acc, err := eval.Eval(args[1], env, alloc)
	if err != nil {
		return 0, err
	}
	xsHandle, err := eval.Eval(args[2], env, alloc)
	if err != nil {
		return 0, err
	}
	xs, err := asList("fold", alloc, xsHandle)
	if err != nil {
		return 0, err
	}

	for _, elem := range xs.Elements {
		acc, err = eval.Apply(fHandle, []value.Handle{quoteWrap(alloc, acc), quoteWrap(alloc, elem)}, env, alloc)
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}

func evalFnAndList(name string, args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, value.Handle, error) {
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, 0, err
	}
	fVal, err := resolve(name, alloc, evaluated[0])
	if err != nil {
		return 0, 0, err
	}
	if !isFunction(fVal) {
		return 0, 0, notAFunctionErr(name, fVal)
	}
	return evaluated[0], evaluated[1], nil
}
