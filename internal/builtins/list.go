package builtins

import (
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/value"
)

func cons(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("cons", args, 2); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	xs, err := asList("cons", alloc, evaluated[1])
	if err != nil {
		return 0, err
	}
	elements := make([]value.Handle, 0, len(xs.Elements)+1)
	elements = append(elements, evaluated[0])
	elements = append(elements, xs.Elements...)
	return alloc.Manage(&value.List{Elements: elements}), nil
}

func car(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("car", args, 1); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	xs, err := asList("car", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	if len(xs.Elements) == 0 {
		return 0, errs.NewEvaluation(0, 0, "car: empty list")
	}
	return xs.Elements[0], nil
}

func cdr(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("cdr", args, 1); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	xs, err := asList("cdr", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	if len(xs.Elements) == 0 {
		return 0, errs.NewEvaluation(0, 0, "cdr: empty list")
	}
	rest := make([]value.Handle, len(xs.Elements)-1)
	copy(rest, xs.Elements[1:])
	return alloc.Manage(&value.List{Elements: rest}), nil
}

func list(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	return alloc.Manage(&value.List{Elements: evaluated}), nil
}

func isNull(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("null?", args, 1); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve("null?", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	l, ok := v.(*value.List)
	return alloc.Manage(value.FromBool(ok && len(l.Elements) == 0)), nil
}
