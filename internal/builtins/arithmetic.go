package builtins

import (
	"math"

	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/value"
)

// foldArith evaluates all arguments, requires at least one numeric
// argument, and folds left with the first argument seeding the
// accumulator, per spec's literal description of +, -, *, /.
func foldArith(name string, op func(acc, x float64) float64) value.Fn {
	return func(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
		if err := requireMinArity(name, args, 1); err != nil {
			return 0, err
		}
		evaluated, err := eval.EvalArgs(args, env, alloc)
		if err != nil {
			return 0, err
		}

		first, err := asNumber(name, alloc, evaluated[0])
		if err != nil {
			return 0, err
		}
		acc := first.Value
		for _, h := range evaluated[1:] {
			n, err := asNumber(name, alloc, h)
			if err != nil {
				return 0, err
			}
			acc = op(acc, n.Value)
		}
		return alloc.Manage(&value.Number{Value: acc}), nil
	}
}

func modulo(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("%", args, 2); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	a, err := asNumber("%", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	b, err := asNumber("%", alloc, evaluated[1])
	if err != nil {
		return 0, err
	}
	return alloc.Manage(&value.Number{Value: math.Mod(a.Value, b.Value)}), nil
}
