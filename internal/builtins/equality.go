package builtins

import (
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/value"
)

func numericEqual(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireMinArity("=", args, 2); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	first, err := asNumber("=", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	for _, h := range evaluated[1:] {
		n, err := asNumber("=", alloc, h)
		if err != nil {
			return 0, err
		}
		if n.Value != first.Value {
			return alloc.Manage(value.False), nil
		}
	}
	return alloc.Manage(value.True), nil
}

// eq tests structural equality for Number/String/Bool, and handle
// (address) equality for every other kind: two separately allocated
// lists with identical elements are not eq?.
func eq(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("eq?", args, 2); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	a, err := resolve("eq?", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	b, err := resolve("eq?", alloc, evaluated[1])
	if err != nil {
		return 0, err
	}

	var equal bool
	switch av := a.(type) {
	case *value.Number:
		bv, ok := b.(*value.Number)
		equal = ok && av.Value == bv.Value
	case *value.String:
		bv, ok := b.(*value.String)
		equal = ok && av.Value == bv.Value
	case *value.Bool:
		bv, ok := b.(*value.Bool)
		equal = ok && av.Value == bv.Value
	default:
		equal = evaluated[0] == evaluated[1]
	}
	return alloc.Manage(value.FromBool(equal)), nil
}
