// Package builtins implements the ~30 standard primitives and special
// forms that Bootstrap registers into a fresh global environment. Every
// entry follows the same shape as a user-defined primitive: it receives
// the un-evaluated argument expressions and the caller's environment,
// and decides for itself what to evaluate and when.
package builtins

import (
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/value"
)

func requireArity(name string, args []value.Handle, want int) error {
	if len(args) != want {
		return errs.NewEvaluation(0, 0, "%s: expected %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func requireMinArity(name string, args []value.Handle, min int) error {
	if len(args) < min {
		return errs.NewEvaluation(0, 0, "%s: expected at least %d argument(s), got %d", name, min, len(args))
	}
	return nil
}

func resolve(name string, alloc value.Allocator, h value.Handle) (value.Value, error) {
	v, ok := alloc.Resolve(h)
	if !ok {
		return nil, errs.NewImplementation("%s: untracked handle %d", name, h)
	}
	return v, nil
}

func asNumber(name string, alloc value.Allocator, h value.Handle) (*value.Number, error) {
	v, err := resolve(name, alloc, h)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*value.Number)
	if !ok {
		return nil, errs.NewEvaluation(0, 0, "%s: expected a number, got %s", name, v.Kind())
	}
	return n, nil
}

func asString(name string, alloc value.Allocator, h value.Handle) (*value.String, error) {
	v, err := resolve(name, alloc, h)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*value.String)
	if !ok {
		return nil, errs.NewEvaluation(0, 0, "%s: expected a string, got %s", name, v.Kind())
	}
	return s, nil
}

func asList(name string, alloc value.Allocator, h value.Handle) (*value.List, error) {
	v, err := resolve(name, alloc, h)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, errs.NewEvaluation(0, 0, "%s: expected a list, got %s", name, v.Kind())
	}
	return l, nil
}

func asAtom(name string, alloc value.Allocator, h value.Handle) (*value.Atom, error) {
	v, err := resolve(name, alloc, h)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*value.Atom)
	if !ok {
		return nil, errs.NewEvaluation(0, 0, "%s: expected an atom, got %s", name, v.Kind())
	}
	return a, nil
}

// lookupNull returns the canonical empty-list value bound to `null` in
// the global scope. Primitives that return "nothing" (define, close-*)
// return this rather than allocating a fresh empty list.
func lookupNull(env value.Env, alloc value.Allocator) value.Handle {
	h, ok := env.Lookup("null")
	if !ok {
		return alloc.Manage(value.NewEmptyList())
	}
	return h
}

// quoteWrap builds the expression (quote v): a two-element list whose
// evaluation, in any environment where `quote` is bound, returns v
// unchanged. map/filter/fold use this so that the function they invoke
// receives an already-computed value without re-evaluating it as code.
func quoteWrap(alloc value.Allocator, v value.Handle) value.Handle {
	quoteAtom := alloc.Manage(&value.Atom{Name: "quote"})
	return alloc.Manage(&value.List{Elements: []value.Handle{quoteAtom, v}})
}

func isFunction(v value.Value) bool {
	switch v.(type) {
	case *value.PrimitiveFunction, *value.LambdaFunction:
		return true
	default:
		return false
	}
}

func notAFunctionErr(name string, v value.Value) error {
	return errs.NewEvaluation(0, 0, "%s: expected a function, got %s", name, v.Kind())
}
