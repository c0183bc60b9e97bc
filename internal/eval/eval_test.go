package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/heap"
	"github.com/quillang/quill/internal/value"
)

func TestSelfEvaluatingKindsReturnThemselves(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	num := h.Manage(&value.Number{Value: 3})
	got, err := eval.Eval(num, g, h)
	require.NoError(t, err)
	assert.Equal(t, num, got)

	str := h.Manage(&value.String{Value: "hi"})
	got, err = eval.Eval(str, g, h)
	require.NoError(t, err)
	assert.Equal(t, str, got)

	b := h.Manage(value.True)
	got, err = eval.Eval(b, g, h)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestAtomLookupResolvesThroughGlobal(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()
	bound := h.Manage(&value.Number{Value: 42})
	require.NoError(t, g.Define("x", bound))

	atom := h.Manage(&value.Atom{Name: "x"})
	got, err := eval.Eval(atom, g, h)
	require.NoError(t, err)
	assert.Equal(t, bound, got)
}

func TestUndefinedAtomIsAnError(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()
	atom := h.Manage(&value.Atom{Name: "nope"})
	_, err := eval.Eval(atom, g, h)
	assert.ErrorContains(t, err, "undefined atom nope")
}

func TestEmptyListIsNotApplicable(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()
	empty := h.Manage(value.NewEmptyList())
	_, err := eval.Eval(empty, g, h)
	assert.Error(t, err)
}

func TestApplyingANonFunctionIsAnError(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()
	num := h.Manage(&value.Number{Value: 1})
	list := h.Manage(&value.List{Elements: []value.Handle{num}})
	_, err := eval.Eval(list, g, h)
	assert.ErrorContains(t, err, "not a function")
}

func TestPrimitiveApplicationReceivesUnevaluatedTail(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	var sawTail []value.Handle
	prim := &value.PrimitiveFunction{
		Name: "noop",
		Call: func(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
			sawTail = args
			return alloc.Manage(&value.Number{Value: 0}), nil
		},
	}
	primHandle := h.Manage(prim)
	require.NoError(t, g.Define("noop", primHandle))

	argAtom := h.Manage(&value.Atom{Name: "noop"}) // an un-evaluated tail element
	call := h.Manage(&value.List{Elements: []value.Handle{primHandle, argAtom}})

	_, err := eval.Eval(call, g, h)
	require.NoError(t, err)
	require.Len(t, sawTail, 1)
	assert.Equal(t, argAtom, sawTail[0])
}

func TestLambdaApplicationBindsParamsAndEvaluatesBody(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	// (lambda (x) x) applied to 7
	xAtom := h.Manage(&value.Atom{Name: "x"})
	lambda := &value.LambdaFunction{
		Params:   []string{"x"},
		Body:     []value.Handle{xAtom},
		Captured: g.Capture(),
	}
	lambdaHandle := h.Manage(lambda)

	seven := h.Manage(&value.Number{Value: 7})
	call := h.Manage(&value.List{Elements: []value.Handle{lambdaHandle, seven}})

	got, err := eval.Eval(call, g, h)
	require.NoError(t, err)
	assert.Equal(t, seven, got)
}

func TestLambdaArityMismatchIsAnError(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	lambda := &value.LambdaFunction{
		Params:   []string{"x", "y"},
		Body:     []value.Handle{h.Manage(&value.Atom{Name: "x"})},
		Captured: g.Capture(),
	}
	lambdaHandle := h.Manage(lambda)
	one := h.Manage(&value.Number{Value: 1})
	call := h.Manage(&value.List{Elements: []value.Handle{lambdaHandle, one}})

	_, err := eval.Eval(call, g, h)
	assert.ErrorContains(t, err, "wrong number of arguments")
}

func TestLambdaClosesOverCapturedBindingsNotCallSite(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	capturedVal := h.Manage(&value.Number{Value: 100})
	require.NoError(t, g.Define("y", capturedVal))

	// capture happens here, before y is ever rebound
	yAtom := h.Manage(&value.Atom{Name: "y"})
	lambda := &value.LambdaFunction{
		Params:   nil,
		Body:     []value.Handle{yAtom},
		Captured: g.Capture(),
	}
	lambdaHandle := h.Manage(lambda)

	// rebind y in the global after capture; the lambda's closure is a
	// snapshot, so it must still see the original value.
	require.NoError(t, g.Define("y", h.Manage(&value.Number{Value: 999})))

	call := h.Manage(&value.List{Elements: []value.Handle{lambdaHandle}})
	got, err := eval.Eval(call, g, h)
	require.NoError(t, err)
	assert.Equal(t, capturedVal, got)
}

func TestMultiFormBodyEvaluatesInOrderAndReturnsLast(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	first := h.Manage(&value.Number{Value: 1})
	second := h.Manage(&value.Number{Value: 2})
	lambda := &value.LambdaFunction{
		Body:     []value.Handle{first, second},
		Captured: g.Capture(),
	}
	lambdaHandle := h.Manage(lambda)
	call := h.Manage(&value.List{Elements: []value.Handle{lambdaHandle}})

	got, err := eval.Eval(call, g, h)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
