package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillang/quill/internal/environment"
	"github.com/quillang/quill/internal/heap"
	"github.com/quillang/quill/internal/value"
)

func TestManageAndResolve(t *testing.T) {
	h := heap.New(nil)
	handle := h.Manage(&value.Number{Value: 42})

	v, ok := h.Resolve(handle)
	require.True(t, ok)
	assert.Equal(t, 42.0, v.(*value.Number).Value)
}

func TestCollectSweepsUnreachable(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	reachable := h.Manage(&value.Number{Value: 1})
	require.NoError(t, g.Define("kept", reachable))

	h.Manage(&value.Number{Value: 2}) // never bound, should be swept

	stats, err := h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Marked)
	assert.Equal(t, 1, stats.Swept)
	assert.Equal(t, 1, h.Len())

	_, ok := h.Resolve(reachable)
	assert.True(t, ok)
}

func TestCollectTracesLists(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	elem := h.Manage(&value.Number{Value: 5})
	list := h.Manage(&value.List{Elements: []value.Handle{elem}})
	require.NoError(t, g.Define("l", list))

	stats, err := h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Marked)
	assert.Equal(t, 0, stats.Swept)
}

func TestCollectTracesLambdaClosureOverFreeVariable(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	freeVar := h.Manage(&value.Number{Value: 9})
	require.NoError(t, g.Define("free", freeVar))

	bodyExpr := h.Manage(&value.Atom{Name: "free"})

	lambdaHandle := h.Manage(&value.LambdaFunction{
		Params:   []string{},
		Body:     []value.Handle{bodyExpr},
		Captured: g.Capture(),
	})
	require.NoError(t, g.Define("fn", lambdaHandle))

	stats, err := h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Marked) // freeVar, lambdaHandle, bodyExpr
	assert.Equal(t, 0, stats.Swept)
}

func TestCollectTracesSelfReferentialLambdaCycleIdempotently(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	bodyExpr := h.Manage(&value.Atom{Name: "self"})

	// Hold onto the pointer Manage stores so it can be mutated in place
	// after the handle exists: this is what actually produces a cycle
	// through the heap graph rather than just a closure over a name.
	lfn := &value.LambdaFunction{
		Params: []string{},
		Body:   []value.Handle{bodyExpr},
	}
	lambdaHandle := h.Manage(lfn)
	require.NoError(t, g.Define("self", lambdaHandle))

	// Capture only after "self" is bound, so the closure snapshot
	// itself holds a handle back to the very lambda it belongs to:
	// lambdaHandle -> Captured.Bindings()["self"] -> lambdaHandle.
	lfn.Captured = g.Capture()

	stats, err := h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Marked) // lambdaHandle, bodyExpr; the cycle back to lambdaHandle is not recounted
	assert.Equal(t, 0, stats.Swept)

	// A second cycle must terminate identically: without the mark
	// phase's idempotent-on-already-marked short-circuit, marking
	// lambdaHandle would recurse into its own Captured bindings forever.
	stats, err = h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Marked)
	assert.Equal(t, 0, stats.Swept)
}

func TestCollectDestroysUnreachableExactlyOnce(t *testing.T) {
	h := heap.New(nil)
	g := environment.NewGlobalEnv()

	h.Manage(&value.Number{Value: 1})
	h.Manage(&value.Number{Value: 2})

	first, err := h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Swept)

	second, err := h.Collect(g)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Swept)
	assert.Equal(t, 0, h.Len())
}

func TestResolveUnknownHandle(t *testing.T) {
	h := heap.New(nil)
	_, ok := h.Resolve(value.Handle(999))
	assert.False(t, ok)
}
