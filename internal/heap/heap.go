// Package heap implements the tracing allocator that owns every
// dynamically created value in the interpreter and reclaims unreachable
// ones with mark-and-sweep.
package heap

import (
	"io"
	"log/slog"

	"github.com/dolthub/swiss"

	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/value"
)

type entry struct {
	val  value.Value
	live bool
}

// Heap maps value handles to their owned storage and a liveness bit.
// The tracking table is a swiss.Map rather than a built-in Go map: it
// is mutated on every allocation and walked and pruned on every
// collection, which is exactly the access pattern a swiss table is
// built for.
type Heap struct {
	entries *swiss.Map[value.Handle, *entry]
	next    value.Handle
	log     *slog.Logger
}

// New creates an empty heap. A nil logger disables GC tracing.
func New(log *slog.Logger) *Heap {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Heap{
		entries: swiss.NewMap[value.Handle, *entry](64),
		next:    1, // 0 is reserved as the invalid handle
		log:     log,
	}
}

// Manage inserts v with live=false and returns its handle. The heap
// assumes sole responsibility for eventually destroying v.
func (h *Heap) Manage(v value.Value) value.Handle {
	handle := h.next
	h.next++
	h.entries.Put(handle, &entry{val: v})
	return handle
}

// Resolve returns the value behind a handle.
func (h *Heap) Resolve(handle value.Handle) (value.Value, bool) {
	e, ok := h.entries.Get(handle)
	if !ok {
		return nil, false
	}
	return e.val, true
}

// Len reports how many entries are currently tracked.
func (h *Heap) Len() int { return h.entries.Count() }

// Stats summarizes a single collection cycle.
type Stats struct {
	Marked int
	Swept  int
}

// Collect runs mark-and-sweep against the bindings of root, which in
// production is always the pinned GlobalEnv.
func (h *Heap) Collect(root value.ClosureScope) (Stats, error) {
	h.entries.Iter(func(_ value.Handle, e *entry) bool {
		e.live = false
		return false
	})

	marked := 0
	for _, handle := range root.Bindings() {
		n, err := h.mark(handle)
		if err != nil {
			return Stats{}, err
		}
		marked += n
	}

	var dead []value.Handle
	h.entries.Iter(func(handle value.Handle, e *entry) bool {
		if !e.live {
			dead = append(dead, handle)
		}
		return false
	})

	for _, handle := range dead {
		h.destroy(handle)
	}

	stats := Stats{Marked: marked, Swept: len(dead)}
	h.log.Debug("gc cycle", "marked", stats.Marked, "swept", stats.Swept, "live", h.entries.Count())
	return stats, nil
}

// mark marks handle and everything reachable from it, short-circuiting
// on an already-marked handle so that cycles (a top-level closure that
// reaches itself through the global scope) terminate.
func (h *Heap) mark(handle value.Handle) (int, error) {
	e, ok := h.entries.Get(handle)
	if !ok {
		return 0, errs.NewImplementation("mark: untracked handle %d", handle)
	}
	if e.live {
		return 0, nil
	}
	e.live = true
	count := 1

	switch v := e.val.(type) {
	case *value.List:
		for _, elem := range v.Elements {
			n, err := h.mark(elem)
			if err != nil {
				return count, err
			}
			count += n
		}
	case *value.LambdaFunction:
		for _, expr := range v.Body {
			n, err := h.mark(expr)
			if err != nil {
				return count, err
			}
			count += n
		}
		for _, bound := range v.Captured.Bindings() {
			n, err := h.mark(bound)
			if err != nil {
				return count, err
			}
			count += n
		}
	}
	return count, nil
}

type closer interface{ Close() error }

// destroy removes handle's entry and releases any OS resource it owns.
// Port values close their underlying stream; every other value is left
// to the garbage collector.
func (h *Heap) destroy(handle value.Handle) {
	e, ok := h.entries.Get(handle)
	if !ok {
		return
	}
	if c, ok := e.val.(closer); ok {
		_ = c.Close()
	}
	h.entries.Delete(handle)
}

// Close destroys every tracked value, releasing any open ports. It is
// the heap's destructor, called once when the interpreter shuts down.
func (h *Heap) Close() {
	var all []value.Handle
	h.entries.Iter(func(handle value.Handle, _ *entry) bool {
		all = append(all, handle)
		return false
	})
	for _, handle := range all {
		h.destroy(handle)
	}
}

var _ value.Allocator = (*Heap)(nil)
