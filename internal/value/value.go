// Package value defines the tagged universe of runtime values the
// interpreter operates on: numbers, strings, booleans, atoms, lists,
// functions (primitive and user-defined), and ports. Every value is
// heap-owned; this package only defines the shapes and the small
// interfaces (Allocator, Env, ClosureScope) that let a value reach back
// into the heap and the environment without this package importing
// those packages and creating an import cycle.
package value

import "fmt"

// Handle is a non-owning reference to a heap-managed value. The zero
// Handle is never issued by a Heap and is safe to use as a sentinel for
// "no value".
type Handle uint64

// Kind tags a Value's variant for quick dispatch without a type switch.
type Kind int

const (
	NumberKind Kind = iota
	StringKind
	BoolKind
	AtomKind
	ListKind
	PrimitiveKind
	LambdaKind
	InPortKind
	OutPortKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case AtomKind:
		return "atom"
	case ListKind:
		return "list"
	case PrimitiveKind:
		return "primitive"
	case LambdaKind:
		return "lambda"
	case InPortKind:
		return "in-port"
	case OutPortKind:
		return "out-port"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Resolver turns a Handle back into the Value it references. *heap.Heap
// is the only production implementation; it is named here, rather than
// imported, to keep this package free of a dependency on heap.
type Resolver interface {
	Resolve(h Handle) (Value, bool)
}

// Allocator is the subset of heap.Heap that primitives and the
// evaluator need in order to create new values.
type Allocator interface {
	Resolver
	Manage(v Value) Handle
}

// ClosureScope is the snapshot a LambdaFunction captures at creation
// time. environment.Scope and environment.GlobalEnv both implement it.
type ClosureScope interface {
	// Bindings returns every name bound directly in this scope (not
	// chained to an outer scope). The heap's mark phase walks this to
	// trace a closure's reachable values.
	Bindings() map[string]Handle
}

// Env is the subset of the two-tier environment (environment.Scope /
// environment.GlobalEnv) that primitives and the evaluator need.
type Env interface {
	ClosureScope
	// Lookup searches the local scope, then chains to the global scope.
	Lookup(name string) (Handle, bool)
	// Bind overwrites or inserts in the local scope.
	Bind(name string, h Handle)
	// Define is bind restricted to the global scope; it fails when
	// called on a non-global scope.
	Define(name string, h Handle) error
	// Capture produces a value-copy of this scope's bindings plus a
	// back-link to the global scope, for lexical closures.
	Capture() ClosureScope
	// IsGlobal reports whether this is the pinned global environment.
	IsGlobal() bool
}

// Value is the interface every runtime variant implements.
type Value interface {
	Kind() Kind
	// Display renders the value's display form: raw characters, no
	// escaping, no surrounding quotes for strings.
	Display(r Resolver) string
	// Readable renders the value's round-trip form: the form `read`
	// would accept back.
	Readable(r Resolver) string
}

// Truthy reports whether v counts as true in a boolean context. Every
// value is truthy except the Bool false singleton.
func Truthy(v Value) bool {
	b, ok := v.(*Bool)
	return !ok || b.Value
}
