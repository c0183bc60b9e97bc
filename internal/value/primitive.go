package value

// Fn is the signature every primitive and special form implements: it
// receives the *un-evaluated* argument expressions (as handles to the
// s-expressions the parser produced) and the caller's environment, and
// decides for itself whether, when, and in what order to evaluate them.
// This is what unifies special forms (if, quote, define, lambda, and,
// or) with ordinary eager primitives under a single dispatch path.
type Fn func(args []Handle, env Env, alloc Allocator) (Handle, error)

// PrimitiveFunction pairs a name with an opaque callable. Self-evaluating.
type PrimitiveFunction struct {
	Name string
	Call Fn
}

func (p *PrimitiveFunction) Kind() Kind { return PrimitiveKind }

func (p *PrimitiveFunction) Display(Resolver) string { return "<primitive " + p.Name + ">" }

func (p *PrimitiveFunction) Readable(r Resolver) string { return p.Display(r) }
