package value

import "strings"

// List is an ordered, finite sequence of value handles. The empty list
// (len(Elements) == 0) is the distinguished "null" value; the language
// has no dotted-pair tail, so cdr always produces another List.
type List struct {
	Elements []Handle
}

// NewEmptyList allocates a fresh empty list literal. It is not the
// canonical `null` singleton bound in the global scope — see
// builtins.Bootstrap for that — but is structurally identical to it.
func NewEmptyList() *List { return &List{} }

func (l *List) Kind() Kind { return ListKind }

func (l *List) Display(r Resolver) string { return l.join(r, Value.Display) }

func (l *List) Readable(r Resolver) string { return l.join(r, Value.Readable) }

func (l *List) join(r Resolver, render func(Value, Resolver) string) string {
	parts := make([]string, len(l.Elements))
	for i, h := range l.Elements {
		v, ok := r.Resolve(h)
		if !ok {
			parts[i] = "#<dangling>"
			continue
		}
		parts[i] = render(v, r)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
