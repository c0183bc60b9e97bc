package value

import "strconv"

// Number is a 64-bit floating-point value. Self-evaluating.
type Number struct {
	Value float64
}

func (n *Number) Kind() Kind { return NumberKind }

func (n *Number) Display(Resolver) string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

func (n *Number) Readable(Resolver) string { return n.Display(nil) }
