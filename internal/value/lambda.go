package value

import "strings"

// LambdaFunction is a closure: a captured environment snapshot, an
// ordered parameter list, and a non-empty body. Self-evaluating.
type LambdaFunction struct {
	Params   []string
	Body     []Handle
	Captured ClosureScope
}

func (f *LambdaFunction) Kind() Kind { return LambdaKind }

func (f *LambdaFunction) Display(Resolver) string {
	return "<lambda " + strings.Join(f.Params, " ") + ">"
}

func (f *LambdaFunction) Readable(r Resolver) string { return f.Display(r) }
