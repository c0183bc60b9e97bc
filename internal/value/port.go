package value

import "io"

// InPort is a handle to a readable character stream: standard input or
// a named file. Self-evaluating; carries open/closed state.
type InPort struct {
	Name   string
	R      io.Reader
	Closer io.Closer
	Closed bool
}

func (p *InPort) Kind() Kind { return InPortKind }

func (p *InPort) Display(Resolver) string { return "<InPort " + p.Name + ">" }

func (p *InPort) Readable(r Resolver) string { return p.Display(r) }

// Close marks the port closed and releases the underlying handle, if
// any. Standard input has no Closer and Close is then a no-op beyond
// flipping the Closed flag.
func (p *InPort) Close() error {
	if p.Closed {
		return nil
	}
	p.Closed = true
	if p.Closer != nil {
		return p.Closer.Close()
	}
	return nil
}

// OutPort is a handle to a writable character stream: standard output
// or a named file. Self-evaluating; carries open/closed state.
type OutPort struct {
	Name   string
	W      io.Writer
	Closer io.Closer
	Closed bool
}

func (p *OutPort) Kind() Kind { return OutPortKind }

// Display matches the spec's printed form for output ports, spacing
// included: "< output-port NAME>".
func (p *OutPort) Display(Resolver) string { return "< output-port " + p.Name + ">" }

func (p *OutPort) Readable(r Resolver) string { return p.Display(r) }

func (p *OutPort) Close() error {
	if p.Closed {
		return nil
	}
	p.Closed = true
	if p.Closer != nil {
		return p.Closer.Close()
	}
	return nil
}
