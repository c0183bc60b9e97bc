package builtins

import (
	"io"
	"os"

	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/eval"
	"github.com/quillang/quill/internal/lexer"
	"github.com/quillang/quill/internal/parser"
	"github.com/quillang/quill/internal/value"
)

// openOutputPort evaluates its string argument as a file path and opens
// it for writing, truncating or creating it. I/O failures are signaled
// as #f, not as an error, so scripts can test the result.
func openOutputPort(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("open-output-port", args, 1); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	name, err := asString("open-output-port", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	f, openErr := os.Create(name.Value)
	if openErr != nil {
		return alloc.Manage(value.False), nil
	}
	return alloc.Manage(&value.OutPort{Name: name.Value, W: f, Closer: f}), nil
}

func openInputPort(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("open-input-port", args, 1); err != nil {
		return 0, err
	}
	evaluated, err := eval.EvalArgs(args, env, alloc)
	if err != nil {
		return 0, err
	}
	name, err := asString("open-input-port", alloc, evaluated[0])
	if err != nil {
		return 0, err
	}
	f, openErr := os.Open(name.Value)
	if openErr != nil {
		return alloc.Manage(value.False), nil
	}
	return alloc.Manage(&value.InPort{Name: name.Value, R: f, Closer: f}), nil
}

func closeOutputPort(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("close-output-port", args, 1); err != nil {
		return 0, err
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve("close-output-port", alloc, h)
	if err != nil {
		return 0, err
	}
	p, ok := v.(*value.OutPort)
	if !ok {
		return 0, errs.NewEvaluation(0, 0, "close-output-port: expected an output port, got %s", v.Kind())
	}
	if closeErr := p.Close(); closeErr != nil {
		return 0, &errs.IO{Op: "close", Path: p.Name, Wrapped: closeErr}
	}
	return lookupNull(env, alloc), nil
}

func closeInputPort(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("close-input-port", args, 1); err != nil {
		return 0, err
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve("close-input-port", alloc, h)
	if err != nil {
		return 0, err
	}
	p, ok := v.(*value.InPort)
	if !ok {
		return 0, errs.NewEvaluation(0, 0, "close-input-port: expected an input port, got %s", v.Kind())
	}
	if closeErr := p.Close(); closeErr != nil {
		return 0, &errs.IO{Op: "close", Path: p.Name, Wrapped: closeErr}
	}
	return lookupNull(env, alloc), nil
}

// outPortArg resolves an optional trailing port argument (display and
// displayln both take one), defaulting to the standard output port
// bound as std-output-port.
func outPortArg(name string, args []value.Handle, portIdx int, env value.Env, alloc value.Allocator) (*value.OutPort, error) {
	if len(args) <= portIdx {
		h, ok := env.Lookup("std-output-port")
		if !ok {
			return nil, errs.NewImplementation("%s: std-output-port is not bound", name)
		}
		v, err := resolve(name, alloc, h)
		if err != nil {
			return nil, err
		}
		p, ok := v.(*value.OutPort)
		if !ok {
			return nil, errs.NewImplementation("%s: std-output-port is not an output port", name)
		}
		return p, nil
	}
	h, err := eval.Eval(args[portIdx], env, alloc)
	if err != nil {
		return nil, err
	}
	v, err := resolve(name, alloc, h)
	if err != nil {
		return nil, err
	}
	p, ok := v.(*value.OutPort)
	if !ok {
		return nil, errs.NewEvaluation(0, 0, "%s: expected an output port, got %s", name, v.Kind())
	}
	return p, nil
}

func writeTo(name string, args []value.Handle, suffix string, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireMinArity(name, args, 1); err != nil {
		return 0, err
	}
	if len(args) > 2 {
		return 0, errs.NewEvaluation(0, 0, "%s: expected 1 or 2 arguments, got %d", name, len(args))
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve(name, alloc, h)
	if err != nil {
		return 0, err
	}
	p, err := outPortArg(name, args, 1, env, alloc)
	if err != nil {
		return 0, err
	}
	if p.Closed {
		return 0, &errs.IO{Op: "write", Path: p.Name, Wrapped: os.ErrClosed}
	}
	if _, writeErr := io.WriteString(p.W, v.Display(alloc)+suffix); writeErr != nil {
		return 0, &errs.IO{Op: "write", Path: p.Name, Wrapped: writeErr}
	}
	return lookupNull(env, alloc), nil
}

func display(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	return writeTo("display", args, "", env, alloc)
}

func displayln(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	return writeTo("displayln", args, "\n", env, alloc)
}

func portToString(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("port->string", args, 1); err != nil {
		return 0, err
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	v, err := resolve("port->string", alloc, h)
	if err != nil {
		return 0, err
	}
	p, ok := v.(*value.InPort)
	if !ok {
		return 0, errs.NewEvaluation(0, 0, "port->string: expected an input port, got %s", v.Kind())
	}
	if p.Closed {
		return alloc.Manage(value.False), nil
	}
	data, readErr := io.ReadAll(p.R)
	if readErr != nil {
		return alloc.Manage(value.False), nil
	}
	return alloc.Manage(&value.String{Value: string(data)}), nil
}

// read parses its string argument as a single s-expression and returns
// the resulting value, heap-allocated through the same alloc this
// builtin is running under.
func read(args []value.Handle, env value.Env, alloc value.Allocator) (value.Handle, error) {
	if err := requireArity("read", args, 1); err != nil {
		return 0, err
	}
	h, err := eval.Eval(args[0], env, alloc)
	if err != nil {
		return 0, err
	}
	s, err := asString("read", alloc, h)
	if err != nil {
		return 0, err
	}
	p, err := parser.New(lexer.New(s.Value), alloc)
	if err != nil {
		return 0, err
	}
	handle, ok, err := p.Next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errs.NewEvaluation(0, 0, "read: no expression to read")
	}
	return handle, nil
}
