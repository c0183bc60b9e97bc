// Package environment implements the interpreter's two-tier scope
// model: a single pinned, mutable GlobalEnv and immutable-by-convention
// lexically captured Scopes that chain lookups to it.
package environment

import (
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/value"
)

// GlobalEnv is the pinned, mutable symbol table. It is the heap's mark
// root and the only environment `define` may extend. Callers must never
// copy a GlobalEnv; captured Scopes hold a pointer to it, so it needs a
// stable address for the lifetime of the interpreter.
type GlobalEnv struct {
	bindings map[string]value.Handle
}

// NewGlobalEnv creates an empty global environment.
func NewGlobalEnv() *GlobalEnv {
	return &GlobalEnv{bindings: make(map[string]value.Handle)}
}

// Lookup searches the global table. The global environment never
// chains anywhere else.
func (g *GlobalEnv) Lookup(name string) (value.Handle, bool) {
	h, ok := g.bindings[name]
	return h, ok
}

// Bind overwrites or inserts a binding. On the global environment this
// is identical to Define.
func (g *GlobalEnv) Bind(name string, h value.Handle) { g.bindings[name] = h }

// Define is the global-only binding operation `define` uses.
func (g *GlobalEnv) Define(name string, h value.Handle) error {
	g.bindings[name] = h
	return nil
}

// Capture returns a Scope snapshotting the current global bindings with
// a back-link to itself. Top-level lambdas capture this way.
func (g *GlobalEnv) Capture() value.ClosureScope {
	return newScope(g.bindings, g)
}

// IsGlobal always reports true for GlobalEnv.
func (g *GlobalEnv) IsGlobal() bool { return true }

// Bindings exposes the global table directly for the heap's mark phase.
func (g *GlobalEnv) Bindings() map[string]value.Handle { return g.bindings }

// Scope is a value-copy of a symbol table plus an upward link to the
// global environment. It is produced by Capture() for closures and by
// Extend when applying a lambda.
type Scope struct {
	bindings map[string]value.Handle
	global   *GlobalEnv
}

func newScope(snapshot map[string]value.Handle, global *GlobalEnv) *Scope {
	cp := make(map[string]value.Handle, len(snapshot))
	for k, v := range snapshot {
		cp[k] = v
	}
	return &Scope{bindings: cp, global: global}
}

// NewScope creates a fresh scope chained to global, holding a copy of
// captured's bindings. This is what applying a lambda starts from: the
// captured snapshot, not the caller's scope (see Extend).
func NewScope(captured value.ClosureScope, global *GlobalEnv) *Scope {
	return newScope(captured.Bindings(), global)
}

// Extend returns a new Scope seeded with the lambda's captured
// snapshot, ready to have parameters bound into it.
func Extend(fn *value.LambdaFunction, global *GlobalEnv) *Scope {
	return NewScope(fn.Captured, global)
}

// Lookup searches the local scope first, then chains to the global
// environment.
func (s *Scope) Lookup(name string) (value.Handle, bool) {
	if h, ok := s.bindings[name]; ok {
		return h, true
	}
	return s.global.Lookup(name)
}

// Bind overwrites or inserts in the local scope only.
func (s *Scope) Bind(name string, h value.Handle) { s.bindings[name] = h }

// Define always fails on a non-global scope: spec §7 classifies
// defining outside the global environment as an illegal-context
// EvaluationError, not an implementation failure, so callers like
// internal/driver can errors.As-match it into the standard
// "[filename:line:col] message" wire format.
func (s *Scope) Define(name string, h value.Handle) error {
	return errs.NewEvaluation(0, 0, "define: cannot bind %q outside the global scope", name)
}

// Capture snapshots this scope's own bindings (not the global's) with
// the same back-link, for a closure created inside another closure's
// body.
func (s *Scope) Capture() value.ClosureScope {
	return newScope(s.bindings, s.global)
}

// IsGlobal always reports false for Scope.
func (s *Scope) IsGlobal() bool { return false }

// Bindings exposes this scope's local table for the heap's mark phase.
func (s *Scope) Bindings() map[string]value.Handle { return s.bindings }

// Global returns the back-linked global environment.
func (s *Scope) Global() *GlobalEnv { return s.global }

var (
	_ value.Env          = (*GlobalEnv)(nil)
	_ value.Env          = (*Scope)(nil)
	_ value.ClosureScope = (*GlobalEnv)(nil)
	_ value.ClosureScope = (*Scope)(nil)
)
