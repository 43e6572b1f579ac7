package symtab

import (
	"fmt"

	"github.com/tauclang/tauc/internal/token"
)

// Scope is one of GlobalScope, FuncScope, or LocalScope. Lookup walks the
// parent chain outward, returning the first hit.
type Scope interface {
	Define(sym *Symbol) error
	Lookup(name string) (*Symbol, bool)
	LookupLocal(name string) (*Symbol, bool)
	Parent() Scope
	Span() token.Span
}

type base struct {
	symbols map[string]*Symbol
	parent  Scope
	span    token.Span
}

func newBase(parent Scope, span token.Span) base {
	return base{symbols: make(map[string]*Symbol), parent: parent, span: span}
}

func (b *base) Define(sym *Symbol) error {
	if _, exists := b.symbols[sym.Name]; exists {
		return fmt.Errorf("%q already declared in this scope", sym.Name)
	}
	b.symbols[sym.Name] = sym
	return nil
}

func (b *base) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := b.symbols[name]
	return sym, ok
}

func (b *base) Parent() Scope { return b.parent }

func (b *base) Span() token.Span { return b.span }

func lookup(s Scope, name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent() {
		if sym, ok := cur.LookupLocal(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// GlobalScope holds top-level function declarations. It has no parent.
type GlobalScope struct {
	base
}

func NewGlobalScope(span token.Span) *GlobalScope {
	return &GlobalScope{base: newBase(nil, span)}
}

func (g *GlobalScope) Lookup(name string) (*Symbol, bool) { return lookup(g, name) }

// FuncScope holds a function's parameters. Its parent is always the
// enclosing GlobalScope.
type FuncScope struct {
	base
	Func *Symbol
}

func NewFuncScope(parent *GlobalScope, fn *Symbol, span token.Span) *FuncScope {
	return &FuncScope{base: newBase(parent, span), Func: fn}
}

func (f *FuncScope) Lookup(name string) (*Symbol, bool) { return lookup(f, name) }

// LocalScope holds the declarations of one CompoundStmt. Its parent is
// either a FuncScope (the function's top-level body) or another
// LocalScope (a nested block).
type LocalScope struct {
	base
}

func NewLocalScope(parent Scope, span token.Span) *LocalScope {
	return &LocalScope{base: newBase(parent, span)}
}

func (l *LocalScope) Lookup(name string) (*Symbol, bool) { return lookup(l, name) }

// IsGlobal reports whether s is the GlobalScope — used by the code
// generator to decide between PushLabel and PushFP addressing.
func IsGlobal(s Scope) bool {
	_, ok := s.(*GlobalScope)
	return ok
}
