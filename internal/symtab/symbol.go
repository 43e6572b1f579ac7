// Package symtab implements the scope tree and symbol table: GlobalScope,
// FuncScope, and LocalScope, each holding a name-to-Symbol map and an
// optional parent, plus the Symbol (IdSymbol) that a resolved identifier
// use points at.
package symtab

import "github.com/tauclang/tauc/internal/types"

// Symbol is the binding target an identifier resolves to. Offset and Type
// are mutable: Offset is filled by the offsets pass, Type by the type
// checker. A function's own symbol lives in GlobalScope with Offset fixed
// at 0 — the code generator treats that as "this is a label", not a frame
// slot.
type Symbol struct {
	Name   string
	Scope  Scope
	Offset int
	Type   types.Type
}
