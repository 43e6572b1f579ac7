package symtab

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tauclang/tauc/internal/token"
	"github.com/tauclang/tauc/internal/types"
)

func TestGlobalScope_DefineAndLookup(t *testing.T) {
	g := NewGlobalScope(token.Span{})
	sym := &Symbol{Name: "main", Scope: g}
	require.NoError(t, g.Define(sym))

	got, ok := g.Lookup("main")
	require.True(t, ok)
	require.Same(t, sym, got)
}

func TestGlobalScope_DuplicateDefineFails(t *testing.T) {
	g := NewGlobalScope(token.Span{})
	require.NoError(t, g.Define(&Symbol{Name: "x", Scope: g}))
	require.Error(t, g.Define(&Symbol{Name: "x", Scope: g}))
}

func TestLookup_WalksParentChain(t *testing.T) {
	g := NewGlobalScope(token.Span{})
	fnSym := &Symbol{Name: "f", Scope: g, Type: types.NewFunc(nil, types.Void)}
	require.NoError(t, g.Define(fnSym))

	fs := NewFuncScope(g, fnSym, token.Span{})
	require.NoError(t, fs.Define(&Symbol{Name: "n", Scope: fs, Offset: -2}))

	body := NewLocalScope(fs, token.Span{})
	require.NoError(t, body.Define(&Symbol{Name: "x", Scope: body, Offset: 3}))

	nested := NewLocalScope(body, token.Span{})

	sym, ok := nested.Lookup("n")
	require.True(t, ok)
	require.Equal(t, -2, sym.Offset)

	sym, ok = nested.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 3, sym.Offset)

	_, ok = nested.Lookup("missing")
	require.False(t, ok)
}

func TestLookup_ShadowingPrefersInnermost(t *testing.T) {
	g := NewGlobalScope(token.Span{})
	fnSym := &Symbol{Name: "f", Scope: g}
	require.NoError(t, g.Define(fnSym))
	fs := NewFuncScope(g, fnSym, token.Span{})
	require.NoError(t, fs.Define(&Symbol{Name: "x", Scope: fs, Offset: -2}))

	body := NewLocalScope(fs, token.Span{})
	require.NoError(t, body.Define(&Symbol{Name: "x", Scope: body, Offset: 3}))

	sym, ok := body.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 3, sym.Offset)
}

func TestIsGlobal(t *testing.T) {
	g := NewGlobalScope(token.Span{})
	fnSym := &Symbol{Name: "f", Scope: g}
	fs := NewFuncScope(g, fnSym, token.Span{})

	require.True(t, IsGlobal(g))
	require.False(t, IsGlobal(fs))
}
