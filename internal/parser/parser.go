// Package parser implements Tau's recursive-descent parser: one token of
// lookahead, no backtracking, no error recovery. On the first unexpected
// token it returns a ParseError and stops.
package parser

import (
	"strconv"

	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/lexer"
	"github.com/tauclang/tauc/internal/token"
)

type Parser struct {
	lex *lexer.Lexer
	cur token.Token
	err *diag.Error
}

// New primes the parser with the first token.
func New(source, filename string) (*Parser, *diag.Error) {
	p := &Parser{lex: lexer.New(source, filename)}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse runs the parser to completion and returns the Program, or the
// first ParseError/LexError encountered.
func (p *Parser) Parse() (*ast.Program, *diag.Error) {
	prog := p.program()
	if p.err != nil {
		return nil, p.err
	}
	if _, err := p.match(token.EOF); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) advance() (token.Token, *diag.Error) {
	tok, err := p.lex.NextToken()
	if err != nil {
		p.err = diag.New(diag.LexError, p.cur.Span, "%s", err.Error())
		return token.Token{}, p.err
	}
	p.cur = tok
	return tok, nil
}

func (p *Parser) at(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// match consumes and returns the current token if it has kind k, else
// sets p.err to a ParseError and returns the zero Token.
func (p *Parser) match(k token.Kind) (token.Token, *diag.Error) {
	if p.cur.Kind != k {
		p.err = diag.New(diag.ParseError, p.cur.Span,
			"expected %q, found %q (%q)", k, p.cur.Kind, p.cur.Value)
		return token.Token{}, p.err
	}
	tok := p.cur
	if tok.Kind != token.EOF {
		if _, err := p.advance(); err != nil {
			return token.Token{}, p.err
		}
	}
	return tok, nil
}

func (p *Parser) fail(format string, args ...interface{}) *diag.Error {
	p.err = diag.New(diag.ParseError, p.cur.Span, format, args...)
	return p.err
}

// program → { func_decl } EOF
func (p *Parser) program() *ast.Program {
	start := p.cur.Span.Start
	var funcs []*ast.FuncDecl
	end := p.cur.Span.End
	for p.at("func") && p.err == nil {
		fd := p.funcDecl()
		if p.err != nil {
			return nil
		}
		funcs = append(funcs, fd)
		end = fd.Span().End
	}
	if p.err != nil {
		return nil
	}
	return &ast.Program{Funcs: funcs, SpanFull: token.Span{Start: start, End: end}}
}

// func_decl → "func" ID "(" [ params ] ")" ":" type nest
func (p *Parser) funcDecl() *ast.FuncDecl {
	start := p.cur.Span.Start
	if _, err := p.match("func"); err != nil {
		return nil
	}
	nameTok, err := p.match(token.ID)
	if err != nil {
		return nil
	}
	name := &ast.Id{Tok: nameTok}

	if _, err := p.match("("); err != nil {
		return nil
	}
	var params []*ast.ParamDecl
	if p.at(token.ID) {
		params = p.params()
		if p.err != nil {
			return nil
		}
	}
	if _, err := p.match(")"); err != nil {
		return nil
	}
	if _, err := p.match(":"); err != nil {
		return nil
	}
	retTypeA := p.typeAST()
	if p.err != nil {
		return nil
	}
	body := p.nest()
	if p.err != nil {
		return nil
	}
	return &ast.FuncDecl{
		Name:     name,
		Params:   params,
		RetTypeA: retTypeA,
		Body:     body,
		SpanFull: token.Span{Start: start, End: body.Span().End},
	}
}

// params → param { "," param }
func (p *Parser) params() []*ast.ParamDecl {
	var out []*ast.ParamDecl
	first := p.param()
	if p.err != nil {
		return nil
	}
	out = append(out, first)
	for p.at(",") {
		if _, err := p.match(","); err != nil {
			return nil
		}
		next := p.param()
		if p.err != nil {
			return nil
		}
		out = append(out, next)
	}
	return out
}

// param → ID ":" type
func (p *Parser) param() *ast.ParamDecl {
	idTok, err := p.match(token.ID)
	if err != nil {
		return nil
	}
	id := &ast.Id{Tok: idTok}
	if _, err := p.match(":"); err != nil {
		return nil
	}
	typeA := p.typeAST()
	if p.err != nil {
		return nil
	}
	return &ast.ParamDecl{Name: id, TypeA: typeA, SpanFull: token.Span{Start: idTok.Span.Start, End: typeA.Span().End}}
}

// declaration → "var" ID ":" type
func (p *Parser) declaration() *ast.VarDecl {
	start := p.cur.Span.Start
	if _, err := p.match("var"); err != nil {
		return nil
	}
	idTok, err := p.match(token.ID)
	if err != nil {
		return nil
	}
	id := &ast.Id{Tok: idTok}
	if _, err := p.match(":"); err != nil {
		return nil
	}
	typeA := p.typeAST()
	if p.err != nil {
		return nil
	}
	return &ast.VarDecl{Name: id, TypeA: typeA, SpanFull: token.Span{Start: start, End: typeA.Span().End}}
}

var exprStartKinds = []token.Kind{"(", "-", "false", "not", "true", token.ID, token.INT}

// nest → "{" { declaration } { statement | nest } [ return ] "}"
func (p *Parser) nest() *ast.CompoundStmt {
	start := p.cur.Span.Start
	if _, err := p.match("{"); err != nil {
		return nil
	}
	var decls []*ast.VarDecl
	for p.at("var") {
		d := p.declaration()
		if p.err != nil {
			return nil
		}
		decls = append(decls, d)
	}
	var stmts []ast.Stmt
	for p.at("call", "if", "print", "while", "{", token.ID) {
		if p.at("{") {
			stmts = append(stmts, p.nest())
		} else {
			stmts = append(stmts, p.statement())
		}
		if p.err != nil {
			return nil
		}
	}
	if p.at("return") {
		stmts = append(stmts, p.returnStmt())
		if p.err != nil {
			return nil
		}
	}
	endTok, err := p.match("}")
	if err != nil {
		return nil
	}
	return &ast.CompoundStmt{Decls: decls, Stmts: stmts, SpanFull: token.Span{Start: start, End: endTok.Span.End}}
}

// statement → call | print | if | while | equation
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.at("call"):
		return p.callStmt()
	case p.at("print"):
		return p.printStmt()
	case p.at("if"):
		return p.ifStmt()
	case p.at("while"):
		return p.whileStmt()
	case p.at(token.ID):
		return p.equation()
	default:
		p.fail("syntax error: unexpected %q", p.cur.Value)
		return nil
	}
}

// if → "if" expr nest [ "else" nest ]
func (p *Parser) ifStmt() *ast.IfStmt {
	start := p.cur.Span.Start
	if _, err := p.match("if"); err != nil {
		return nil
	}
	cond := p.exprOr()
	if p.err != nil {
		return nil
	}
	then := p.nest()
	if p.err != nil {
		return nil
	}
	end := then.Span().End
	var elseBranch *ast.CompoundStmt
	if p.at("else") {
		if _, err := p.match("else"); err != nil {
			return nil
		}
		elseBranch = p.nest()
		if p.err != nil {
			return nil
		}
		end = elseBranch.Span().End
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch, SpanFull: token.Span{Start: start, End: end}}
}

// while → "while" expr nest
func (p *Parser) whileStmt() *ast.WhileStmt {
	start := p.cur.Span.Start
	if _, err := p.match("while"); err != nil {
		return nil
	}
	cond := p.exprOr()
	if p.err != nil {
		return nil
	}
	body := p.nest()
	if p.err != nil {
		return nil
	}
	return &ast.WhileStmt{Cond: cond, Body: body, SpanFull: token.Span{Start: start, End: body.Span().End}}
}

// call → "call" func_call
func (p *Parser) callStmt() *ast.CallStmt {
	start := p.cur.Span.Start
	if _, err := p.match("call"); err != nil {
		return nil
	}
	call := p.funcCall()
	if p.err != nil {
		return nil
	}
	return &ast.CallStmt{Call: call, SpanFull: token.Span{Start: start, End: call.Span().End}}
}

// print → "print" expr
func (p *Parser) printStmt() *ast.PrintStmt {
	start := p.cur.Span.Start
	if _, err := p.match("print"); err != nil {
		return nil
	}
	e := p.exprOr()
	if p.err != nil {
		return nil
	}
	return &ast.PrintStmt{Expr: e, SpanFull: token.Span{Start: start, End: e.Span().End}}
}

// return → "return" [ expr ]
func (p *Parser) returnStmt() *ast.ReturnStmt {
	start := p.cur.Span.Start
	end := p.cur.Span.End
	if _, err := p.match("return"); err != nil {
		return nil
	}
	var e ast.Expr
	if p.at(exprStartKinds...) {
		e = p.exprOr()
		if p.err != nil {
			return nil
		}
		end = e.Span().End
	}
	return &ast.ReturnStmt{Expr: e, SpanFull: token.Span{Start: start, End: end}}
}

// equation → (ID | array_ref) "=" expr
func (p *Parser) equation() ast.Stmt {
	start := p.cur.Span.Start
	idTok, err := p.match(token.ID)
	if err != nil {
		return nil
	}
	id := &ast.Id{Tok: idTok}
	var lhs ast.Expr = &ast.IdExpr{IdNode: id}
	if p.at("[") {
		lhs = p.arrayCell(id)
		if p.err != nil {
			return nil
		}
	}
	if _, err := p.match("="); err != nil {
		return nil
	}
	rhs := p.exprOr()
	if p.err != nil {
		return nil
	}
	return &ast.AssignStmt{Lhs: lhs, Rhs: rhs, SpanFull: token.Span{Start: start, End: rhs.Span().End}}
}

// func_call → ID "(" [ expr { "," expr } ] ")"
func (p *Parser) funcCall() *ast.CallExpr {
	idTok, err := p.match(token.ID)
	if err != nil {
		return nil
	}
	id := &ast.Id{Tok: idTok}
	return p.callArgs(&ast.IdExpr{IdNode: id})
}

// callArgs → "(" [ expr { "," expr } ] ")", attached to an already-parsed
// callee expression.
func (p *Parser) callArgs(fn ast.Expr) *ast.CallExpr {
	start := fn.Span().Start
	if _, err := p.match("("); err != nil {
		return nil
	}
	var args []ast.Expr
	if p.at(exprStartKinds...) {
		a := p.exprOr()
		if p.err != nil {
			return nil
		}
		args = append(args, a)
		for p.at(",") {
			if _, err := p.match(","); err != nil {
				return nil
			}
			a := p.exprOr()
			if p.err != nil {
				return nil
			}
			args = append(args, a)
		}
	}
	endTok, err := p.match(")")
	if err != nil {
		return nil
	}
	return &ast.CallExpr{Fn: fn, Args: args, SpanFull: token.Span{Start: start, End: endTok.Span.End}}
}

// expr_or → expr_and { "or" expr_and }
func (p *Parser) exprOr() ast.Expr { return p.binaryLeft(p.exprAnd, "or") }

// expr_and → expr_comp { "and" expr_comp }
func (p *Parser) exprAnd() ast.Expr { return p.binaryLeft(p.exprComp, "and") }

// expr_comp → expr_add { ("<" | ">" | "<=" | ">=" | "==" | "!=") expr_add }
func (p *Parser) exprComp() ast.Expr {
	return p.binaryLeft(p.exprAdd, "<", ">", "<=", ">=", "==", "!=")
}

// expr_add → expr_mul { ("+" | "-") expr_mul }
func (p *Parser) exprAdd() ast.Expr { return p.binaryLeft(p.exprMul, "+", "-") }

// expr_mul → unary { ("*" | "/") unary }
func (p *Parser) exprMul() ast.Expr { return p.binaryLeft(p.unary, "*", "/") }

// binaryLeft folds a left-associative chain of same-precedence binary
// operators built from next, stopping when the current token isn't in ops.
func (p *Parser) binaryLeft(next func() ast.Expr, ops ...token.Kind) ast.Expr {
	left := next()
	if p.err != nil {
		return nil
	}
	for p.at(ops...) {
		op := p.cur
		if _, err := p.match(op.Kind); err != nil {
			return nil
		}
		right := next()
		if p.err != nil {
			return nil
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

// unary → { "-" | "not" } atom, consecutive prefix unaries nesting
// right-associatively.
func (p *Parser) unary() ast.Expr {
	if p.at("-", "not") {
		op := p.cur
		if _, err := p.match(op.Kind); err != nil {
			return nil
		}
		operand := p.unary()
		if p.err != nil {
			return nil
		}
		return &ast.UnaryOp{Op: op, Operand: operand, SpanFull: token.Span{Start: op.Span.Start, End: operand.Span().End}}
	}
	return p.atom()
}

// atom → INT | "true" | "false" | "(" expr ")" | term
func (p *Parser) atom() ast.Expr {
	switch {
	case p.at(token.INT):
		tok := p.cur
		if _, err := p.match(token.INT); err != nil {
			return nil
		}
		return &ast.IntLiteral{Tok: tok, Value: parseInt(tok.Value)}
	case p.at("true"):
		tok := p.cur
		if _, err := p.match("true"); err != nil {
			return nil
		}
		return &ast.BoolLiteral{Tok: tok, Value: true}
	case p.at("false"):
		tok := p.cur
		if _, err := p.match("false"); err != nil {
			return nil
		}
		return &ast.BoolLiteral{Tok: tok, Value: false}
	case p.at("("):
		if _, err := p.match("("); err != nil {
			return nil
		}
		e := p.exprOr()
		if p.err != nil {
			return nil
		}
		if _, err := p.match(")"); err != nil {
			return nil
		}
		return e
	case p.at(token.ID):
		return p.term()
	default:
		p.fail("syntax error: unexpected %q", p.cur.Value)
		return nil
	}
}

// term → ID [ "(" args ")" | "[" expr "]" ]
func (p *Parser) term() ast.Expr {
	idTok, err := p.match(token.ID)
	if err != nil {
		return nil
	}
	id := &ast.Id{Tok: idTok}
	switch {
	case p.at("("):
		return p.callArgs(&ast.IdExpr{IdNode: id})
	case p.at("["):
		return p.arrayCell(id)
	default:
		return &ast.IdExpr{IdNode: id}
	}
}

// array_ref → ID "[" expr "]"
func (p *Parser) arrayCell(id *ast.Id) *ast.ArrayCell {
	start := id.Span().Start
	if _, err := p.match("["); err != nil {
		return nil
	}
	idx := p.exprOr()
	if p.err != nil {
		return nil
	}
	endTok, err := p.match("]")
	if err != nil {
		return nil
	}
	return &ast.ArrayCell{Arr: &ast.IdExpr{IdNode: id}, Idx: idx, SpanFull: token.Span{Start: start, End: endTok.Span.End}}
}

// type → "int" | "bool" | "void" | type_array
func (p *Parser) typeAST() ast.TypeAST {
	switch {
	case p.at("int"):
		tok := p.cur
		p.match("int")
		return &ast.IntTypeAST{Tok: tok}
	case p.at("bool"):
		tok := p.cur
		p.match("bool")
		return &ast.BoolTypeAST{Tok: tok}
	case p.at("void"):
		tok := p.cur
		p.match("void")
		return &ast.VoidTypeAST{Tok: tok}
	case p.at("["):
		return p.typeArray()
	default:
		p.fail("syntax error: expected a type, found %q", p.cur.Value)
		return nil
	}
}

// type_array → "[" [ expr ] "]" type
func (p *Parser) typeArray() *ast.ArrayTypeAST {
	start := p.cur.Span.Start
	if _, err := p.match("["); err != nil {
		return nil
	}
	var size ast.Expr
	if p.at(exprStartKinds...) {
		size = p.exprOr()
		if p.err != nil {
			return nil
		}
	}
	if _, err := p.match("]"); err != nil {
		return nil
	}
	elem := p.typeAST()
	if p.err != nil {
		return nil
	}
	return &ast.ArrayTypeAST{Size: size, Element: elem, SpanFull: token.Span{Start: start, End: elem.Span().End}}
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
