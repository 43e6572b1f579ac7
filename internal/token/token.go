package token

// Kind identifies what a token is. For keywords and punctuation the Kind
// string equals the lexeme itself; ID, INT, and EOF are the three kinds
// whose Kind differs from their Value.
type Kind string

const (
	ID  Kind = "ID"
	INT Kind = "INT"
	EOF Kind = "EOF"
)

// Keywords is the closed set of reserved words. Each keyword's Kind is its
// own text, so a keyword token's Kind == Value.
var Keywords = map[string]Kind{
	"func":   "func",
	"var":    "var",
	"if":     "if",
	"else":   "else",
	"while":  "while",
	"return": "return",
	"call":   "call",
	"print":  "print",
	"int":    "int",
	"bool":   "bool",
	"void":   "void",
	"true":   "true",
	"false":  "false",
	"and":    "and",
	"or":     "or",
	"not":    "not",
}

// Punctuation is the closed set of single- and multi-character operator and
// delimiter lexemes. Kind == Value for all of them, same as keywords.
var Punctuation = []string{
	"!=", "<=", ">=", "==",
	"(", ")", "{", "}", "[", "]", ",", ":",
	"=", "<", ">", "+", "-", "*", "/",
}

// Token is one lexical unit: its Kind, the literal source text it came
// from, and the Span it occupies.
type Token struct {
	Kind  Kind
	Value string
	Span  Span
}

func (t Token) String() string {
	return string(t.Kind) + " " + t.Value + " @" + t.Span.String()
}

// Is reports whether the token's kind matches k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
