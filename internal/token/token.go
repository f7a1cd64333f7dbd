// Package token defines the lexeme/type-tag pairs produced by the scanner.
package token

import "fmt"

// Type is the tag attached to a token: identifier, literal kind, or
// operator/punctuation lexeme (operators and punctuation are their own
// literal text, e.g. "(" or ":=").
type Type string

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	IDENT  Type = "IDENT"
	INT    Type = "INT"
	STRING Type = "STRING"
	OP     Type = "OP" // operator/punctuation; Lexeme carries the actual text
)

// Token is a lexeme paired with its type tag. Integer and string
// literals carry their parsed value in Literal.
type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{} // int for INT, string for STRING; nil otherwise
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d, col %d)", t.Type, t.Lexeme, t.Line, t.Column)
}

// Is reports whether the token's lexeme equals the given keyword or
// punctuation text, regardless of its Type. This is how the parser
// recognizes Dieter's keyword-as-lexeme grammar ("module", "end",
// "if", ...) without a distinct keyword token type.
func (t Token) Is(lexeme string) bool {
	return t.Lexeme == lexeme
}
