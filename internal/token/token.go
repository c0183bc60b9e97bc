// Package token defines the token types and structures used by the lexer
// and parser for lexical analysis.
package token

// TokenType represents the type of a lexical token as a string.
type TokenType string

// Token represents a lexical token with its type, literal value,
// and position information in the source code.
type Token struct {
	// Type indicates what kind of token this is.
	Type TokenType
	// Literal contains the actual string value from the source. For
	// STRING tokens it has already been unescaped.
	Literal string
	// Line is the 1-based line number where the token appears.
	Line int
	// Column is the 1-based column number where the token starts.
	Column int
}

// Token types. The language has no reserved words: true/false/quote/
// define/lambda and friends are ordinary atoms resolved by the global
// environment, not keywords recognized here.
const (
	// EOF represents the end of the input.
	EOF TokenType = "EOF"

	// LPAREN opens a list.
	LPAREN TokenType = "("
	// RPAREN closes a list.
	RPAREN TokenType = ")"
	// QUOTE is the sugar prefix for (quote ...).
	QUOTE TokenType = "'"

	// TRUE is the literal #t.
	TRUE TokenType = "#t"
	// FALSE is the literal #f.
	FALSE TokenType = "#f"

	// ATOM is a symbolic identifier.
	ATOM TokenType = "ATOM"
	// NUMBER is a floating-point literal.
	NUMBER TokenType = "NUMBER"
	// STRING is a quoted, escaped string literal.
	STRING TokenType = "STRING"
)
