// Package lexer implements lexical analysis for the quill language.
// It converts source code into a stream of tokens the parser pulls
// from one at a time.
package lexer

import (
	"strings"

	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/token"
)

const atomSymbols = "!$%&|*+-/:<>=?@^_~"

// Lexer performs lexical analysis on quill source code. It maintains
// position tracking for error reporting and converts the input string
// into a sequence of tokens.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a new Lexer instance for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// NextToken scans and returns the next token from the input, skipping
// whitespace and comments first. It returns a *errs.Parser when the
// input is lexically malformed (an unclosed string, an unterminated
// boolean, EOF inside a literal).
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Line: line, Column: column}, nil
	case l.ch == '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Literal: "(", Line: line, Column: column}, nil
	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Line: line, Column: column}, nil
	case l.ch == '\'':
		l.readChar()
		return token.Token{Type: token.QUOTE, Literal: "'", Line: line, Column: column}, nil
	case l.ch == '"':
		return l.readStringToken(line, column)
	case l.ch == '#':
		return l.readBoolToken(line, column)
	case l.ch == '-' || isDigit(l.ch):
		return l.readNumberOrAtomToken(line, column)
	case isAtomStart(l.ch):
		return l.readAtomToken(line, column)
	default:
		return token.Token{}, errs.NewParser(line, column, "unexpected character %q", l.ch)
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespaceAndComments advances past whitespace and `;` comments,
// which extend to the next newline (EOF terminates a trailing comment
// safely, without error).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == ';' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

// isDelimiter reports whether ch may legally follow a number, atom, or
// boolean literal.
func isDelimiter(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\n', '\r', '(', ')', '"', '\'', ';':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isAtomStart(ch byte) bool {
	return isLetter(ch) || strings.IndexByte(atomSymbols, ch) >= 0
}

func isAtomChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '.' || strings.IndexByte(atomSymbols, ch) >= 0
}

// readNumberOrAtomToken reads a token starting with '-' or a digit. Per
// spec, a numeric prefix that is not followed by a delimiter (or is
// exactly "-") is re-interpreted as an atom, which is what lets `-`,
// `3d`, and `-foo` lex as identifiers rather than malformed numbers.
func (l *Lexer) readNumberOrAtomToken(line, column int) (token.Token, error) {
	start := l.position

	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.input[start:l.position]

	if !isDelimiter(l.ch) || literal == "-" {
		for isAtomChar(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.ATOM, Literal: l.input[start:l.position], Line: line, Column: column}, nil
	}

	return token.Token{Type: token.NUMBER, Literal: literal, Line: line, Column: column}, nil
}

func (l *Lexer) readAtomToken(line, column int) (token.Token, error) {
	start := l.position
	for isAtomChar(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.ATOM, Literal: l.input[start:l.position], Line: line, Column: column}, nil
}

// readStringToken reads a "..." literal, translating backslash escapes
// as it goes. It assumes the lexer is positioned at the opening quote.
func (l *Lexer) readStringToken(line, column int) (token.Token, error) {
	l.readChar() // consume opening quote

	var b strings.Builder
	for {
		switch l.ch {
		case '"':
			l.readChar()
			return token.Token{Type: token.STRING, Literal: b.String(), Line: line, Column: column}, nil
		case 0:
			return token.Token{}, errs.NewParser(line, column, "unterminated string literal")
		case '\\':
			l.readChar()
			switch l.ch {
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\'':
				b.WriteByte('\'')
			case '\\':
				b.WriteByte('\\')
			case 0:
				return token.Token{}, errs.NewParser(line, column, "unterminated string literal")
			default:
				return token.Token{}, errs.NewParser(l.line, l.column, "invalid escape sequence \\%c", l.ch)
			}
			l.readChar()
		default:
			b.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readBoolToken reads #t or #f. The character after must be a
// delimiter or ')'.
func (l *Lexer) readBoolToken(line, column int) (token.Token, error) {
	l.readChar() // consume '#'

	switch l.ch {
	case 't', 'f':
		letter := l.ch
		l.readChar()
		if !isDelimiter(l.ch) {
			return token.Token{}, errs.NewParser(line, column, "malformed boolean literal")
		}
		if letter == 't' {
			return token.Token{Type: token.TRUE, Literal: "#t", Line: line, Column: column}, nil
		}
		return token.Token{Type: token.FALSE, Literal: "#f", Line: line, Column: column}, nil
	default:
		return token.Token{}, errs.NewParser(line, column, "'#' must be followed by 't' or 'f'")
	}
}
