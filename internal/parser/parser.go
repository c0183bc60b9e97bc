// Package parser implements a pull-based recursive descent parser for
// quill. It consumes tokens from a lexer one at a time and allocates
// every s-expression it produces directly on the heap, via the
// value.Allocator it is constructed with.
package parser

import (
	"strconv"

	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/lexer"
	"github.com/quillang/quill/internal/token"
	"github.com/quillang/quill/internal/value"
)

// Parser pulls tokens from a Lexer and allocates s-expressions through
// an Allocator.
type Parser struct {
	lex   *lexer.Lexer
	alloc value.Allocator
	cur   token.Token
}

// New creates a Parser and primes it with the first token.
func New(lex *lexer.Lexer, alloc value.Allocator) (*Parser, error) {
	p := &Parser{lex: lex, alloc: alloc}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// Next reads one top-level s-expression. The ok return is false only at
// top-level EOF, the "no more expressions" sentinel; any other failure
// is returned as a non-nil error.
func (p *Parser) Next() (handle value.Handle, ok bool, err error) {
	if p.cur.Type == token.EOF {
		return 0, false, nil
	}
	h, err := p.parseExpr()
	if err != nil {
		return 0, false, err
	}
	return h, true, nil
}

func (p *Parser) parseExpr() (value.Handle, error) {
	tok := p.cur

	switch tok.Type {
	case token.LPAREN:
		return p.parseList()

	case token.QUOTE:
		if err := p.advance(); err != nil {
			return 0, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		quoteAtom := p.alloc.Manage(&value.Atom{Name: "quote"})
		list := p.alloc.Manage(&value.List{Elements: []value.Handle{quoteAtom, inner}})
		return list, nil

	case token.NUMBER:
		n, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return 0, errs.NewParser(tok.Line, tok.Column, "malformed number %q", tok.Literal)
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.alloc.Manage(&value.Number{Value: n}), nil

	case token.STRING:
		s := tok.Literal
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.alloc.Manage(&value.String{Value: s}), nil

	case token.TRUE:
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.alloc.Manage(value.True), nil

	case token.FALSE:
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.alloc.Manage(value.False), nil

	case token.ATOM:
		name := tok.Literal
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.alloc.Manage(&value.Atom{Name: name}), nil

	case token.RPAREN:
		return 0, errs.NewParser(tok.Line, tok.Column, "unexpected ')'")

	case token.EOF:
		return 0, errs.NewParser(tok.Line, tok.Column, "unexpected end of input")

	default:
		return 0, errs.NewParser(tok.Line, tok.Column, "unexpected token %s", tok.Type)
	}
}

// parseList consumes a '(' token and recursively parses forms until a
// matching ')'. EOF before the close is a parse error.
func (p *Parser) parseList() (value.Handle, error) {
	open := p.cur
	if err := p.advance(); err != nil { // consume '('
		return 0, err
	}

	var elements []value.Handle
	for {
		switch p.cur.Type {
		case token.RPAREN:
			if err := p.advance(); err != nil {
				return 0, err
			}
			return p.alloc.Manage(&value.List{Elements: elements}), nil
		case token.EOF:
			return 0, errs.NewParser(open.Line, open.Column, "unexpected EOF inside list")
		default:
			elem, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			elements = append(elements, elem)
		}
	}
}
