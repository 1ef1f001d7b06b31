// Package parser parses the value-literal grammar into internal/exampleplugin/ast.
package parser

import (
	"fmt"

	"github.com/inkrune/printcore/internal/exampleplugin/ast"
	"github.com/inkrune/printcore/internal/exampleplugin/scanner"
	"github.com/inkrune/printcore/internal/exampleplugin/token"
)

// parser implements recursive-descent parsing over the value grammar:
//
//	value  = object | array | STRING | NUMBER | BOOL | NULL
//	object = "{" [ member { "," member } [ "," ] ] "}"
//	member = ( IDENT | STRING ) ":" value
//	array  = "[" [ value { "," value } [ "," ] ] "]"
type parser struct {
	s   *scanner.Scanner
	tok scanner.Tok
}

// ParseValue parses src as a single top-level value.
func ParseValue(src []byte) (ast.Value, error) {
	p := &parser{s: scanner.New(src)}
	p.next()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.EOF {
		return nil, fmt.Errorf("unexpected trailing token %q at line %d", p.tok.Text, p.tok.Line)
	}
	return v, nil
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) parseValue() (ast.Value, error) {
	switch p.tok.Kind {
	case token.LCURLY:
		return p.parseObject()
	case token.LBRACKET:
		return p.parseArray()
	case token.STRING:
		tok := p.tok
		p.next()
		return ast.NewString(tok.Line, tok.Line, tok.Text), nil
	case token.NUMBER:
		tok := p.tok
		p.next()
		return ast.NewNumber(tok.Line, tok.Line, tok.Text), nil
	case token.BOOL:
		tok := p.tok
		p.next()
		return ast.NewBool(tok.Line, tok.Line, tok.Text == "true"), nil
	case token.NULL:
		tok := p.tok
		p.next()
		return ast.NewNull(tok.Line, tok.Line), nil
	default:
		return nil, fmt.Errorf("unexpected token %q at line %d", p.tok.Text, p.tok.Line)
	}
}

func (p *parser) parseObject() (ast.Value, error) {
	start := p.tok.Line
	p.next() // consume {

	var members []*ast.Member
	for p.tok.Kind != token.RCURLY {
		if len(members) > 0 {
			if err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
			if p.tok.Kind == token.RCURLY {
				break // trailing comma
			}
		}

		keyTok := p.tok
		if keyTok.Kind != token.IDENT && keyTok.Kind != token.STRING {
			return nil, fmt.Errorf("expected object key at line %d, got %q", keyTok.Line, keyTok.Text)
		}
		p.next()
		if err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		members = append(members, ast.NewMember(keyTok.Line, val.EndLine(), keyTok.Text, val))
	}

	end := p.tok.Line
	p.next() // consume }
	return ast.NewObject(start, end, members), nil
}

func (p *parser) parseArray() (ast.Value, error) {
	start := p.tok.Line
	p.next() // consume [

	var elements []ast.Value
	for p.tok.Kind != token.RBRACKET {
		if len(elements) > 0 {
			if err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
			if p.tok.Kind == token.RBRACKET {
				break // trailing comma
			}
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, val)
	}

	end := p.tok.Line
	p.next() // consume ]
	return ast.NewArray(start, end, elements), nil
}

func (p *parser) expect(k token.Token) error {
	if p.tok.Kind != k {
		return fmt.Errorf("expected %s at line %d, got %q", k, p.tok.Line, p.tok.Text)
	}
	p.next()
	return nil
}
