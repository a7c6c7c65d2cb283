// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// The raw parse tree. It mirrors the grammar one-to-one and keeps tokens so
// the builder can report locations.

type syntaxNode interface {
	syntaxRange() hcl.Range
}

type declNode struct {
	typeName token
	title    token
	attrs    []attrNode
	rng      hcl.Range
}

type attrNode struct {
	name  token
	value token
}

type refNode struct {
	typeName token
	title    token
	rng      hcl.Range
}

// refGroup is one refarg: a single reference or a flattened list.
type refGroup struct {
	refs []refNode
	rng  hcl.Range
}

// chainNode holds len(groups)-1 operators; ops[i] joins groups[i] and groups[i+1].
type chainNode struct {
	groups []refGroup
	ops    []token
	rng    hcl.Range
}

func (n *declNode) syntaxRange() hcl.Range  { return n.rng }
func (n *chainNode) syntaxRange() hcl.Range { return n.rng }

// parser is a recursive descent parser over a token slice.
type parser struct {
	tokens []token
	pos    int
}

// parseSyntax recognizes src against the grammar.
func parseSyntax(filename string, src []byte) ([]syntaxNode, error) {
	tokens, err := tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseManifest()
}

func (p *parser) peek() token {
	return p.peekAt(0)
}

func (p *parser) peekAt(offset int) token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) advance() token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ tokenType, context string) (token, error) {
	tok := p.advance()
	if tok.Type != typ {
		return tok, unexpected(tok, typ.String(), context)
	}
	return tok, nil
}

func unexpected(tok token, want, context string) *SyntaxError {
	return newSyntaxError(tok.Range, "Unexpected "+tok.Type.String(),
		fmt.Sprintf("Expected %s %s, got %s.", want, context, tok.describe()))
}

func (p *parser) parseManifest() ([]syntaxNode, error) {
	var nodes []syntaxNode
	for {
		tok := p.peek()
		switch tok.Type {
		case tokenEOF:
			return nodes, nil
		case tokenName:
			if next := p.peekAt(1); next.Type == tokenLBrace {
				decl, err := p.parseDeclaration()
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, decl)
				continue
			} else if next.Type != tokenLBrack {
				p.advance()
				return nil, unexpected(next, "'{' or '['", "after type name "+tok.Text)
			}
			fallthrough
		case tokenLBrack:
			chain, err := p.parseChain()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, chain)
		default:
			return nil, unexpected(tok, "a resource declaration or a relation", "at top level")
		}
	}
}

// parseDeclaration parses `Type { title : attrs }`.
func (p *parser) parseDeclaration() (*declNode, error) {
	decl := &declNode{typeName: p.advance()}
	p.advance() // '{'

	title, err := p.expect(tokenString, "as resource title")
	if err != nil {
		return nil, err
	}
	decl.title = title
	if _, err := p.expect(tokenColon, "after resource title"); err != nil {
		return nil, err
	}

	for p.peek().Type != tokenRBrace {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		decl.attrs = append(decl.attrs, attr)
		if p.peek().Type != tokenComma {
			break
		}
		p.advance()
	}

	end, err := p.expect(tokenRBrace, "to close resource "+decl.typeName.Text)
	if err != nil {
		return nil, err
	}
	decl.rng = hcl.RangeBetween(decl.typeName.Range, end.Range)
	return decl, nil
}

// parseAttribute parses `name => value`.
func (p *parser) parseAttribute() (attrNode, error) {
	name, err := p.expect(tokenName, "as attribute name")
	if err != nil {
		return attrNode{}, err
	}
	if _, err := p.expect(tokenFatArrow, "after attribute "+name.Text); err != nil {
		return attrNode{}, err
	}
	value := p.advance()
	switch value.Type {
	case tokenString, tokenName, tokenNumber:
		return attrNode{name: name, value: value}, nil
	default:
		return attrNode{}, unexpected(value, "a value", "for attribute "+name.Text)
	}
}

// parseChain parses `refarg op refarg { op refarg }`.
func (p *parser) parseChain() (*chainNode, error) {
	first, err := p.parseRefArg()
	if err != nil {
		return nil, err
	}
	chain := &chainNode{groups: []refGroup{first}}

	for p.peek().Type == tokenOp {
		chain.ops = append(chain.ops, p.advance())
		group, err := p.parseRefArg()
		if err != nil {
			return nil, err
		}
		chain.groups = append(chain.groups, group)
	}

	if len(chain.ops) == 0 {
		return nil, unexpected(p.peek(), "a relation operator (->, <-, ~>, <~)", "after reference")
	}
	chain.rng = hcl.RangeBetween(first.rng, chain.groups[len(chain.groups)-1].rng)
	return chain, nil
}

// parseRefArg parses a single reference or a bracketed list of refargs.
func (p *parser) parseRefArg() (refGroup, error) {
	tok := p.peek()
	switch tok.Type {
	case tokenName:
		ref, err := p.parseRef()
		if err != nil {
			return refGroup{}, err
		}
		return refGroup{refs: []refNode{ref}, rng: ref.rng}, nil
	case tokenLBrack:
		open := p.advance()
		group := refGroup{}
		for {
			inner, err := p.parseRefArg()
			if err != nil {
				return refGroup{}, err
			}
			group.refs = append(group.refs, inner.refs...)
			if p.peek().Type != tokenComma {
				break
			}
			p.advance()
			if p.peek().Type == tokenRBrack {
				break
			}
		}
		closing, err := p.expect(tokenRBrack, "to close reference list")
		if err != nil {
			return refGroup{}, err
		}
		group.rng = hcl.RangeBetween(open.Range, closing.Range)
		return group, nil
	default:
		p.advance()
		return refGroup{}, unexpected(tok, "a resource reference", "in relation")
	}
}

// parseRef parses `Type["title"]`.
func (p *parser) parseRef() (refNode, error) {
	typeName := p.advance()
	if _, err := p.expect(tokenLBrack, "after reference type "+typeName.Text); err != nil {
		return refNode{}, err
	}
	title, err := p.expect(tokenString, "as reference title")
	if err != nil {
		return refNode{}, err
	}
	closing, err := p.expect(tokenRBrack, "to close reference "+typeName.Text)
	if err != nil {
		return refNode{}, err
	}
	return refNode{
		typeName: typeName,
		title:    title,
		rng:      hcl.RangeBetween(typeName.Range, closing.Range),
	}, nil
}
