// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// tokenType represents the type of a token.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenName
	tokenNumber
	tokenString
	tokenLBrace
	tokenRBrace
	tokenLBrack
	tokenRBrack
	tokenColon
	tokenComma
	tokenFatArrow
	tokenOp
)

var tokenNames = map[tokenType]string{
	tokenEOF:      "end of input",
	tokenName:     "name",
	tokenNumber:   "number",
	tokenString:   "string",
	tokenLBrace:   "'{'",
	tokenRBrace:   "'}'",
	tokenLBrack:   "'['",
	tokenRBrack:   "']'",
	tokenColon:    "':'",
	tokenComma:    "','",
	tokenFatArrow: "'=>'",
	tokenOp:       "relation operator",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

// token represents a lexical token.
type token struct {
	Type  tokenType
	Text  string
	Range hcl.Range
	// Value holds the decoded content of string tokens.
	Value PuppetString
}

// describe returns a short human-readable form for error messages.
func (t token) describe() string {
	switch t.Type {
	case tokenEOF:
		return tokenEOF.String()
	case tokenString:
		return "string " + t.Text
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}
