// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// variableRegex matches the name inside `${...}`, optionally top-scope or
// `::`-qualified, e.g. `name`, `::fqdn`, `facts::os`.
var variableRegex = regexp.MustCompile(`^(?:::)?[A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z_][A-Za-z0-9_]*)*$`)

// lexer turns manifest source into tokens, tracking hcl positions.
type lexer struct {
	filename string
	src      []byte
	pos      hcl.Pos
}

func newLexer(filename string, src []byte) *lexer {
	return &lexer{
		filename: filename,
		src:      src,
		pos:      hcl.InitialPos,
	}
}

// tokenize scans the whole source. The last token is always tokenEOF.
func tokenize(filename string, src []byte) ([]token, error) {
	lx := newLexer(filename, src)
	var tokens []token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens, nil
		}
	}
}

func (lx *lexer) eof() bool {
	return lx.pos.Byte >= len(lx.src)
}

// peek returns the byte at offset from the current position, or 0.
func (lx *lexer) peek(offset int) byte {
	i := lx.pos.Byte + offset
	if i >= len(lx.src) {
		return 0
	}
	return lx.src[i]
}

// advance consumes one rune and updates the position.
func (lx *lexer) advance() rune {
	r, size := utf8.DecodeRune(lx.src[lx.pos.Byte:])
	lx.pos.Byte += size
	if r == '\n' {
		lx.pos.Line++
		lx.pos.Column = 1
	} else {
		lx.pos.Column++
	}
	return r
}

func (lx *lexer) rangeFrom(start hcl.Pos) hcl.Range {
	return hcl.Range{Filename: lx.filename, Start: start, End: lx.pos}
}

func (lx *lexer) text(start hcl.Pos) string {
	return string(lx.src[start.Byte:lx.pos.Byte])
}

func (lx *lexer) emit(typ tokenType, start hcl.Pos) token {
	return token{Type: typ, Text: lx.text(start), Range: lx.rangeFrom(start)}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipTrivia consumes whitespace and comments.
func (lx *lexer) skipTrivia() error {
	for !lx.eof() {
		b := lx.peek(0)
		switch {
		case isSpace(b):
			lx.advance()
		case b == '#':
			for !lx.eof() && lx.peek(0) != '\n' {
				lx.advance()
			}
		case b == '/' && lx.peek(1) == '*':
			start := lx.pos
			lx.advance()
			lx.advance()
			for {
				if lx.eof() {
					return newSyntaxError(lx.rangeFrom(start), "Unterminated comment",
						"A block comment was opened with '/*' but never closed with '*/'.")
				}
				if lx.peek(0) == '*' && lx.peek(1) == '/' {
					lx.advance()
					lx.advance()
					break
				}
				lx.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

// next scans a single token.
func (lx *lexer) next() (token, error) {
	if err := lx.skipTrivia(); err != nil {
		return token{}, err
	}

	start := lx.pos
	if lx.eof() {
		return token{Type: tokenEOF, Range: lx.rangeFrom(start)}, nil
	}

	b := lx.peek(0)
	switch {
	case isIdentStart(b):
		return lx.scanName(), nil
	case isDigit(b):
		return lx.scanNumber(), nil
	case b == '\'':
		return lx.scanSingleQuoted()
	case b == '"':
		return lx.scanDoubleQuoted()
	}

	lx.advance()
	switch b {
	case '{':
		return lx.emit(tokenLBrace, start), nil
	case '}':
		return lx.emit(tokenRBrace, start), nil
	case '[':
		return lx.emit(tokenLBrack, start), nil
	case ']':
		return lx.emit(tokenRBrack, start), nil
	case ':':
		return lx.emit(tokenColon, start), nil
	case ',':
		return lx.emit(tokenComma, start), nil
	case '=':
		if lx.peek(0) == '>' {
			lx.advance()
			return lx.emit(tokenFatArrow, start), nil
		}
	case '-':
		if lx.peek(0) == '>' {
			lx.advance()
			return lx.emit(tokenOp, start), nil
		}
		if isDigit(lx.peek(0)) {
			return lx.scanNumberFrom(start), nil
		}
	case '~':
		if lx.peek(0) == '>' {
			lx.advance()
			return lx.emit(tokenOp, start), nil
		}
	case '<':
		if next := lx.peek(0); next == '-' || next == '~' {
			lx.advance()
			return lx.emit(tokenOp, start), nil
		}
	}

	// Re-decode in case the offending character is multi-byte.
	lx.pos = start
	r := lx.advance()
	return token{}, newSyntaxError(lx.rangeFrom(start), "Invalid character",
		fmt.Sprintf("The character %q is not valid here.", r))
}

// scanName scans an identifier, joining `::`-separated segments.
func (lx *lexer) scanName() token {
	start := lx.pos
	for {
		for !lx.eof() && isIdentByte(lx.peek(0)) {
			lx.advance()
		}
		if lx.peek(0) == ':' && lx.peek(1) == ':' && isIdentStart(lx.peek(2)) {
			lx.advance()
			lx.advance()
			continue
		}
		return lx.emit(tokenName, start)
	}
}

func (lx *lexer) scanNumber() token {
	return lx.scanNumberFrom(lx.pos)
}

// scanNumberFrom scans a bare numeric word such as `0644` or `1.5`.
func (lx *lexer) scanNumberFrom(start hcl.Pos) token {
	for !lx.eof() && (isIdentByte(lx.peek(0)) || lx.peek(0) == '.') {
		lx.advance()
	}
	return lx.emit(tokenNumber, start)
}

// scanSingleQuoted scans a verbatim string.
func (lx *lexer) scanSingleQuoted() (token, error) {
	start := lx.pos
	lx.advance()
	contentStart := lx.pos.Byte
	for {
		if lx.eof() {
			return token{}, newSyntaxError(lx.rangeFrom(start), "Unterminated string",
				"A single-quoted string was opened but never closed.")
		}
		if lx.peek(0) == '\'' {
			content := string(lx.src[contentStart:lx.pos.Byte])
			lx.advance()
			tok := lx.emit(tokenString, start)
			tok.Value = Literal(content)
			return tok, nil
		}
		lx.advance()
	}
}

// scanDoubleQuoted scans a string that may contain `${name}` placeholders.
func (lx *lexer) scanDoubleQuoted() (token, error) {
	start := lx.pos
	lx.advance()

	var segments []Segment
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Lit(literal.String()))
			literal.Reset()
		}
	}

	for {
		if lx.eof() {
			return token{}, newSyntaxError(lx.rangeFrom(start), "Unterminated string",
				"A double-quoted string was opened but never closed.")
		}
		b := lx.peek(0)
		if b == '"' {
			lx.advance()
			flush()
			tok := lx.emit(tokenString, start)
			tok.Value = NewString(segments...)
			return tok, nil
		}
		if b == '$' && lx.peek(1) == '{' {
			flush()
			name, err := lx.scanVariable()
			if err != nil {
				return token{}, err
			}
			segments = append(segments, Var(name))
			continue
		}
		// Raw bytes, so invalid UTF-8 matches the single-quoted form.
		from := lx.pos.Byte
		lx.advance()
		literal.Write(lx.src[from:lx.pos.Byte])
	}
}

// scanVariable scans `${name}` and returns name.
func (lx *lexer) scanVariable() (string, error) {
	start := lx.pos
	lx.advance()
	lx.advance()
	nameStart := lx.pos.Byte
	for {
		if lx.eof() || lx.peek(0) == '"' || lx.peek(0) == '\n' {
			return "", newSyntaxError(lx.rangeFrom(start), "Unterminated interpolation",
				"A variable placeholder was opened with '${' but never closed with '}'.")
		}
		if lx.peek(0) == '}' {
			break
		}
		lx.advance()
	}
	name := string(lx.src[nameStart:lx.pos.Byte])
	lx.advance()
	if !variableRegex.MatchString(name) {
		return "", newSyntaxError(lx.rangeFrom(start), "Invalid variable name",
			fmt.Sprintf("%q is not a valid variable name.", name))
	}
	return name, nil
}
