package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []token) []tokenType {
	types := make([]tokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestTokenize_Punctuation(t *testing.T) {
	tokens, err := tokenize("t.pp", []byte(`foo::bar { 'x': a => b, } [ ] -> <- ~> <~ 0644 -1`))
	require.NoError(t, err)

	assert.Equal(t, []tokenType{
		tokenName, tokenLBrace, tokenString, tokenColon, tokenName, tokenFatArrow, tokenName,
		tokenComma, tokenRBrace, tokenLBrack, tokenRBrack, tokenOp, tokenOp, tokenOp, tokenOp,
		tokenNumber, tokenNumber, tokenEOF,
	}, tokenTypes(tokens))
	assert.Equal(t, "foo::bar", tokens[0].Text)
	assert.Equal(t, "-1", tokens[16].Text)
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := tokenize("t.pp", []byte("file {\n  'x': }"))
	require.NoError(t, err)

	title := tokens[2]
	assert.Equal(t, "t.pp", title.Range.Filename)
	assert.Equal(t, 2, title.Range.Start.Line)
	assert.Equal(t, 3, title.Range.Start.Column)
	assert.Equal(t, 9, title.Range.Start.Byte)
	assert.Equal(t, 12, title.Range.End.Byte)
}

func TestTokenize_Comments(t *testing.T) {
	src := "# leading\nfile /* inline */ { # trailing\n'x': }"
	tokens, err := tokenize("t.pp", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []tokenType{tokenName, tokenLBrace, tokenString, tokenColon, tokenRBrace, tokenEOF}, tokenTypes(tokens))
}

func TestTokenize_Strings(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want PuppetString
	}{
		{"single quoted is verbatim", `'a ${b} \n'`, Literal(`a ${b} \n`)},
		{"empty single quoted", `''`, NewString()},
		{"double quoted literal", `"plain"`, Literal("plain")},
		{"double quoted variable", `"/home/${user}/x"`, NewString(Lit("/home/"), Var("user"), Lit("/x"))},
		{"adjacent variables", `"${a}${b}"`, NewString(Var("a"), Var("b"))},
		{"qualified variable", `"${facts::os}"`, NewString(Var("facts::os"))},
		{"top scope variable", `"${::fqdn}"`, NewString(Var("::fqdn"))},
		{"dollar without brace", `"cost $5"`, Literal("cost $5")},
		{"single quote inside double", `"it's"`, Literal("it's")},
		{"multi-line", "'a\nb'", Literal("a\nb")},
		{"unicode", `"héllo"`, Literal("héllo")},
		{"invalid utf-8 single quoted", "'a\xffb'", Literal("a\xffb")},
		{"invalid utf-8 double quoted", "\"a\xffb\"", Literal("a\xffb")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := tokenize("t.pp", []byte(tc.src))
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, tokenString, tokens[0].Type)
			assert.True(t, tc.want.Equal(tokens[0].Value), "got %#v", tokens[0].Value)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		summary string
		line    int
		column  int
	}{
		{"unterminated single", "file { 'x", "Unterminated string", 1, 8},
		{"unterminated double", `"abc`, "Unterminated string", 1, 1},
		{"unterminated interpolation", `"a ${b"`, "Unterminated interpolation", 1, 4},
		{"empty variable", `"${}"`, "Invalid variable name", 1, 2},
		{"bad variable", `"${1x}"`, "Invalid variable name", 1, 2},
		{"unterminated comment", "/* never", "Unterminated comment", 1, 1},
		{"bad character", "\n  @", "Invalid character", 2, 3},
		{"lone equals", "a = b", "Invalid character", 1, 3},
		{"lone less-than", "<", "Invalid character", 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tokenize("t.pp", []byte(tc.src))
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr), "expected *SyntaxError, got %T", err)
			assert.Equal(t, tc.summary, synErr.Diagnostic.Summary)
			assert.Equal(t, tc.line, synErr.Range().Start.Line)
			assert.Equal(t, tc.column, synErr.Range().Start.Column)
		})
	}
}
