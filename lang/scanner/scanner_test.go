package scanner_test

import (
	"testing"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte(`(){},.-+;*!!====<<=>>=/`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL_EQUAL, token.EQUAL, token.LESS, token.LESS_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.SLASH, token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte("1 // a comment\n2"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanString(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte(`"hello world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Literal.String)
}

func TestScanMultilineString(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte("\"a\nb\" 1"))
	require.NoError(t, err)
	require.Equal(t, "a\nb", toks[0].Literal.String)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.ScanSource("test", []byte(`"unterminated`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated string")
}

func TestScanNumber(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte("123 45.67 8."))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.NUMBER, token.DOT, token.EOF}, kinds(toks))
	require.Equal(t, float64(123), toks[0].Literal.Number)
	require.Equal(t, 45.67, toks[1].Literal.Number)
	require.Equal(t, float64(8), toks[2].Literal.Number)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte("orchid and fun class"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.AND, token.FUN, token.CLASS, token.EOF}, kinds(toks))
}

func TestScanUnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, err := scanner.ScanSource("test", []byte("1 @ 2"))
	require.Error(t, err)
	require.Equal(t, []token.Kind{token.NUMBER, token.ILLEGAL, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanCollectsMultipleErrors(t *testing.T) {
	_, err := scanner.ScanSource("test", []byte("@ # $"))
	var el token.ErrorList
	require.ErrorAs(t, err, &el)
	require.Len(t, el, 3)
}
