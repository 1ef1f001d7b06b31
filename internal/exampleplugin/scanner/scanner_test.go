package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkrune/printcore/internal/exampleplugin/token"
)

func scanAll(src string) []Tok {
	s := New([]byte(src))
	var toks []Tok
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestScanPunctuation(t *testing.T) {
	toks := scanAll("{}[]:,")
	kinds := make([]Token, 0, len(toks))
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	require.Equal(t, []Token{
		token.LCURLY, token.RCURLY, token.LBRACKET, token.RBRACKET,
		token.COLON, token.COMMA, token.EOF,
	}, kinds)
}

func TestScanString(t *testing.T) {
	toks := scanAll(`"hello \"world\""`)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, `"hello \"world\""`, toks[0].Text)
}

func TestScanNumber(t *testing.T) {
	toks := scanAll("-12.5")
	require.Equal(t, token.NUMBER, toks[0].Kind)
	require.Equal(t, "-12.5", toks[0].Text)
}

func TestScanIdentsAndKeywords(t *testing.T) {
	toks := scanAll("true false null foo")
	require.Equal(t, token.BOOL, toks[0].Kind)
	require.Equal(t, token.BOOL, toks[1].Kind)
	require.Equal(t, token.NULL, toks[2].Kind)
	require.Equal(t, token.IDENT, toks[3].Kind)
	require.Equal(t, "foo", toks[3].Text)
}

func TestScanTracksLines(t *testing.T) {
	toks := scanAll("1\n2\n3")
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
	require.Equal(t, 3, toks[2].Line)
}

func TestScanIllegalCharacter(t *testing.T) {
	toks := scanAll("$")
	require.Equal(t, token.ILLEGAL, toks[0].Kind)
	require.Equal(t, "$", toks[0].Text)
}
