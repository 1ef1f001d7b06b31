package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	require.Equal(t, BOOL, Lookup("true"))
	require.Equal(t, BOOL, Lookup("false"))
	require.Equal(t, NULL, Lookup("null"))
	require.Equal(t, IDENT, Lookup("foo"))
}

func TestString(t *testing.T) {
	require.Equal(t, "{", LCURLY.String())
	require.Equal(t, "ILLEGAL", Token(-1).String())
	require.Equal(t, "ILLEGAL", Token(999).String())
}
