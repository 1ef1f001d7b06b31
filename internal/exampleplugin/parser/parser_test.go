package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkrune/printcore/internal/exampleplugin/ast"
)

func TestParseScalars(t *testing.T) {
	v, err := ParseValue([]byte("null"))
	require.NoError(t, err)
	require.IsType(t, &ast.Null{}, v)

	v, err = ParseValue([]byte("true"))
	require.NoError(t, err)
	require.Equal(t, true, v.(*ast.Bool).Value)

	v, err = ParseValue([]byte("-3.5"))
	require.NoError(t, err)
	require.Equal(t, "-3.5", v.(*ast.Number).Text)

	v, err = ParseValue([]byte(`"hi"`))
	require.NoError(t, err)
	require.Equal(t, `"hi"`, v.(*ast.String).Text)
}

func TestParseArray(t *testing.T) {
	v, err := ParseValue([]byte("[1, 2, 3]"))
	require.NoError(t, err)
	arr, ok := v.(*ast.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestParseArrayTrailingComma(t *testing.T) {
	v, err := ParseValue([]byte("[1, 2,]"))
	require.NoError(t, err)
	arr := v.(*ast.Array)
	require.Len(t, arr.Elements, 2)
}

func TestParseObject(t *testing.T) {
	v, err := ParseValue([]byte(`{a: 1, "b": true}`))
	require.NoError(t, err)
	obj, ok := v.(*ast.Object)
	require.True(t, ok)
	require.Len(t, obj.Members, 2)
	require.Equal(t, "a", obj.Members[0].Key)
	require.Equal(t, `"b"`, obj.Members[1].Key)
}

func TestParseNestedStructure(t *testing.T) {
	v, err := ParseValue([]byte(`{items: [1, {nested: true}]}`))
	require.NoError(t, err)
	obj := v.(*ast.Object)
	arr := obj.Members[0].Value.(*ast.Array)
	require.Len(t, arr.Elements, 2)
	inner := arr.Elements[1].(*ast.Object)
	require.Equal(t, "nested", inner.Members[0].Key)
}

func TestParseErrorOnUnexpectedToken(t *testing.T) {
	_, err := ParseValue([]byte(":"))
	require.Error(t, err)
}

func TestParseErrorOnTrailingTokens(t *testing.T) {
	_, err := ParseValue([]byte("1 2"))
	require.Error(t, err)
}

func TestParseErrorOnMissingColon(t *testing.T) {
	_, err := ParseValue([]byte("{a 1}"))
	require.Error(t, err)
}
