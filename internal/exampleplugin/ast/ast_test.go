package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpanAccessors(t *testing.T) {
	n := NewNumber(3, 5, "42")
	require.Equal(t, 3, n.StartLine())
	require.Equal(t, 5, n.EndLine())
}

func TestObjectHoldsMembersInOrder(t *testing.T) {
	obj := NewObject(1, 4, []*Member{
		NewMember(2, 2, "a", NewNumber(2, 2, "1")),
		NewMember(3, 3, "b", NewBool(3, 3, true)),
	})
	require.Len(t, obj.Members, 2)
	require.Equal(t, "a", obj.Members[0].Key)
	require.Equal(t, "b", obj.Members[1].Key)
}

func TestArrayHoldsElements(t *testing.T) {
	arr := NewArray(1, 1, []Value{NewNull(1, 1), NewString(1, 1, `"x"`)})
	require.Len(t, arr.Elements, 2)
	_, isNull := arr.Elements[0].(*Null)
	require.True(t, isNull)
}
