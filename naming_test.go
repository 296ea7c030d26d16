package immerreducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type NamedReducer struct {
	Base[TestState]
}

func (NamedReducer) TypeName() string {
	return "CustomName"
}

func (r *NamedReducer) Rename(foo string) {
	r.Draft().Foo = foo
}

func resolvesImplicitName(t *testing.T) {
	assert.Equal(t, "TestReducer", NameOf(&TestReducer{}))
}

func resolvesExplicitName(t *testing.T) {
	assert.Equal(t, "CustomName", NameOf(&NamedReducer{}))
}

func encodesActionTypes(t *testing.T) {
	assert.Equal(t, ActionType("IMMER_REDUCER:TestReducer#setFoo"), EncodeActionType("TestReducer", "setFoo"))
}

func decodesActionTypes(t *testing.T) {
	decoded, ok := DecodeActionType("IMMER_REDUCER:TestReducer#setFoo")

	assert.True(t, ok)
	assert.Equal(t, DecodedActionType{DisplayName: "TestReducer", MethodName: "setFoo"}, decoded)
}

func rejectsForeignActionTypes(t *testing.T) {
	for _, actionType := range []ActionType{
		"boot",
		"SOMETHING_ELSE:TestReducer#setFoo",
		"IMMER_REDUCER:",
		"IMMER_REDUCER:TestReducer",
		"IMMER_REDUCER:#setFoo",
		"IMMER_REDUCER:TestReducer#",
	} {
		_, ok := DecodeActionType(actionType)
		assert.False(t, ok, "expected %q not to decode", actionType)
	}
}

func roundTripsActionTypes(t *testing.T) {
	names := []DecodedActionType{
		{DisplayName: "TestReducer", MethodName: "setFoo"},
		{DisplayName: "CustomName", MethodName: "clearCompleted"},
		{DisplayName: "a", MethodName: "b"},
	}

	for _, expected := range names {
		decoded, ok := DecodeActionType(EncodeActionType(expected.DisplayName, expected.MethodName))
		assert.True(t, ok)
		assert.Equal(t, expected, decoded)
	}
}

func TestNaming(t *testing.T) {
	t.Run("resolves implicit name", resolvesImplicitName)
	t.Run("resolves explicit name", resolvesExplicitName)
	t.Run("encodes action types", encodesActionTypes)
	t.Run("decodes action types", decodesActionTypes)
	t.Run("rejects foreign action types", rejectsForeignActionTypes)
	t.Run("round trips action types", roundTripsActionTypes)
}
