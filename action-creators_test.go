package immerreducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func synthesizesOneCreatorPerMethod(t *testing.T) {
	creators, err := CreateActionCreators(&TestReducer{})
	assert.NoError(t, err)

	assert.Len(t, creators, 5)
	for _, name := range []string{"SetFoo", "SetBar", "SetBoth", "Shout", "Noop"} {
		assert.Contains(t, creators, name)
	}
}

func attachesConstantTypes(t *testing.T) {
	creators, err := CreateActionCreators(&TestReducer{})
	assert.NoError(t, err)

	creator := creators["SetFoo"]
	assert.Equal(t, ActionType("IMMER_REDUCER:TestReducer#setFoo"), creator.Type)

	action := creator.Create("next")
	assert.Equal(t, creator.Type, action.Type)
}

func carriesPositionalPayloads(t *testing.T) {
	creators, err := CreateActionCreators(&TestReducer{})
	assert.NoError(t, err)

	action := creators["SetBoth"].Create("foo", "bar")
	assert.Equal(t, []any{"foo", "bar"}, action.Payload)

	action = creators["Noop"].Create()
	assert.Empty(t, action.Payload)
}

func excludesReservedMembers(t *testing.T) {
	creators, err := CreateActionCreators(&NamedReducer{})
	assert.NoError(t, err)

	assert.NotContains(t, creators, "State")
	assert.NotContains(t, creators, "Draft")
	assert.NotContains(t, creators, "TypeName")
}

func usesExplicitNamesInTypes(t *testing.T) {
	creators, err := CreateActionCreators(&NamedReducer{})
	assert.NoError(t, err)

	assert.Equal(t, ActionType("IMMER_REDUCER:CustomName#rename"), creators["Rename"].Type)
}

func TestActionCreators(t *testing.T) {
	t.Run("synthesizes one creator per method", synthesizesOneCreatorPerMethod)
	t.Run("attaches constant types", attachesConstantTypes)
	t.Run("carries positional payloads", carriesPositionalPayloads)
	t.Run("excludes reserved members", excludesReservedMembers)
	t.Run("uses explicit names in types", usesExplicitNamesInTypes)
}
