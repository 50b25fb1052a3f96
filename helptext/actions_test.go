package helptext

import (
	"testing"

	"github.com/hearth-cli/hearth/inspect"
	"github.com/stretchr/testify/require"
)

func TestActionsGroupsByKind(t *testing.T) {
	f := newFake()
	f.members["app"] = []inspect.Member{
		{Name: "tools", Value: "member:tools"},
		{Name: "run", Value: "member:run"},
		{Name: "color", Value: "member:color"},
	}
	f.groups["member:tools"] = true
	f.commands["member:run"] = true
	f.values["member:color"] = true

	actions := New(f).Actions("app", false)

	require.Equal(t, []inspect.Member{{Name: "tools", Value: "member:tools"}}, actions.Groups)
	require.Equal(t, []inspect.Member{{Name: "run", Value: "member:run"}}, actions.Commands)
	require.Equal(t, []inspect.Member{{Name: "color", Value: "member:color"}}, actions.Values)
	require.Empty(t, actions.Indexes)
}

func TestActionsKindsAreNotExclusive(t *testing.T) {
	f := newFake()
	f.members["app"] = []inspect.Member{{Name: "both", Value: "member:both"}}
	f.groups["member:both"] = true
	f.commands["member:both"] = true

	actions := New(f).Actions("app", false)

	require.Len(t, actions.Groups, 1)
	require.Len(t, actions.Commands, 1)
	require.Equal(t, "both", actions.Groups[0].Name)
	require.Equal(t, "both", actions.Commands[0].Name)
}

func TestActionsShortSequenceListsIndexes(t *testing.T) {
	f := newFake()
	f.seqLens["items"] = 7

	actions := New(f).Actions("items", false)

	require.Equal(t, "0, 1, 2, 3, 4, 5, 6", actions.Indexes)
}

func TestActionsLongSequenceCompressesIndexes(t *testing.T) {
	f := newFake()
	f.seqLens["items"] = 12

	actions := New(f).Actions("items", false)

	require.Equal(t, "0..11", actions.Indexes)
}

func TestActionsEmptySequenceHasNoIndexes(t *testing.T) {
	f := newFake()
	f.seqLens["items"] = 0

	actions := New(f).Actions("items", false)

	require.Empty(t, actions.Indexes)
}

func TestActionsDegenerateComponent(t *testing.T) {
	f := newFake()

	actions := New(f).Actions("nothing", false)

	require.Empty(t, actions.Groups)
	require.Empty(t, actions.Commands)
	require.Empty(t, actions.Values)
	require.Empty(t, actions.Indexes)
}

func TestActionsVerboseIncludesHidden(t *testing.T) {
	f := newFake()
	f.hidden["app"] = []inspect.Member{{Name: "concealed", Value: "member:concealed"}}
	f.values["member:concealed"] = true

	require.Empty(t, New(f).Actions("app", false).Values)
	require.Len(t, New(f).Actions("app", true).Values, 1)
}

func TestClassifyMarksSequenceMembers(t *testing.T) {
	f := newFake()
	f.groups["member:items"] = true
	f.seqLens["member:items"] = 3

	entry := New(f).classify(inspect.Member{Name: "items", Value: "member:items"})

	require.True(t, entry.Kinds.Has(KindGroup))
	require.True(t, entry.Kinds.Has(KindIndex))
	require.False(t, entry.Kinds.Has(KindCommand))
}

func TestActionKindHas(t *testing.T) {
	kinds := KindGroup | KindCommand

	require.True(t, kinds.Has(KindGroup))
	require.True(t, kinds.Has(KindCommand))
	require.False(t, kinds.Has(KindValue))
	require.False(t, kinds.Has(KindIndex))
}
