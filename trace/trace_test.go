package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandJoinsSegments(t *testing.T) {
	tr := New("app", "greet")

	require.Equal(t, "app greet", tr.Command(true))
	require.Equal(t, "app greet", tr.Command(false))
}

func TestCommandIncludesSeparators(t *testing.T) {
	tr := New("app").Append("items").MarkSeparator().Append("0")

	require.Equal(t, "app items - 0", tr.Command(true))
	require.Equal(t, "app items 0", tr.Command(false))
}

func TestAppendDoesNotMutateOriginal(t *testing.T) {
	tr := New("app")
	extended := tr.Append("greet")

	require.Equal(t, "app", tr.Command(true))
	require.Equal(t, "app greet", extended.Command(true))
}

func TestMarkSeparatorOnEmptyTrace(t *testing.T) {
	tr := New().MarkSeparator()

	require.True(t, tr.Empty())
	require.Equal(t, "", tr.Command(true))
}

func TestNeedsSeparatingHyphenHyphen(t *testing.T) {
	tr := New("app", "greet")
	require.False(t, tr.NeedsSeparatingHyphenHyphen())

	marked := tr.WithSeparatorRequired(true)
	require.True(t, marked.NeedsSeparatingHyphenHyphen())
	require.False(t, tr.NeedsSeparatingHyphenHyphen())
}
