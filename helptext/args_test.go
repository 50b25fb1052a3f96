package helptext

import (
	"strings"
	"testing"

	"github.com/hearth-cli/hearth/format"
	"github.com/hearth-cli/hearth/inspect"
	"github.com/stretchr/testify/require"
)

func TestSynopsisTokensEmptySignature(t *testing.T) {
	require.Empty(t, SynopsisTokens(inspect.ArgSpec{}, true))
	require.Empty(t, SynopsisTokens(inspect.ArgSpec{}, false))
}

func TestSynopsisTokensPositionalSyntax(t *testing.T) {
	spec := inspect.ArgSpec{
		Positional:   []string{"name", "count"},
		NumDefaulted: 1,
		FlagOnly:     []string{"verbose"},
	}

	tokens := SynopsisTokens(spec, true)

	require.Equal(t, "NAME [--count=COUNT] [--verbose=VERBOSE]", tokens)
}

func TestSynopsisTokensFlagSyntax(t *testing.T) {
	spec := inspect.ArgSpec{Positional: []string{"alpha", "beta"}}

	tokens := SynopsisTokens(spec, false)

	require.Equal(t, "--alpha=ALPHA --beta=BETA", tokens)
}

func TestSynopsisTokensEmphasisCoversValueNameOnly(t *testing.T) {
	format.Init(true)
	defer format.Init(false)

	spec := inspect.ArgSpec{Positional: []string{"alpha"}}

	tokens := SynopsisTokens(spec, false)

	// The --alpha= prefix stays plain; only ALPHA is emphasized.
	require.True(t, strings.HasPrefix(tokens, "--alpha=\x1b["), "got %q", tokens)
	require.Contains(t, tokens, "ALPHA")
}

func TestSynopsisTokensFlagOrdering(t *testing.T) {
	spec := inspect.ArgSpec{
		Positional:   []string{"alpha", "beta", "gamma"},
		NumDefaulted: 2,
		FlagOnly:     []string{"delta"},
	}

	tokens := SynopsisTokens(spec, true)

	require.Equal(t, "ALPHA [--beta=BETA] [--gamma=GAMMA] [--delta=DELTA]", tokens)
}
