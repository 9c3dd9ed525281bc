package ssdeep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEliminateCollapsesRuns(t *testing.T) {
	require.Equal(t, "aaa", eliminate("aaaaaaaa"))
	require.Equal(t, "aaabaaa", eliminate("aaaabaaaa"))
	require.Equal(t, "abc", eliminate("abc"))
	require.Equal(t, "", eliminate(""))
}

func TestEliminateIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"aaaa",
		"abcdefghijklmnop",
		strings.Repeat("z", 100),
		"aaabbbcccddd",
	}
	for _, s := range inputs {
		once := eliminate(s)
		twice := eliminate(once)
		require.Equal(t, once, twice, "eliminate not idempotent for %q", s)
	}
}

func TestEliminateNeverProducesRunsOfFour(t *testing.T) {
	out := eliminate(strings.Repeat("x", 1000))
	for i := 0; i+3 < len(out); i++ {
		require.False(t, out[i] == out[i+1] && out[i+1] == out[i+2] && out[i+2] == out[i+3],
			"run of 4 found at %d in %q", i, out)
	}
}
