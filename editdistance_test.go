package ssdeep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMyersDistanceAgreesWithWagnerFischer(t *testing.T) {
	pairs := [][2]string{
		{"abcdefgh", "abcdefgi"},
		{"kitten", "sitting"},
		{"", "abc"},
		{"abc", ""},
		{"identical", "identical"},
		{strings.Repeat("x", 40), strings.Repeat("x", 39) + "y"},
	}

	for _, p := range pairs {
		b1, b2 := []byte(p[0]), []byte(p[1])
		require.Equal(t, wagnerFischerDistance(b1, b2), myersDistance(b1, b2), "%q vs %q", p[0], p[1])
	}
}

func TestMyersDistanceSubstitutionCost(t *testing.T) {
	require.Equal(t, 2, myersDistance([]byte("a"), []byte("b")))
}

func TestWagnerFischerDistanceEmptyStrings(t *testing.T) {
	require.Equal(t, 3, wagnerFischerDistance([]byte(""), []byte("abc")))
	require.Equal(t, 3, wagnerFischerDistance([]byte("abc"), []byte("")))
}
