package ssdeep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareAgainstReferenceVectors(t *testing.T) {
	tests := []struct {
		h1, h2 string
		score  int
	}{
		{"48:abcdefg:abcdefg", "48:abcdefg:abcdefg", 100},
		{"48:abcdefgh:abcdefgh", "48:abcdefgi:abcdefgi", 88},
		{"96:ThisIsATestString1:ThisIsATestString1", "96:ThisIsATestString2:ThisIsATestString2", 96},
		{"48:abcdefg:abcdefg", "48:hijklmn:hijklmn", 0},
		{"3:h:h", "5:v:v", 0},
	}

	for _, tc := range tests {
		require.Equal(t, tc.score, Compare(tc.h1, tc.h2), "%s vs %s", tc.h1, tc.h2)
	}
}

func TestCompareMalformed(t *testing.T) {
	require.Equal(t, -1, Compare("3:h", "3:h:h"))
}

func TestCompareBlockRatio(t *testing.T) {
	abc22 := strings.Repeat("abc", 22)
	abc21add := strings.Repeat("abc", 21) + "add"

	h1 := "1536:" + abc22 + ":" + abc22
	h2 := "1536:" + abc21add + ":" + abc21add

	require.Equal(t, 99, Compare(h1, h2))
}

func TestCompareSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"48:abcdefgh:abcdefgh", "48:abcdefgi:abcdefgi"},
		{"96:ThisIsATestString1:ThisIsATestString1", "96:ThisIsATestString2:ThisIsATestString2"},
		{"12:hAnzB9Wp8+3vE+vP:hAnzhWp8jvE+vP", "24:hAnzhWp8jvE+vP:hAnzhWp8jvE+vP"},
	}
	for _, p := range pairs {
		require.Equal(t, Compare(p[0], p[1]), Compare(p[1], p[0]))
	}
}

func TestCompareRange(t *testing.T) {
	inputs := []string{
		"48:abcdefgh:abcdefgh",
		"96:ThisIsATestString1:ThisIsATestString1",
		"not a signature",
		"3:h:h",
	}
	for _, a := range inputs {
		for _, b := range inputs {
			score := Compare(a, b)
			require.True(t, score == -1 || (score >= 0 && score <= 100), "score %d out of range for %q vs %q", score, a, b)
		}
	}
}

func TestCompareIncompatibleBlockSizes(t *testing.T) {
	require.Equal(t, 0, Compare("3:abcdefg:abcdefg", "192:abcdefg:abcdefg"))
}

func TestCompareShortBlockFloor(t *testing.T) {
	score := Compare("3:ab:ab", "3:cd:cd")
	require.LessOrEqual(t, score, 0)
}

func TestCompareBlockSizeCap(t *testing.T) {
	a := "6:abcdefgh:abcdefgh"
	b := "6:abcdefgi:abcdefgi"
	score := Compare(a, b)
	// block2 is scored at twice the block size (12), so its cap is the
	// larger one; uncapped, either block would score 88.
	require.LessOrEqual(t, score, 12/minBlockSize*8)
}

func TestHasCommonSubstringRollingIndex(t *testing.T) {
	short1 := []byte("abcdefghijklmnop")
	short2 := []byte("zzzzdefghijkzzzz")
	require.True(t, hasCommonSubstringRollingIndex(short1, short2),
		"shared run \"defghij\" starting mid-string must still be found")

	long1 := []byte(strings.Repeat("abcdefg", 10))
	long2 := []byte(strings.Repeat("zzzzzzz", 5) + "abcdefg" + strings.Repeat("zzzzzzz", 5))
	require.True(t, hasCommonSubstringRollingIndex(long1, long2))

	require.False(t, hasCommonSubstringRollingIndex([]byte("abcdefg"), []byte("hijklmn")))
}
