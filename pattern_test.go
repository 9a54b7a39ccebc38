package split

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPattern_MatchAt(t *testing.T) {
	buf := "aaa bbb\naaa ccc\n"
	re := regexp.MustCompile(`aaa (\w+)`)

	loc, ok := matchAt(buf, re, 0)
	require.True(t, ok)
	require.Equal(t, []int{0, 7, 4, 7}, loc)

	// Offsets come back rebased to the buffer, not the scan window.
	loc, ok = matchAt(buf, re, 8)
	require.True(t, ok)
	require.Equal(t, []int{8, 15, 12, 15}, loc)

	_, ok = matchAt(buf, regexp.MustCompile(`ddd`), 0)
	require.False(t, ok)

	// Past the end means no match, no scan.
	_, ok = matchAt(buf, re, len(buf))
	require.False(t, ok)
	_, ok = matchAt("", re, 0)
	require.False(t, ok)
}

func TestPattern_MatchAtAbsentGroup(t *testing.T) {
	loc, ok := matchAt("baaa\n", regexp.MustCompile(`(x)?aaa`), 1)
	require.True(t, ok)
	require.Equal(t, []int{1, 4, -1, -1}, loc)
}

func TestPattern_LineHead(t *testing.T) {
	buf := "ab\ncd\nef"
	tests := []struct {
		name  string
		mhead int
		want  int
	}{
		{"no newline before", 1, 0},
		{"at line start", 3, 3},
		{"mid line", 4, 3},
		{"on a newline", 5, 3},
		{"final line", 7, 6},
		{"offset zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, lineHead(buf, tt.mhead))
		})
	}
}

func TestPattern_LineTail(t *testing.T) {
	buf := "ab\ncd\nef"
	tests := []struct {
		name  string
		mtail int
		want  int
	}{
		{"mid line", 0, 2},
		{"on a newline", 2, 2},
		{"second line", 4, 5},
		{"unterminated final line", 6, 7},
		{"last index", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, lineTail(buf, tt.mtail))
		})
	}
}
