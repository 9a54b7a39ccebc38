package split

import (
	"regexp"
	"strings"
)

// matchAt evaluates re against buf at or after offset from, scanning
// the whole remainder rather than line by line. It returns the
// submatch index pairs rebased to absolute buffer offsets
// (non-participating groups stay -1), or ok=false when from is
// already past the end of the buffer or re does not occur.
func matchAt(buf string, re *regexp.Regexp, from int) (loc []int, ok bool) {
	if from >= len(buf) {
		return nil, false
	}
	loc = re.FindStringSubmatchIndex(buf[from:])
	if loc == nil {
		return nil, false
	}
	for i, off := range loc {
		if off >= 0 {
			loc[i] = off + from
		}
	}
	return loc, true
}

// Boundary extension --------------------------------------------

// lineHead returns the offset of the first character of the line
// containing mhead: the index after the nearest newline strictly
// before mhead, or 0 when none exists.
func lineHead(buf string, mhead int) int {
	return strings.LastIndexByte(buf[:mhead], '\n') + 1
}

// lineTail returns the offset of the newline terminating the line
// containing mtail, or the buffer's last index when the final line is
// unterminated.
func lineTail(buf string, mtail int) int {
	if i := strings.IndexByte(buf[mtail:], '\n'); i >= 0 {
		return mtail + i
	}
	return len(buf) - 1
}
