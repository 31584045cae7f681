package functions

import "strings"

// SubstringIndex implements substring_index(str, delim, count). A positive
// count returns everything before the count-th delimiter from the left; a
// negative count returns everything after the |count|-th delimiter from the
// right. If there are fewer occurrences, str is returned unchanged. Matching
// is exact and case-sensitive. The result borrows from s.
func SubstringIndex(s, delim string, count int32) string {
	if count == 0 || delim == "" {
		return ""
	}
	if count > 0 {
		idx := nthIndex(s, delim, int64(count))
		if idx < 0 {
			return s
		}
		return s[:idx]
	}
	idx := nthLastIndex(s, delim, -int64(count))
	if idx < 0 {
		return s
	}
	return s[idx+len(delim):]
}

// nthIndex returns the offset of the n-th occurrence of delim, or -1. Each
// search resumes one byte past the start of the previous match.
func nthIndex(s, delim string, n int64) int {
	from := 0
	for i := int64(1); ; i++ {
		j := strings.Index(s[from:], delim)
		if j < 0 {
			return -1
		}
		from += j
		if i == n {
			return from
		}
		from++
	}
}

// nthLastIndex returns the offset of the n-th occurrence of delim counting
// from the right, or -1. Each search only considers matches starting before
// the previous one.
func nthLastIndex(s, delim string, n int64) int {
	limit := len(s) - 1
	for i := int64(1); ; i++ {
		if limit < 0 {
			return -1
		}
		end := limit + len(delim)
		if end > len(s) {
			end = len(s)
		}
		j := strings.LastIndex(s[:end], delim)
		if j < 0 {
			return -1
		}
		if i == n {
			return j
		}
		limit = j - 1
	}
}
