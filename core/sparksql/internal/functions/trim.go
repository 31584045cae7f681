package functions

import (
	"strings"

	"github.com/FocuswithJustin/sparkfn/core/sparksql/internal/utf"
)

// CharSet is the set of characters removed by the trim functions. Contains
// receives one complete encoded character.
type CharSet interface {
	Contains(c string) bool
}

// byteSet is a 256-bit set of single bytes, used when both the trim string
// and the source are ASCII.
type byteSet [4]uint64

func newByteSet(chars string) *byteSet {
	var bs byteSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		bs[c>>6] |= 1 << (c & 63)
	}
	return &bs
}

func (bs *byteSet) Contains(c string) bool {
	return len(c) == 1 && bs[c[0]>>6]&(1<<(c[0]&63)) != 0
}

// codepointSet matches a character when its encoding occurs in the trim
// string. For valid UTF-8 that only happens on a code-point boundary.
type codepointSet string

func (cs codepointSet) Contains(c string) bool {
	return strings.Contains(string(cs), c)
}

// Trim implements trim(trimStr, srcStr): characters found in trimChars are
// removed from both ends of src. The result borrows from src.
func Trim(trimChars, src string) string {
	return trimSet(trimChars, src, true, true)
}

// LTrim implements ltrim(trimStr, srcStr).
func LTrim(trimChars, src string) string {
	return trimSet(trimChars, src, true, false)
}

// RTrim implements rtrim(trimStr, srcStr).
func RTrim(trimChars, src string) string {
	return trimSet(trimChars, src, false, true)
}

func trimSet(trimChars, src string, left, right bool) string {
	if src == "" {
		return ""
	}
	if trimChars == "" {
		return src
	}
	if utf.IsASCII(trimChars) && utf.IsASCII(src) {
		return trimWith(utf.ASCII, newByteSet(trimChars), src, left, right)
	}
	return trimWith(utf.UTF8, codepointSet(trimChars), src, left, right)
}

// trimWith strips characters in set from src, stepping with sc. Trailing
// characters are found by backing up to the previous lead byte first, so
// multi-byte characters are compared whole.
func trimWith(sc utf.Scanner, set CharSet, src string, left, right bool) string {
	begin, end := 0, len(src)
	if left {
		for begin < end {
			n := sc.Next(src, begin)
			if n == 0 || !set.Contains(src[begin:begin+n]) {
				break
			}
			begin += n
		}
	}
	if right {
		for end > begin {
			p := sc.Prev(src, begin, end)
			if !set.Contains(src[p:end]) {
				break
			}
			end = p
		}
	}
	return src[begin:end]
}

// TrimSpace implements the one-argument trim(srcStr), which removes only
// 0x20 from both ends.
func TrimSpace(src string) string {
	return trimSpace(src, true, true)
}

// LTrimSpace implements ltrim(srcStr).
func LTrimSpace(src string) string {
	return trimSpace(src, true, false)
}

// RTrimSpace implements rtrim(srcStr).
func RTrimSpace(src string) string {
	return trimSpace(src, false, true)
}

// trimSpace scans bytes directly. 0x20 never appears inside a multi-byte
// sequence, so no boundary handling is needed.
func trimSpace(src string, left, right bool) string {
	begin, end := 0, len(src)
	if left {
		for begin < end && src[begin] == ' ' {
			begin++
		}
	}
	if right {
		for end > begin && src[end-1] == ' ' {
			end--
		}
	}
	return src[begin:end]
}
