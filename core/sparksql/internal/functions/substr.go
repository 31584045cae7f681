package functions

import (
	"math"

	"github.com/FocuswithJustin/sparkfn/core/sparksql/internal/utf"
)

// Substr implements substr(str, start, length). Positions are 1-based code
// points; start 0 means 1 and a negative start counts back from the end.
// The result borrows from s.
func Substr(s string, start, length int32) string {
	return substrWith(utf.ScannerFor(s), s, start, length)
}

// SubstrFrom implements the two-argument substr(str, start).
func SubstrFrom(s string, start int32) string {
	return Substr(s, start, math.MaxInt32)
}

func substrWith(sc utf.Scanner, s string, start, length int32) string {
	return resolveRange(sc, s, start, length).Slice(s)
}

// resolveRange turns a substr position and length into byte offsets of s.
func resolveRange(sc utf.Scanner, s string, start, length int32) utf.ByteRange {
	if length <= 0 {
		return utf.ByteRange{}
	}
	numChars := sc.Len(s)
	if numChars > math.MaxInt32 {
		numChars = math.MaxInt32
	}
	first, n, ok := resolvePositions(int32(numChars), start, length)
	if !ok {
		return utf.ByteRange{}
	}
	return sc.ByteRange(s, int(first), int(n))
}

// resolvePositions applies Spark's substr position rules to a string of
// numChars characters. It returns the 1-based first character and the
// number of characters to take, or ok == false for an empty result.
func resolvePositions(numChars, start, length int32) (first, n int32, ok bool) {
	if length <= 0 {
		return 0, 0, false
	}
	if start == 0 {
		start = 1
	}
	if start < 0 {
		start = numChars + start + 1
	}

	// start + length - 1 saturates at numChars instead of wrapping.
	last := int64(start) + int64(length) - 1
	if last > math.MaxInt32 || last > int64(numChars) {
		last = int64(numChars)
	}

	if start <= 0 {
		start = 1
	}

	count := last - int64(start) + 1
	if count <= 0 {
		return 0, 0, false
	}
	return start, int32(count), true
}
