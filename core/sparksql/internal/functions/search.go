package functions

import (
	"math"
	"strings"

	"github.com/FocuswithJustin/sparkfn/core/sparksql/internal/utf"
)

// Contains implements contains(str, pattern).
func Contains(s, pattern string) bool {
	return strings.Contains(s, pattern)
}

// StartsWith implements startswith(str, prefix).
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith implements endswith(str, suffix).
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Instr implements instr(str, substr): the 1-based character position of
// the first occurrence of substr, 0 if there is none. An empty substr is
// found at position 1.
func Instr(s, substr string) int32 {
	idx := strings.Index(s, substr)
	if idx < 0 {
		return 0
	}
	return saturate32(utf.ScannerFor(s[:idx]).Len(s[:idx]) + 1)
}

// Length implements length(str) for strings: the number of characters.
func Length(s string) int32 {
	return saturate32(utf.ScannerFor(s).Len(s))
}

func saturate32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}
