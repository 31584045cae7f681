package functions

import "github.com/FocuswithJustin/sparkfn/core/sparksql/internal/utf"

// Ascii implements ascii(str): the code point of the first character, or 0
// for an empty string.
func Ascii(s string) int32 {
	if s == "" {
		return 0
	}
	r, _ := utf.Codepoint(s)
	return int32(r)
}

// Chr implements chr(n). Negative n yields "". Otherwise n wraps modulo 256
// and the result is that single character: one byte below 0x80, two UTF-8
// bytes for 0x80-0xFF. The result is a new string.
func Chr(n int64) string {
	if n < 0 {
		return ""
	}
	buf := make([]byte, 0, 2)
	return string(utf.AppendRune(buf, rune(n&0xFF)))
}
