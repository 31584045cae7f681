// Package utf provides the UTF-8 code-point scanning primitives used by the
// Spark SQL string functions.
//
// Input contract: every string handed to this package is assumed to be valid
// UTF-8. Nothing here validates, normalizes, or repairs sequences. On malformed
// input the results are unspecified, but every function stays within the
// bounds of the buffer it was given.
package utf

// utf8Trans1 maps the low six bits of a multi-byte lead byte (0xC0-0xFF) to
// the payload bits it carries.
var utf8Trans1 = [64]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
	0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x00, 0x00,
}

// CharLength returns the encoded length (1-4) of the code point that starts
// with lead. A continuation or otherwise invalid lead byte counts as 1 so that
// callers always make progress.
func CharLength(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// CharLengthAt is CharLength for the code point at s[i], clipped so that
// i+n never exceeds len(s). It returns 0 when i is out of range.
func CharLengthAt(s string, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	n := CharLength(s[i])
	if rest := len(s) - i; n > rest {
		n = rest
	}
	return n
}

// IsLeadByte reports whether c begins a code point, i.e. it is not a
// continuation byte (10xxxxxx).
func IsLeadByte(c byte) bool {
	return c&0xC0 != 0x80
}

// Codepoint decodes the first code point of s and returns its value and the
// number of bytes it occupies. An empty string yields (0, 0).
func Codepoint(s string) (r rune, size int) {
	if len(s) == 0 {
		return 0, 0
	}

	c := uint32(s[0])
	if c < 0xC0 {
		return rune(c), 1
	}

	n := CharLengthAt(s, 0)
	c = uint32(utf8Trans1[c-0xC0])
	size = 1
	for size < n && s[size]&0xC0 == 0x80 {
		c = (c << 6) + uint32(s[size]&0x3F)
		size++
	}
	return rune(c), size
}

// Length returns the number of code points in s.
func Length(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if IsLeadByte(s[i]) {
			count++
		}
	}
	return count
}

// IsASCII reports whether every byte of s is below 0x80.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// AppendRune appends the UTF-8 encoding of r to buf.
func AppendRune(buf []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(buf, byte(r))
	case r < 0x800:
		return append(buf,
			0xC0|byte(r>>6),
			0x80|byte(r&0x3F))
	case r < 0x10000:
		return append(buf,
			0xE0|byte(r>>12),
			0x80|byte((r>>6)&0x3F),
			0x80|byte(r&0x3F))
	default:
		return append(buf,
			0xF0|byte(r>>18),
			0x80|byte((r>>12)&0x3F),
			0x80|byte((r>>6)&0x3F),
			0x80|byte(r&0x3F))
	}
}
